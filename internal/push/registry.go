// Package push keeps the web push subscription registry. Notification
// delivery itself is delegated to consumers of the alert topic; this
// package only records who asked to be notified.
package push

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/kitsunebi/disaster-info-api/internal/domain"
)

// Registry is a file-backed subscription store. Every mutation is written
// through to disk before it returns.
type Registry struct {
	path   string
	clock  clockwork.Clock
	logger *slog.Logger

	mu   sync.Mutex
	subs []domain.PushSubscription
}

// NewRegistry loads the subscription file at path. A missing file starts an
// empty registry; a corrupt one is logged and discarded.
func NewRegistry(path string, logger *slog.Logger) *Registry {
	r := &Registry{
		path:   path,
		clock:  clockwork.NewRealClock(),
		logger: logger,
		subs:   make([]domain.PushSubscription, 0),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			r.logger.Error("push subscription read failed", "path", path, "error", err)
		}
		return r
	}
	if err := json.Unmarshal(data, &r.subs); err != nil {
		r.logger.Error("push subscription file corrupt, starting empty", "path", path, "error", err)
		r.subs = make([]domain.PushSubscription, 0)
	}
	r.logger.Info("push subscriptions loaded", "count", len(r.subs))
	return r
}

// Subscribe registers an endpoint. An endpoint already on file keeps its ID
// and creation time; its keys and language are refreshed.
func (r *Registry) Subscribe(endpoint string, keys map[string]string, language string) (domain.PushSubscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	for i := range r.subs {
		if r.subs[i].Endpoint != endpoint {
			continue
		}
		r.subs[i].Keys = keys
		if language != "" {
			r.subs[i].Language = language
		}
		r.subs[i].UpdatedAt = now
		if err := r.saveLocked(); err != nil {
			return domain.PushSubscription{}, err
		}
		r.logger.Info("push subscription updated", "id", r.subs[i].ID)
		return r.subs[i], nil
	}

	sub := domain.PushSubscription{
		ID:        uuid.NewString(),
		Endpoint:  endpoint,
		Keys:      keys,
		Language:  language,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.subs = append(r.subs, sub)
	if err := r.saveLocked(); err != nil {
		r.subs = r.subs[:len(r.subs)-1]
		return domain.PushSubscription{}, err
	}
	r.logger.Info("push subscription registered", "id", sub.ID, "total", len(r.subs))
	return sub, nil
}

// Unsubscribe removes the subscription for endpoint. It reports whether one
// was on file.
func (r *Registry) Unsubscribe(endpoint string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.subs {
		if r.subs[i].Endpoint != endpoint {
			continue
		}
		removed := r.subs[i]
		r.subs = append(r.subs[:i], r.subs[i+1:]...)
		if err := r.saveLocked(); err != nil {
			return false, err
		}
		r.logger.Info("push subscription removed", "id", removed.ID, "remaining", len(r.subs))
		return true, nil
	}
	return false, nil
}

// Count returns the number of registered subscriptions.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs)
}

// saveLocked writes the registry through a temp file rename so a crash
// mid-write never truncates it. Callers hold mu.
func (r *Registry) saveLocked() error {
	data, err := json.MarshalIndent(r.subs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal subscriptions: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create subscription dir: %w", err)
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write subscriptions: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("replace subscription file: %w", err)
	}
	return nil
}
