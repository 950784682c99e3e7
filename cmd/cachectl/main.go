// Command cachectl inspects and seeds the persistent translation cache
// used by the API service. Cache keys are MD5 digests of "text:lang", so a
// phrase cannot be grepped out of the file directly; -lookup computes the
// key and resolves it. -seed pre-warms a deployment with reviewed
// translations so common phrases never reach the AI providers.
//
// Usage:
//
//	go run ./cmd/cachectl -file data/translation_cache.json -stats
//	go run ./cmd/cachectl -file data/translation_cache.json -lookup 避難してください -lang en
//	go run ./cmd/cachectl -file data/translation_cache.json -seed seed.json
//
// Seed files are JSON arrays of {"text", "lang", "value"} objects.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/kitsunebi/disaster-info-api/internal/lang"
	"github.com/kitsunebi/disaster-info-api/internal/observability"
	"github.com/kitsunebi/disaster-info-api/internal/translate"
)

// seedEntry is one row of a seed file.
type seedEntry struct {
	Text  string `json:"text"`
	Lang  string `json:"lang"`
	Value string `json:"value"`
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	file := flag.String("file", "data/translation_cache.json", "path to the translation cache file")
	stats := flag.Bool("stats", false, "print cache statistics")
	lookup := flag.String("lookup", "", "resolve the cached translation for the given Japanese text")
	target := flag.String("lang", "en", "target language for -lookup")
	seed := flag.String("seed", "", "seed the cache from a JSON file of {text, lang, value} entries")
	flag.Parse()

	if !*stats && *lookup == "" && *seed == "" {
		flag.Usage()
		return fmt.Errorf("nothing to do: pass -stats, -lookup or -seed")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	cache := translate.NewCache(*file, 1000, observability.NewMetrics(), logger)

	if *seed != "" {
		if err := seedCache(cache, *seed); err != nil {
			return fmt.Errorf("seeding from %s: %w", *seed, err)
		}
	}

	if *lookup != "" {
		key := translate.Key(*lookup, *target)
		value, ok := cache.Get(key)
		if !ok {
			return fmt.Errorf("no cache entry for %q in %s (key %s)", *lookup, *target, key)
		}
		fmt.Println(value)
	}

	if *stats {
		printStats(cache, *file)
	}
	return nil
}

func seedCache(cache *translate.Cache, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var entries []seedEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	var added, replaced, skipped int
	for i, e := range entries {
		if e.Text == "" || e.Value == "" {
			return fmt.Errorf("entry %d: text and value are required", i)
		}
		if !lang.IsSupported(e.Lang) {
			log.Printf("entry %d: unsupported language %q, skipped", i, e.Lang)
			skipped++
			continue
		}

		key := translate.Key(e.Text, e.Lang)
		if current, ok := cache.Get(key); ok {
			if current == e.Value {
				skipped++
				continue
			}
			replaced++
		} else {
			added++
		}
		cache.Set(key, e.Value)
	}

	if err := cache.Flush(); err != nil {
		return fmt.Errorf("flush cache: %w", err)
	}
	log.Printf("seeded: %d added, %d replaced, %d unchanged or skipped", added, replaced, skipped)
	return nil
}

func printStats(cache *translate.Cache, path string) {
	fmt.Printf("cache file: %s\n", path)
	fmt.Printf("entries:    %d\n", cache.Len())
	info, err := os.Stat(path)
	if err != nil {
		fmt.Println("on disk:    not written yet")
		return
	}
	fmt.Printf("size:       %d bytes\n", info.Size())
	fmt.Printf("modified:   %s\n", info.ModTime().Format(time.RFC3339))
}
