package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/kitsunebi/disaster-info-api/internal/domain"
	"github.com/kitsunebi/disaster-info-api/internal/lang"
	"github.com/kitsunebi/disaster-info-api/internal/shelter"
)

type translatedMessage struct {
	Original   string `json:"original"`
	Translated string `json:"translated"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

type pushResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (s *Server) handleEarthquakes(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 10)
	target := queryLang(r)

	quakes, err := s.deps.Quakes.RecentQuakes(r.Context(), limit)
	if err != nil {
		s.logger.Error("earthquake fetch failed", "error", err)
		quakes = nil
	}
	if quakes == nil {
		quakes = []domain.Earthquake{}
	}

	if target != lang.Default {
		for i := range quakes {
			quakes[i] = domain.EnrichEarthquake(r.Context(), s.deps.Localizer, quakes[i], target)
		}
	}
	writeJSON(w, http.StatusOK, quakes)
}

func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	areaCode := r.PathValue("areaCode")
	target := queryLang(r)

	report, err := s.deps.Weather.Overview(r.Context(), areaCode)
	if err != nil {
		s.logger.Error("weather fetch failed", "area_code", areaCode, "error", err)
		writeJSON(w, http.StatusOK, nil)
		return
	}
	if target != lang.Default {
		report.TextTranslated = s.deps.Localizer.Translate(r.Context(), report.Text, target)
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleAlerts(w http.ResponseWriter, r *http.Request) {
	areaCode := r.URL.Query().Get("area_code")
	if areaCode == "" {
		areaCode = "130000"
	}
	target := queryLang(r)

	alerts := []domain.Alert{}
	bulletin, err := s.deps.Warnings.Warnings(r.Context(), areaCode)
	if err != nil {
		s.logger.Error("warning fetch failed", "area_code", areaCode, "error", err)
	} else {
		alerts = append(alerts, domain.BuildAlerts(r.Context(), s.deps.Localizer, bulletin, areaCode, target, s.logger)...)
	}
	writeJSON(w, http.StatusOK, alerts)
}

func (s *Server) handleSpecialWarnings(w http.ResponseWriter, r *http.Request) {
	target := queryLang(r)

	special := []domain.Alert{}
	for _, pb := range s.deps.Warnings.AllPrefectureWarnings(r.Context()) {
		built := domain.BuildAlerts(r.Context(), s.deps.Localizer, pb.Bulletin, pb.AreaCode, lang.Default, s.logger)
		special = append(special, domain.FilterSpecial(built)...)
	}

	if target != lang.Default {
		for i := range special {
			special[i].TitleTranslated = s.deps.Localizer.Translate(r.Context(), special[i].Title, target)
			special[i].DescriptionTranslated = s.deps.Localizer.Translate(r.Context(), special[i].Description, target)
		}
	}
	writeJSON(w, http.StatusOK, special)
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text       string `json:"text"`
		TargetLang string `json:"target_lang"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "リクエストボディを解析できません")
		return
	}
	if req.Text == "" {
		s.writeError(w, http.StatusBadRequest, "textは必須です")
		return
	}
	if utf8.RuneCountInString(req.Text) > s.cfg.MaxTranslateTextLength {
		s.writeError(w, http.StatusBadRequest,
			fmt.Sprintf("テキストが長すぎます。最大%d文字です。", s.cfg.MaxTranslateTextLength))
		return
	}
	if req.TargetLang == "" {
		req.TargetLang = "en"
	}
	if !lang.IsSupported(req.TargetLang) {
		s.writeError(w, http.StatusBadRequest, "未対応の言語コードです: "+req.TargetLang)
		return
	}

	writeJSON(w, http.StatusOK, translatedMessage{
		Original:   req.Text,
		Translated: s.deps.Localizer.Translate(r.Context(), req.Text, req.TargetLang),
		SourceLang: lang.Default,
		TargetLang: req.TargetLang,
	})
}

func (s *Server) handleShelters(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	latStr, lonStr := q.Get("lat"), q.Get("lon")
	if latStr == "" || lonStr == "" {
		s.writeError(w, http.StatusBadRequest, "緯度・経度を指定してください")
		return
	}
	lat, latErr := strconv.ParseFloat(latStr, 64)
	lon, lonErr := strconv.ParseFloat(lonStr, 64)
	if latErr != nil || lonErr != nil {
		s.writeError(w, http.StatusBadRequest, "緯度・経度の形式が不正です")
		return
	}

	radius := queryFloat(r, "radius", 5.0)
	limit := queryInt(r, "limit", 20)
	target := queryLang(r)

	shelters := s.deps.Shelters.Nearby(lat, lon, radius, limit, q.Get("disaster_type"))
	if target != lang.Default {
		for i := range shelters {
			shelters[i].NameTranslated = s.deps.Localizer.Translate(r.Context(), shelters[i].Name, target)
		}
	}
	writeJSON(w, http.StatusOK, shelters)
}

func (s *Server) handleShelterTypes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, shelter.DisasterTypes())
}

func (s *Server) handleTsunami(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 10)
	target := queryLang(r)

	events, err := s.deps.Tsunami.TsunamiList(r.Context(), limit)
	if err != nil {
		s.logger.Error("tsunami fetch failed", "error", err)
		events = nil
	}
	writeJSON(w, http.StatusOK, s.localizeTsunami(r, events, target))
}

func (s *Server) handleActiveTsunami(w http.ResponseWriter, r *http.Request) {
	target := queryLang(r)

	events, err := s.deps.Tsunami.ActiveTsunami(r.Context())
	if err != nil {
		s.logger.Error("active tsunami fetch failed", "error", err)
		events = nil
	}
	writeJSON(w, http.StatusOK, s.localizeTsunami(r, events, target))
}

func (s *Server) localizeTsunami(r *http.Request, events []domain.TsunamiEvent, target string) []domain.TsunamiEvent {
	if events == nil {
		events = []domain.TsunamiEvent{}
	}
	if target == lang.Default {
		return events
	}
	for i := range events {
		events[i].MessageTranslated = s.deps.Localizer.Translate(r.Context(), events[i].Message, target)
	}
	return events
}

func (s *Server) handleVolcanoes(w http.ResponseWriter, r *http.Request) {
	monitoredOnly := queryBool(r, "monitored_only", true)

	volcanoes, err := s.deps.Volcanoes.VolcanoList(r.Context())
	if err != nil {
		s.logger.Error("volcano fetch failed", "error", err)
		volcanoes = nil
	}

	out := make([]domain.VolcanoInfo, 0, len(volcanoes))
	for _, v := range volcanoes {
		if monitoredOnly && !v.IsMonitored {
			continue
		}
		out = append(out, v)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleVolcanoWarnings(w http.ResponseWriter, r *http.Request) {
	warnings := s.deps.Volcanoes.VolcanoWarnings(r.Context())
	if warnings == nil {
		warnings = []domain.VolcanoWarning{}
	}
	writeJSON(w, http.StatusOK, warnings)
}

func (s *Server) handleVolcanoByCode(w http.ResponseWriter, r *http.Request) {
	code, err := strconv.Atoi(r.PathValue("code"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "不正な火山コードです")
		return
	}

	volcanoes, err := s.deps.Volcanoes.VolcanoList(r.Context())
	if err != nil {
		s.logger.Error("volcano fetch failed", "code", code, "error", err)
	}
	for _, v := range volcanoes {
		if v.Code == code {
			writeJSON(w, http.StatusOK, v)
			return
		}
	}
	s.writeError(w, http.StatusNotFound, "火山が見つかりません")
}

func (s *Server) handleLanguages(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, lang.Supported())
}

func (s *Server) handleSafetyGuide(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	disasterType := q.Get("disaster_type")
	if !lang.IsDisasterType(disasterType) {
		s.writeError(w, http.StatusBadRequest, "不正な災害種別です。対応: "+strings.Join(guideTypeCodes(), ", "))
		return
	}

	severity := domain.Severity(q.Get("severity"))
	if severity == "" {
		severity = domain.SeverityMedium
	}
	if !domain.ValidSeverity(severity) {
		s.writeError(w, http.StatusBadRequest, "不正な重要度です。対応: low, medium, high, extreme")
		return
	}

	guide := s.deps.Guides.Generate(r.Context(), disasterType, queryLang(r), q.Get("location"), severity)
	writeJSON(w, http.StatusOK, guide)
}

func (s *Server) handleSafetyGuideTypes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, lang.DisasterTypes())
}

func (s *Server) handlePushSubscribe(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Endpoint string            `json:"endpoint"`
		Keys     map[string]string `json:"keys"`
		Language string            `json:"language"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "リクエストボディを解析できません")
		return
	}
	if req.Endpoint == "" {
		s.writeError(w, http.StatusBadRequest, "endpointは必須です")
		return
	}

	if _, err := s.deps.Push.Subscribe(req.Endpoint, req.Keys, req.Language); err != nil {
		s.logger.Error("push subscribe failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "サブスクリプション保存に失敗しました")
		return
	}
	writeJSON(w, http.StatusOK, pushResponse{Success: true, Message: "サブスクリプションを登録しました"})
}

func (s *Server) handlePushUnsubscribe(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Endpoint string `json:"endpoint"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "リクエストボディを解析できません")
		return
	}
	if req.Endpoint == "" {
		s.writeError(w, http.StatusBadRequest, "endpointは必須です")
		return
	}

	removed, err := s.deps.Push.Unsubscribe(req.Endpoint)
	if err != nil {
		s.logger.Error("push unsubscribe failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "サブスクリプション保存に失敗しました")
		return
	}
	if !removed {
		writeJSON(w, http.StatusOK, pushResponse{Success: false, Message: "指定されたサブスクリプションが見つかりません"})
		return
	}
	writeJSON(w, http.StatusOK, pushResponse{Success: true, Message: "サブスクリプションを解除しました"})
}

func (s *Server) handlePushTest(w http.ResponseWriter, r *http.Request) {
	if s.cfg.IsProduction() {
		s.writeError(w, http.StatusForbidden, "テスト通知は開発環境でのみ使用できます")
		return
	}
	if s.deps.Alerts == nil {
		s.writeError(w, http.StatusServiceUnavailable, "アラート配信が無効のためテスト通知を送信できません")
		return
	}

	var req struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	}
	if err := decodeJSON(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		s.writeError(w, http.StatusBadRequest, "リクエストボディを解析できません")
		return
	}
	if req.Title == "" {
		req.Title = "テスト通知"
	}

	event := domain.AlertEvent{
		ID:         uuid.NewString(),
		Kind:       "test",
		Title:      req.Title,
		Message:    req.Body,
		Severity:   domain.SeverityLow,
		DetectedAt: time.Now(),
	}
	if err := s.deps.Alerts.Publish(r.Context(), event); err != nil {
		s.logger.Error("test alert publish failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "テスト通知の送信に失敗しました")
		return
	}
	writeJSON(w, http.StatusOK, pushResponse{Success: true, Message: "テストアラートを配信しました"})
}

// guideTypeCodes lists the guide disaster types in a stable order for
// validation messages.
func guideTypeCodes() []string {
	types := lang.DisasterTypes()
	codes := make([]string, 0, len(types))
	for code := range types {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(v)
}

func queryLang(r *http.Request) string {
	if v := r.URL.Query().Get("lang"); v != "" {
		return v
	}
	return lang.Default
}

func queryInt(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func queryFloat(r *http.Request, key string, fallback float64) float64 {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func queryBool(r *http.Request, key string, fallback bool) bool {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
