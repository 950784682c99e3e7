// Package shelter serves evacuation shelter lookups from a local JSON
// dataset, with a built-in Tokyo sample set when no dataset is provisioned.
package shelter

import (
	"encoding/json"
	"log/slog"
	"math"
	"os"
	"sort"

	"github.com/kitsunebi/disaster-info-api/internal/domain"
)

const earthRadiusKm = 6371

// disasterTypes maps shelter suitability codes to their Japanese names,
// following the 国土地理院 shelter dataset categories.
var disasterTypes = map[string]string{
	"flood":        "洪水",
	"landslide":    "崖崩れ、土石流及び地滑り",
	"storm_surge":  "高潮",
	"earthquake":   "地震",
	"tsunami":      "津波",
	"fire":         "大規模な火事",
	"inland_flood": "内水氾濫",
	"volcano":      "火山現象",
}

// Store answers shelter queries from an in-memory dataset loaded once at
// construction. The dataset is never mutated after load, so reads need no
// locking.
type Store struct {
	shelters []domain.Shelter
	logger   *slog.Logger
}

// NewStore loads the shelter dataset at path. A missing file is not an
// error; the store falls back to the built-in sample set, as it does for a
// corrupt file (after logging).
func NewStore(path string, logger *slog.Logger) *Store {
	s := &Store{logger: logger}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Error("shelter dataset read failed", "path", path, "error", err)
		}
		s.shelters = builtinShelters()
		return s
	}
	if err := json.Unmarshal(data, &s.shelters); err != nil {
		s.logger.Error("shelter dataset corrupt, using built-in sample", "path", path, "error", err)
		s.shelters = builtinShelters()
	}
	return s
}

// Nearby returns shelters within radiusKm of (lat, lon), closest first,
// each annotated with its distance in km rounded to two decimals. A
// non-empty disasterType keeps only shelters suited to it. A limit of
// zero or less means no limit.
func (s *Store) Nearby(lat, lon, radiusKm float64, limit int, disasterType string) []domain.Shelter {
	out := make([]domain.Shelter, 0)
	for _, sh := range s.shelters {
		d := haversineKm(lat, lon, sh.Latitude, sh.Longitude)
		if d > radiusKm {
			continue
		}
		if disasterType != "" && !suitsType(sh, disasterType) {
			continue
		}
		sh.Distance = math.Round(d*100) / 100
		out = append(out, sh)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// All returns up to limit shelters in dataset order.
func (s *Store) All(limit int) []domain.Shelter {
	out := make([]domain.Shelter, len(s.shelters))
	copy(out, s.shelters)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// ByType returns up to limit shelters suited to disasterType.
func (s *Store) ByType(disasterType string, limit int) []domain.Shelter {
	out := make([]domain.Shelter, 0)
	for _, sh := range s.shelters {
		if suitsType(sh, disasterType) {
			out = append(out, sh)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// ByID returns the shelter with the given ID.
func (s *Store) ByID(id string) (domain.Shelter, bool) {
	for _, sh := range s.shelters {
		if sh.ID == id {
			return sh, true
		}
	}
	return domain.Shelter{}, false
}

// Len returns the number of loaded shelters.
func (s *Store) Len() int {
	return len(s.shelters)
}

// DisasterTypes returns the supported shelter suitability codes mapped to
// their Japanese names.
func DisasterTypes() map[string]string {
	out := make(map[string]string, len(disasterTypes))
	for k, v := range disasterTypes {
		out[k] = v
	}
	return out
}

// KnownDisasterType reports whether code is a recognized suitability code.
func KnownDisasterType(code string) bool {
	_, ok := disasterTypes[code]
	return ok
}

func suitsType(sh domain.Shelter, disasterType string) bool {
	for _, t := range sh.Types {
		if t == disasterType {
			return true
		}
	}
	return false
}

// haversineKm is the great-circle distance between two coordinates in km.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// builtinShelters is the sample dataset covering major Tokyo evacuation
// sites, used until a real dataset file is provisioned.
func builtinShelters() []domain.Shelter {
	return []domain.Shelter{
		{
			ID:         "tokyo_001",
			Name:       "東京都庁",
			Address:    "東京都新宿区西新宿2-8-1",
			Latitude:   35.6896,
			Longitude:  139.6917,
			Capacity:   5000,
			Facilities: []string{"バリアフリー", "駐車場"},
			Types:      []string{"earthquake", "fire"},
			IsOpen:     true,
		},
		{
			ID:         "tokyo_002",
			Name:       "新宿中央公園",
			Address:    "東京都新宿区西新宿2-11",
			Latitude:   35.6909,
			Longitude:  139.6892,
			Capacity:   10000,
			Facilities: []string{"広域避難場所"},
			Types:      []string{"earthquake", "fire"},
			IsOpen:     true,
		},
		{
			ID:         "tokyo_003",
			Name:       "代々木公園",
			Address:    "東京都渋谷区代々木神園町2-1",
			Latitude:   35.6715,
			Longitude:  139.6949,
			Capacity:   20000,
			Facilities: []string{"広域避難場所", "駐車場"},
			Types:      []string{"earthquake", "fire"},
			IsOpen:     true,
		},
		{
			ID:         "tokyo_004",
			Name:       "渋谷区役所",
			Address:    "東京都渋谷区宇田川町1-1",
			Latitude:   35.6641,
			Longitude:  139.6979,
			Capacity:   2000,
			Facilities: []string{"バリアフリー"},
			Types:      []string{"earthquake", "flood"},
			IsOpen:     true,
		},
		{
			ID:         "tokyo_005",
			Name:       "上野公園",
			Address:    "東京都台東区上野公園5-20",
			Latitude:   35.7146,
			Longitude:  139.7732,
			Capacity:   15000,
			Facilities: []string{"広域避難場所", "バリアフリー"},
			Types:      []string{"earthquake", "fire"},
			IsOpen:     true,
		},
	}
}
