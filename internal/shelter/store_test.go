package shelter

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Coordinates of the 東京都庁 sample shelter, used as the search origin.
const (
	originLat = 35.6896
	originLon = 139.6917
)

func testStore(t *testing.T, path string) *Store {
	t.Helper()
	return NewStore(path, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestNewStore_MissingFileUsesBuiltinSample(t *testing.T) {
	s := testStore(t, filepath.Join(t.TempDir(), "nope.json"))

	assert.Equal(t, 5, s.Len())
	sh, ok := s.ByID("tokyo_001")
	require.True(t, ok)
	assert.Equal(t, "東京都庁", sh.Name)
	assert.Equal(t, "東京都新宿区西新宿2-8-1", sh.Address)
	assert.True(t, sh.IsOpen)
}

func TestNewStore_LoadsDatasetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shelters.json")
	data := `[
		{
			"id": "osaka_001",
			"name": "大阪城公園",
			"address": "大阪府大阪市中央区大阪城",
			"latitude": 34.6873,
			"longitude": 135.5262,
			"capacity": 30000,
			"facilities": ["広域避難場所"],
			"is_open": true,
			"phone": "06-0000-0000",
			"types": ["earthquake", "fire"]
		},
		{
			"id": "osaka_002",
			"name": "大阪市役所",
			"address": "大阪府大阪市北区中之島1-3-20",
			"latitude": 34.6937,
			"longitude": 135.5019,
			"is_open": false,
			"types": ["flood"]
		}
	]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	s := testStore(t, path)
	assert.Equal(t, 2, s.Len())

	sh, ok := s.ByID("osaka_001")
	require.True(t, ok)
	assert.Equal(t, "大阪城公園", sh.Name)
	assert.Equal(t, 30000, sh.Capacity)
	assert.Equal(t, "06-0000-0000", sh.Phone)
	assert.Equal(t, []string{"earthquake", "fire"}, sh.Types)

	closed, ok := s.ByID("osaka_002")
	require.True(t, ok)
	assert.False(t, closed.IsOpen)
}

func TestNewStore_CorruptFileUsesBuiltinSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shelters.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := testStore(t, path)
	assert.Equal(t, 5, s.Len())
}

func TestStore_Nearby(t *testing.T) {
	s := testStore(t, filepath.Join(t.TempDir(), "nope.json"))

	got := s.Nearby(originLat, originLon, 5.0, 20, "")
	require.Len(t, got, 4, "上野公園 is ~7.9km out and must be excluded")

	ids := make([]string, 0, len(got))
	for _, sh := range got {
		ids = append(ids, sh.ID)
	}
	assert.Equal(t, []string{"tokyo_001", "tokyo_002", "tokyo_003", "tokyo_004"}, ids)

	assert.Equal(t, 0.0, got[0].Distance)
	assert.Equal(t, 0.27, got[1].Distance)
	for _, sh := range got[1:] {
		assert.Greater(t, sh.Distance, 0.0)
		assert.LessOrEqual(t, sh.Distance, 5.0)
	}
}

func TestStore_Nearby_RadiusFilter(t *testing.T) {
	s := testStore(t, filepath.Join(t.TempDir(), "nope.json"))

	got := s.Nearby(originLat, originLon, 1.0, 20, "")
	require.Len(t, got, 2)
	assert.Equal(t, "tokyo_001", got[0].ID)
	assert.Equal(t, "tokyo_002", got[1].ID)
}

func TestStore_Nearby_TypeFilter(t *testing.T) {
	s := testStore(t, filepath.Join(t.TempDir(), "nope.json"))

	got := s.Nearby(originLat, originLon, 5.0, 20, "flood")
	require.Len(t, got, 1)
	assert.Equal(t, "tokyo_004", got[0].ID)
}

func TestStore_Nearby_Limit(t *testing.T) {
	s := testStore(t, filepath.Join(t.TempDir(), "nope.json"))

	got := s.Nearby(originLat, originLon, 5.0, 2, "")
	require.Len(t, got, 2)
	assert.Equal(t, "tokyo_001", got[0].ID)
	assert.Equal(t, "tokyo_002", got[1].ID)
}

func TestStore_Nearby_DoesNotMutateDataset(t *testing.T) {
	s := testStore(t, filepath.Join(t.TempDir(), "nope.json"))

	_ = s.Nearby(originLat, originLon, 5.0, 20, "")

	for _, sh := range s.All(0) {
		assert.Equal(t, 0.0, sh.Distance, "distance annotations must stay on the returned copies")
	}
}

func TestStore_All(t *testing.T) {
	s := testStore(t, filepath.Join(t.TempDir(), "nope.json"))

	assert.Len(t, s.All(0), 5)
	assert.Len(t, s.All(3), 3)
	assert.Equal(t, "tokyo_001", s.All(3)[0].ID)
}

func TestStore_ByType(t *testing.T) {
	s := testStore(t, filepath.Join(t.TempDir(), "nope.json"))

	fire := s.ByType("fire", 0)
	require.Len(t, fire, 4)
	for _, sh := range fire {
		assert.Contains(t, sh.Types, "fire")
	}

	assert.Len(t, s.ByType("fire", 2), 2)
	assert.Empty(t, s.ByType("landslide", 0))
}

func TestStore_ByID_NotFound(t *testing.T) {
	s := testStore(t, filepath.Join(t.TempDir(), "nope.json"))

	_, ok := s.ByID("nagoya_001")
	assert.False(t, ok)
}

func TestDisasterTypes(t *testing.T) {
	types := DisasterTypes()
	assert.Len(t, types, 8)
	assert.Equal(t, "洪水", types["flood"])
	assert.Equal(t, "地震", types["earthquake"])
	assert.Equal(t, "崖崩れ、土石流及び地滑り", types["landslide"])

	types["zombie"] = "ゾンビ"
	assert.Len(t, DisasterTypes(), 8, "callers get a copy")
}

func TestKnownDisasterType(t *testing.T) {
	assert.True(t, KnownDisasterType("tsunami"))
	assert.True(t, KnownDisasterType("volcano"))
	assert.False(t, KnownDisasterType("zombie"))
	assert.False(t, KnownDisasterType(""))
}
