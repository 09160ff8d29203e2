package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `household_id,collection_route,population,waste_gen_kg_per_day,recycling_rate,route_length_km,route_time_hr
H-0001,Route_1,4,3.80,0.28,12.4,1.9
H-0002,Route_2,2,2.10,0.35,11.8,1.7
`

func TestParse_Valid(t *testing.T) {
	records, err := Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "H-0001", records[0].HouseholdID)
	assert.Equal(t, "Route_1", records[0].CollectionRoute)
	assert.Equal(t, int64(4), records[0].Population)
	assert.InDelta(t, 3.8, records[0].WasteKgPerDay, 1e-9)
	assert.InDelta(t, 0.28, records[0].RecyclingRate, 1e-9)
	assert.InDelta(t, 12.4, records[0].RouteLengthKm, 1e-9)
	assert.InDelta(t, 1.9, records[0].RouteTimeHr, 1e-9)
}

func TestParse_ColumnOrderIsFree(t *testing.T) {
	shuffled := `route_time_hr,household_id,recycling_rate,collection_route,waste_gen_kg_per_day,population,route_length_km,extra
1.9,H-0001,0.28,Route_1,3.80,4,12.4,ignored
`
	records, err := Parse(strings.NewReader(shuffled))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Route_1", records[0].CollectionRoute)
	assert.InDelta(t, 12.4, records[0].RouteLengthKm, 1e-9)
}

func TestParse_MissingColumn(t *testing.T) {
	headerOnly := "household_id,collection_route,population\n"
	_, err := Parse(strings.NewReader(headerOnly))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "waste_gen_kg_per_day")
	assert.Contains(t, err.Error(), "route_time_hr")
}

func TestParse_MalformedCell(t *testing.T) {
	bad := `household_id,collection_route,population,waste_gen_kg_per_day,recycling_rate,route_length_km,route_time_hr
H-0001,Route_1,4,not-a-number,0.28,12.4,1.9
`
	_, err := Parse(strings.NewReader(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, err.Error(), "waste_gen_kg_per_day")
}

func TestParse_EmptyInput(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing header")
}

func TestParse_HeaderOnlyYieldsEmptyTable(t *testing.T) {
	header := "household_id,collection_route,population,waste_gen_kg_per_day,recycling_rate,route_length_km,route_time_hr\n"
	records, err := Parse(strings.NewReader(header))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCache_MemoizesByContentHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "waste.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	cache := NewCache()
	first, firstHash, err := cache.Load(path)
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, secondHash, err := cache.Load(path)
	require.NoError(t, err)
	assert.Equal(t, firstHash, secondHash)
	// Same backing array: the file was parsed once.
	assert.True(t, &first[0] == &second[0])
}

func TestCache_ReloadsWhenContentChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "waste.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	cache := NewCache()
	_, firstHash, err := cache.Load(path)
	require.NoError(t, err)

	updated := sampleCSV + "H-0003,Route_3,3,2.50,0.40,9.1,1.3\n"
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))

	records, secondHash, err := cache.Load(path)
	require.NoError(t, err)
	assert.NotEqual(t, firstHash, secondHash)
	assert.Len(t, records, 3)
}

func TestCache_MissingFile(t *testing.T) {
	cache := NewCache()
	_, _, err := cache.Load(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
}
