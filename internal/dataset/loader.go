// Package dataset reads the household waste CSV and memoizes the parsed
// table by content hash.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/nurpe/wasteops-analytics/internal/model"
)

var requiredColumns = []string{
	"household_id",
	"collection_route",
	"population",
	"waste_gen_kg_per_day",
	"recycling_rate",
	"route_length_km",
	"route_time_hr",
}

// Parse decodes household records from CSV. The header row is mandatory and
// may list columns in any order; extra columns are ignored. A missing
// required column or a malformed numeric cell is an error.
func Parse(r io.Reader) ([]model.HouseholdRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("dataset is empty: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("dataset is missing columns %v", missing)
	}

	records := make([]model.HouseholdRecord, 0)
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		rec := model.HouseholdRecord{
			HouseholdID:     row[index["household_id"]],
			CollectionRoute: row[index["collection_route"]],
		}
		if rec.Population, err = parseInt(row, index, "population", line); err != nil {
			return nil, err
		}
		if rec.WasteKgPerDay, err = parseFloat(row, index, "waste_gen_kg_per_day", line); err != nil {
			return nil, err
		}
		if rec.RecyclingRate, err = parseFloat(row, index, "recycling_rate", line); err != nil {
			return nil, err
		}
		if rec.RouteLengthKm, err = parseFloat(row, index, "route_length_km", line); err != nil {
			return nil, err
		}
		if rec.RouteTimeHr, err = parseFloat(row, index, "route_time_hr", line); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseFloat(row []string, index map[string]int, column string, line int) (float64, error) {
	value, err := strconv.ParseFloat(row[index[column]], 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: column %s: %w", line, column, err)
	}
	return value, nil
}

func parseInt(row []string, index map[string]int, column string, line int) (int64, error) {
	value, err := strconv.ParseInt(row[index[column]], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: column %s: %w", line, column, err)
	}
	return value, nil
}
