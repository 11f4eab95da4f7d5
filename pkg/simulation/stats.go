package simulation

import (
	"encoding/json"
	"os"

	"github.com/gocarina/gocsv"
)

// survivalResultRow is the CSV projection of SurvivalResult: gocsv marshals
// by struct tag, so the wire-shaped SurvivalResult stays free of csv tags.
type survivalResultRow struct {
	LineageID      string  `csv:"lineage_id"`
	Survived       int     `csv:"survived"`
	TotalSpawned   int     `csv:"total_spawned"`
	AvgLifespan    float64 `csv:"avg_lifespan"`
	TotalFoodEaten int     `csv:"total_food_eaten"`
}

// ExportResultsCSV writes one run's survival results as CSV, one row per
// lineage, via struct-tag marshaling.
func ExportResultsCSV(results []SurvivalResult, filename string) error {
	rows := make([]survivalResultRow, len(results))
	for i, r := range results {
		rows[i] = survivalResultRow{
			LineageID:      r.LineageID,
			Survived:       r.Survived,
			TotalSpawned:   r.TotalSpawned,
			AvgLifespan:    r.AvgLifespan,
			TotalFoodEaten: r.TotalFoodEaten,
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return gocsv.Marshal(rows, file)
}

// ExportResultsJSON writes one run's survival results as indented JSON.
func ExportResultsJSON(results []SurvivalResult, filename string) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}
