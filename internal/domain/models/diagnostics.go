package models

// Diagnostics is the flat status object served by the diagnostics route.
type Diagnostics struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      *string  `json:"database_url"`
	DatabaseName     *string  `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// ExportRow is one line of the daily summary export.
type ExportRow struct {
	Day        string
	Totals     MacroTotals
	EntryCount int
}

// Values lays the row out as [day, calories, protein_g, carbohydrates_total_g, fat_total_g, entry_count].
func (r ExportRow) Values() []interface{} {
	return []interface{}{
		r.Day,
		r.Totals.Calories,
		r.Totals.ProteinG,
		r.Totals.CarbohydratesTotalG,
		r.Totals.FatTotalG,
		r.EntryCount,
	}
}
