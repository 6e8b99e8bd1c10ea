package models

// DayLayout is the calendar date format used as the diary grouping key.
const DayLayout = "2006-01-02"

// FoodItem is a single search result from the nutrition provider or the sample list.
type FoodItem struct {
	FoodName            string   `json:"food_name"`
	Calories            float64  `json:"calories"`
	ProteinG            float64  `json:"protein_g"`
	CarbohydratesTotalG float64  `json:"carbohydrates_total_g"`
	FatTotalG           float64  `json:"fat_total_g"`
	ServingQty          *float64 `json:"serving_qty,omitempty"`
	ServingUnit         *string  `json:"serving_unit,omitempty"`
}

// DiaryFoodCreate is the request body accepted when logging a food.
// Name and calories must be present; an empty name is allowed.
// Macro fields left out of the payload stay at their zero value.
type DiaryFoodCreate struct {
	FoodName            *string  `json:"food_name" binding:"required"`
	Calories            *float64 `json:"calories" binding:"required"`
	ProteinG            float64  `json:"protein_g"`
	CarbohydratesTotalG float64  `json:"carbohydrates_total_g"`
	FatTotalG           float64  `json:"fat_total_g"`
	ConsumedAt          string   `json:"consumed_at"`
}

// FoodEntry is a persisted diary record. ID is assigned by the store.
type FoodEntry struct {
	ID                  string  `json:"_id"`
	FoodName            string  `json:"food_name"`
	Calories            float64 `json:"calories"`
	ProteinG            float64 `json:"protein_g"`
	CarbohydratesTotalG float64 `json:"carbohydrates_total_g"`
	FatTotalG           float64 `json:"fat_total_g"`
	Day                 string  `json:"day"`
}

// MacroTotals holds the per-day sums of the four macro fields.
type MacroTotals struct {
	Calories            float64 `json:"calories"`
	ProteinG            float64 `json:"protein_g"`
	CarbohydratesTotalG float64 `json:"carbohydrates_total_g"`
	FatTotalG           float64 `json:"fat_total_g"`
}

// DaySummary is the derived view of a single diary day.
type DaySummary struct {
	Day     string      `json:"day"`
	Totals  MacroTotals `json:"totals"`
	Entries []FoodEntry `json:"entries"`
}

// DiaryFoodCreated is returned after a diary write.
type DiaryFoodCreated struct {
	InsertedID string     `json:"inserted_id"`
	Summary    DaySummary `json:"summary"`
}

// FoodSearchQuery is the query string of the food search route.
type FoodSearchQuery struct {
	Q string `form:"q" binding:"required,min=1"`
}

// DaySummaryQuery selects the diary day; empty means today.
type DaySummaryQuery struct {
	Day string `form:"day"`
}

// FoodSearchResponse wraps food search results.
type FoodSearchResponse struct {
	Items []FoodItem `json:"items"`
}
