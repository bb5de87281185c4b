package models

// MasteryStats is a read-only rollup over one profile's records for a subject.
type MasteryStats struct {
	TotalItems        int     `json:"total_items"`
	MasteredItems     int     `json:"mastered_items"`
	StrugglingItems   int     `json:"struggling_items"`
	DueForReview      int     `json:"due_for_review"`
	OverallAccuracy   float64 `json:"overall_accuracy"`
	MasteryPercentage float64 `json:"mastery_percentage"`
}

// GardenPlant pairs a record with its growth stage for the garden display.
type GardenPlant struct {
	Record MasteryRecord `json:"record"`
	Stage  string        `json:"stage"`
}
