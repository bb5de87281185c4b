package models

// Subjects
const (
	SubjectMath    = "math"
	SubjectLetters = "letters"
)

// Activity types
const (
	ActivityCounting   = "counting"
	ActivityLetter     = "letter"
	ActivityComparison = "comparison"
)

// LessonCard is one activity the app can present. The scheduler only reads
// the content-defining fields; it never mutates a card.
type LessonCard struct {
	ID           string `json:"id"`
	Subject      string `json:"subject"`
	LevelID      string `json:"level_id"`
	ActivityType string `json:"activity_type"`

	// Counting
	Number     int    `json:"number,omitempty"`
	ObjectName string `json:"object_name,omitempty"`

	// Letter
	Letter string `json:"letter,omitempty"`
	Word   string `json:"word,omitempty"`

	// Comparison
	CompareLeft  int `json:"compare_left,omitempty"`
	CompareRight int `json:"compare_right,omitempty"`

	// Distractors shown alongside the answer, presentation-only.
	Options []string `json:"options,omitempty"`
}
