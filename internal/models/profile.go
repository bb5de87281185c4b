package models

import "time"

// Profile is one learner. Mastery records belong to exactly one profile and
// are removed only when the whole profile is deleted.
type Profile struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
