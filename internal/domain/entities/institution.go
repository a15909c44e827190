package entities

import "time"

// Institution is a school unit served by supply guides.
//
// StudentsByStage holds the enrolled student count per educational stage and
// feeds the per-capita calculation when a guide is assembled.
type Institution struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	City            string        `json:"city"`
	StudentsByStage map[Stage]int `json:"students_by_stage"`
	CreatedAt       time.Time     `json:"created_at"`
}
