package request

import (
	"strings"

	"merenda_escolar/internal/domain/entities"
)

// PerCapitaRequest is the calculation payload.
//
// Students is a pointer so that an explicit zero (valid: a stage with no
// enrolled students) survives the required binding.
type PerCapitaRequest struct {
	Food     string `json:"food" binding:"required"`
	Stage    string `json:"stage" binding:"required"`
	Students *int   `json:"students" binding:"required"`
}

func (r PerCapitaRequest) ResolveFood() string {
	return strings.TrimSpace(r.Food)
}

func (r PerCapitaRequest) ResolveStage() (entities.Stage, bool) {
	stage := entities.Stage(r.Stage)
	return stage, stage.Valid()
}

func (r PerCapitaRequest) ResolveStudents() int {
	if r.Students == nil {
		return 0
	}
	return *r.Students
}
