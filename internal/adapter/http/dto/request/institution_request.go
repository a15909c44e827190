package request

import (
	"strings"

	"merenda_escolar/internal/domain/entities"
)

type InstitutionRequest struct {
	Name            string         `json:"name" binding:"required"`
	City            string         `json:"city"`
	StudentsByStage map[string]int `json:"students_by_stage"`
}

func (r InstitutionRequest) ToInstitution() entities.Institution {
	students := make(map[entities.Stage]int, len(r.StudentsByStage))
	for stage, count := range r.StudentsByStage {
		students[entities.Stage(stage)] = count
	}
	return entities.Institution{
		Name:            strings.TrimSpace(r.Name),
		City:            strings.TrimSpace(r.City),
		StudentsByStage: students,
	}
}
