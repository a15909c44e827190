package response

import (
	"time"

	"merenda_escolar/internal/domain/entities"
)

type InstitutionResponse struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	City            string         `json:"city"`
	StudentsByStage map[string]int `json:"students_by_stage"`
	CreatedAt       time.Time      `json:"created_at"`
}

func FromInstitution(i entities.Institution) InstitutionResponse {
	students := make(map[string]int, len(i.StudentsByStage))
	for stage, count := range i.StudentsByStage {
		students[string(stage)] = count
	}
	return InstitutionResponse{
		ID:              i.ID,
		Name:            i.Name,
		City:            i.City,
		StudentsByStage: students,
		CreatedAt:       i.CreatedAt,
	}
}

func FromInstitutions(institutions []entities.Institution) []InstitutionResponse {
	out := make([]InstitutionResponse, 0, len(institutions))
	for _, i := range institutions {
		out = append(out, FromInstitution(i))
	}
	return out
}
