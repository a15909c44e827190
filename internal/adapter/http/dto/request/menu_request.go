package request

import (
	"strings"

	"merenda_escolar/internal/domain/entities"
)

type MenuRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (r MenuRequest) ToMenu() entities.Menu {
	return entities.Menu{
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
	}
}
