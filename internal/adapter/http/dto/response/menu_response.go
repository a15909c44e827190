package response

import (
	"time"

	"merenda_escolar/internal/domain/entities"
)

type MenuResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromMenu(m entities.Menu) MenuResponse {
	return MenuResponse{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

func FromMenus(menus []entities.Menu) []MenuResponse {
	out := make([]MenuResponse, 0, len(menus))
	for _, m := range menus {
		out = append(out, FromMenu(m))
	}
	return out
}
