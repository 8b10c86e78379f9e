package models

import (
	"time"

	"github.com/google/uuid"
)

// Position - точка на карте в градусах WGS84
type Position struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// IncidentRecord - запись о видеофрагменте с нательной камеры.
// После создания запись не изменяется.
type IncidentRecord struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description"`
	MediaRef    string    `json:"media_ref"`
	Position    Position  `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
}
