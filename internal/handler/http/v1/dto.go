package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/bodycam_dashboard/internal/models"
)

// CreateIncidentRequest DTO для создания записи
// @Description DTO для создания записи
type CreateIncidentRequest struct {
	Title       string   `json:"title,omitempty" validate:"max=255"`
	Description string   `json:"description" validate:"required,nonblank,max=4000"`
	MediaRef    string   `json:"media_ref" validate:"required,url"`
	Latitude    *float64 `json:"latitude" validate:"required,latitude"`
	Longitude   *float64 `json:"longitude" validate:"required,longitude"`
}

// IncidentResponse DTO для ответа с информацией о записи
// @Description DTO для ответа с информацией о записи
type IncidentResponse struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title,omitempty"`
	Description string          `json:"description"`
	MediaRef    string          `json:"media_ref"`
	Latitude    float64         `json:"latitude"`
	Longitude   float64         `json:"longitude"`
	Severity    models.Severity `json:"severity" swaggertype:"string" enums:"none,secondary,primary"`
	CreatedAt   time.Time       `json:"created_at"`
}

// LocationRequest DTO с координатами в виде введённого текста
// @Description DTO с координатами в виде введённого текста
type LocationRequest struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

// LocationResponse DTO с результатом проверки координат
// @Description DTO с результатом проверки координат
type LocationResponse struct {
	Valid    bool             `json:"valid"`
	Position *models.Position `json:"position,omitempty"`
	Kind     string           `json:"kind,omitempty"`
	Message  string           `json:"message,omitempty"`
}

// PreviewRequest DTO для перестроения наложений одной записи после ручного ввода
// @Description DTO для перестроения наложений одной записи после ручного ввода
type PreviewRequest struct {
	View        string           `json:"view,omitempty"`
	Current     *models.Position `json:"current,omitempty"`
	Latitude    string           `json:"latitude"`
	Longitude   string           `json:"longitude"`
	Title       string           `json:"title,omitempty"`
	Description string           `json:"description"`
	MediaRef    string           `json:"media_ref"`
}

// PreviewResponse DTO с новой позицией и наложениями
// @Description DTO с новой позицией и наложениями
type PreviewResponse struct {
	Position models.Position  `json:"position"`
	LatText  string           `json:"lat_text"`
	LngText  string           `json:"lng_text"`
	Overlays []models.Overlay `json:"overlays"`
}

// ComplaintRequest DTO формы жалобы
// @Description DTO формы жалобы
type ComplaintRequest struct {
	FullName string `json:"full_name" validate:"required,nonblank,max=200"`
	Country  string `json:"country" validate:"required,nonblank,max=100"`
	City     string `json:"city" validate:"required,nonblank,max=100"`
	Summary  string `json:"summary" validate:"required,nonblank,max=4000"`
}

// ComplaintResponse DTO ответа на отправку: сообщение и состояние формы
// @Description DTO ответа на отправку: сообщение и состояние формы
type ComplaintResponse struct {
	Message string                `json:"message,omitempty"`
	Error   string                `json:"error,omitempty"`
	Draft   models.ComplaintDraft `json:"draft"`
}

// CredentialsRequest DTO для регистрации и входа
// @Description DTO для регистрации и входа
type CredentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}
