package v1

import (
	"github.com/shenikar/bodycam_dashboard/internal/classifier"
	"github.com/shenikar/bodycam_dashboard/internal/models"
)

// DTOToIncidentModel преобразует DTO создания в доменную модель
func DTOToIncidentModel(dto CreateIncidentRequest) *models.IncidentRecord {
	return &models.IncidentRecord{
		Title:       dto.Title,
		Description: dto.Description,
		MediaRef:    dto.MediaRef,
		Position:    models.Position{Lat: *dto.Latitude, Lng: *dto.Longitude},
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.IncidentRecord) *IncidentResponse {
	return &IncidentResponse{
		ID:          model.ID,
		Title:       model.Title,
		Description: model.Description,
		MediaRef:    model.MediaRef,
		Latitude:    model.Position.Lat,
		Longitude:   model.Position.Lng,
		Severity:    classifier.Classify(model.Description),
		CreatedAt:   model.CreatedAt,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(records []models.IncidentRecord) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(records))
	for i := range records {
		responses[i] = ModelToIncidentResponse(&records[i])
	}
	return responses
}

func DTOToDraft(dto ComplaintRequest) *models.ComplaintDraft {
	return &models.ComplaintDraft{
		FullName: dto.FullName,
		Country:  dto.Country,
		City:     dto.City,
		Summary:  dto.Summary,
	}
}

func DTOToCredentials(dto CredentialsRequest) models.Credentials {
	return models.Credentials{Email: dto.Email, Password: dto.Password}
}
