// Package annotation превращает записи инцидентов в наложения для виджета карты.
package annotation

import (
	"github.com/google/uuid"

	"github.com/shenikar/bodycam_dashboard/internal/classifier"
	"github.com/shenikar/bodycam_dashboard/internal/models"
)

// Style - параметры отрисовки наложений
type Style struct {
	RadiusMeters float64            `yaml:"radius_meters" json:"radius_meters"`
	Primary      models.PathOptions `yaml:"primary" json:"primary"`
	Secondary    models.PathOptions `yaml:"secondary" json:"secondary"`
	MarkerIcon   models.MarkerIcon  `yaml:"marker_icon" json:"marker_icon"`
	DefaultTitle string             `yaml:"default_title" json:"default_title"`
}

// DefaultStyle возвращает стиль дашборда
func DefaultStyle() Style {
	return Style{
		RadiusMeters: 500,
		Primary:      models.PathOptions{Color: "red", FillColor: "red", FillOpacity: 0.3},
		Secondary:    models.PathOptions{Color: "orange", FillColor: "orange", FillOpacity: 0.3},
		MarkerIcon:   models.MarkerIcon{URL: "./images/custom-marker.png", Size: [2]int{38, 38}},
		DefaultTitle: "BodyCam footage",
	}
}

// WithDefaults заполняет незаданные поля значениями по умолчанию
func (s Style) WithDefaults() Style {
	d := DefaultStyle()
	if s.RadiusMeters <= 0 {
		s.RadiusMeters = d.RadiusMeters
	}
	if s.Primary == (models.PathOptions{}) {
		s.Primary = d.Primary
	}
	if s.Secondary == (models.PathOptions{}) {
		s.Secondary = d.Secondary
	}
	if s.MarkerIcon.URL == "" {
		s.MarkerIcon = d.MarkerIcon
	}
	if s.DefaultTitle == "" {
		s.DefaultTitle = d.DefaultTitle
	}
	return s
}

type Builder struct {
	classifier *classifier.Classifier
	style      Style
}

func NewBuilder(c *classifier.Classifier, style Style) *Builder {
	if c == nil {
		c = classifier.Default()
	}
	return &Builder{classifier: c, style: style.WithDefaults()}
}

// Build возвращает по маркеру на каждую запись и круг для записей с уровнем выше None.
// Порядок совпадает с порядком записей, маркер идёт перед кругом.
// Записи с двумя уровнями получают один круг в стиле более высокого уровня.
func (b *Builder) Build(records []models.IncidentRecord) []models.Overlay {
	overlays := make([]models.Overlay, 0, len(records)*2)
	for _, r := range records {
		severity := b.classifier.Classify(r.Description)
		overlays = append(overlays, b.marker(r, severity))
		if circle, ok := b.circle(r, severity); ok {
			overlays = append(overlays, circle)
		}
	}
	return overlays
}

func (b *Builder) marker(r models.IncidentRecord, severity models.Severity) models.Overlay {
	title := r.Title
	if title == "" {
		title = b.style.DefaultTitle
	}
	icon := b.style.MarkerIcon
	return models.Overlay{
		Kind:       models.OverlayMarker,
		IncidentID: recordID(r),
		Center:     r.Position,
		Severity:   severity,
		Icon:       &icon,
		Popup: &models.Popup{
			Title:       title,
			MediaRef:    r.MediaRef,
			Description: r.Description,
			Position:    r.Position,
		},
	}
}

func (b *Builder) circle(r models.IncidentRecord, severity models.Severity) (models.Overlay, bool) {
	var style models.PathOptions
	switch severity {
	case models.SeverityPrimary:
		style = b.style.Primary
	case models.SeveritySecondary:
		style = b.style.Secondary
	default:
		return models.Overlay{}, false
	}
	return models.Overlay{
		Kind:         models.OverlayCircle,
		IncidentID:   recordID(r),
		Center:       r.Position,
		Severity:     severity,
		RadiusMeters: b.style.RadiusMeters,
		Style:        &style,
	}, true
}

func recordID(r models.IncidentRecord) string {
	if r.ID == uuid.Nil {
		return ""
	}
	return r.ID.String()
}
