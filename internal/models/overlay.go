package models

// OverlayKind - тип элемента карты
type OverlayKind string

const (
	OverlayMarker OverlayKind = "marker"
	OverlayCircle OverlayKind = "circle"
)

// PathOptions - стиль обводки и заливки круга
type PathOptions struct {
	Color       string  `json:"color" yaml:"color"`
	FillColor   string  `json:"fill_color" yaml:"fill_color"`
	FillOpacity float64 `json:"fill_opacity" yaml:"fill_opacity"`
}

// MarkerIcon - иконка маркера
type MarkerIcon struct {
	URL  string `json:"url" yaml:"url"`
	Size [2]int `json:"size" yaml:"size"`
}

// Popup - содержимое всплывающего окна маркера
type Popup struct {
	Title       string   `json:"title"`
	MediaRef    string   `json:"media_ref"`
	Description string   `json:"description"`
	Position    Position `json:"position"`
}

// Overlay - элемент, который виджет карты должен отрисовать.
// Для маркера заполнены Icon и Popup, для круга RadiusMeters и Style.
type Overlay struct {
	Kind         OverlayKind  `json:"kind"`
	IncidentID   string       `json:"incident_id,omitempty"`
	Center       Position     `json:"center"`
	Severity     Severity     `json:"severity"`
	RadiusMeters float64      `json:"radius_meters,omitempty"`
	Style        *PathOptions `json:"style,omitempty"`
	Icon         *MarkerIcon  `json:"icon,omitempty"`
	Popup        *Popup       `json:"popup,omitempty"`
}
