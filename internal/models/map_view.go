package models

// Bounds - прямоугольник карты: юго-западный и северо-восточный углы
type Bounds struct {
	SouthWest Position `json:"south_west" yaml:"south_west"`
	NorthEast Position `json:"north_east" yaml:"north_east"`
}

// Contains проверяет, попадает ли точка в прямоугольник (границы включительно)
func (b Bounds) Contains(p Position) bool {
	return p.Lat >= b.SouthWest.Lat && p.Lat <= b.NorthEast.Lat &&
		p.Lng >= b.SouthWest.Lng && p.Lng <= b.NorthEast.Lng
}

// MapView - параметры отображения карты
type MapView struct {
	Name      string   `json:"name"`
	Title     string   `json:"title,omitempty"`
	Center    Position `json:"center"`
	Zoom      int      `json:"zoom"`
	MinZoom   int      `json:"min_zoom"`
	MaxZoom   int      `json:"max_zoom"`
	MaxBounds Bounds   `json:"max_bounds"`
}

// MapScene - вид карты вместе с наложениями для него
type MapScene struct {
	View     MapView   `json:"view"`
	Overlays []Overlay `json:"overlays"`
}
