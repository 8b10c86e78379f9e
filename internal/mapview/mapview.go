// Package mapview загружает именованные пресеты карты из YAML.
package mapview

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/shenikar/bodycam_dashboard/internal/annotation"
	"github.com/shenikar/bodycam_dashboard/internal/classifier"
	"github.com/shenikar/bodycam_dashboard/internal/geo"
	"github.com/shenikar/bodycam_dashboard/internal/models"
	"gopkg.in/yaml.v3"
)

const DefaultViewName = "dashboard"

// Preset - вид карты вместе со стилем наложений и словами классификатора
type Preset struct {
	View     models.MapView
	Style    annotation.Style
	Keywords classifier.Rules
}

type fileConfig struct {
	Views []viewConfig `yaml:"views"`
}

type viewConfig struct {
	Name      string           `yaml:"name"`
	Title     string           `yaml:"title"`
	Center    [2]float64       `yaml:"center"`
	Zoom      int              `yaml:"zoom"`
	MinZoom   int              `yaml:"min_zoom"`
	MaxZoom   int              `yaml:"max_zoom"`
	MaxBounds [2][2]float64    `yaml:"max_bounds"`
	Style     annotation.Style `yaml:"style"`
	Keywords  classifier.Rules `yaml:"keywords"`
}

// Registry - набор пресетов по имени
type Registry struct {
	presets map[string]Preset
}

// DefaultPreset - карта дашборда на весь мир с центром в Лондоне
func DefaultPreset() Preset {
	return Preset{
		View: models.MapView{
			Name:    DefaultViewName,
			Center:  models.Position{Lat: 51.505, Lng: -0.09},
			Zoom:    13,
			MinZoom: 2,
			MaxZoom: 18,
			MaxBounds: models.Bounds{
				SouthWest: models.Position{Lat: -90, Lng: -180},
				NorthEast: models.Position{Lat: 90, Lng: 180},
			},
		},
		Style: annotation.DefaultStyle(),
	}
}

// NewRegistry создаёт реестр из готовых пресетов
func NewRegistry(presets ...Preset) (*Registry, error) {
	r := &Registry{presets: make(map[string]Preset, len(presets))}
	for _, p := range presets {
		if err := validateView(p.View); err != nil {
			return nil, err
		}
		if _, dup := r.presets[p.View.Name]; dup {
			return nil, fmt.Errorf("mapview: duplicate view %q", p.View.Name)
		}
		p.Style = p.Style.WithDefaults()
		r.presets[p.View.Name] = p
	}
	if len(r.presets) == 0 {
		d := DefaultPreset()
		r.presets[d.View.Name] = d
	}
	return r, nil
}

// Load читает пресеты из файла. Если файла нет, используется пресет по умолчанию.
func Load(path string) (*Registry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewRegistry()
		}
		return nil, fmt.Errorf("mapview: read %s: %w", path, err)
	}
	return Parse(b)
}

// Parse разбирает YAML с пресетами
func Parse(b []byte) (*Registry, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return nil, fmt.Errorf("mapview: parse yaml: %w", err)
	}
	presets := make([]Preset, 0, len(fc.Views))
	for _, v := range fc.Views {
		presets = append(presets, Preset{
			View: models.MapView{
				Name:    v.Name,
				Title:   v.Title,
				Center:  models.Position{Lat: v.Center[0], Lng: v.Center[1]},
				Zoom:    v.Zoom,
				MinZoom: v.MinZoom,
				MaxZoom: v.MaxZoom,
				MaxBounds: models.Bounds{
					SouthWest: models.Position{Lat: v.MaxBounds[0][0], Lng: v.MaxBounds[0][1]},
					NorthEast: models.Position{Lat: v.MaxBounds[1][0], Lng: v.MaxBounds[1][1]},
				},
			},
			Style:    v.Style,
			Keywords: v.Keywords,
		})
	}
	return NewRegistry(presets...)
}

// Get возвращает пресет по имени
func (r *Registry) Get(name string) (Preset, error) {
	p, ok := r.presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("mapview: %q: %w", name, models.ErrUnknownView)
	}
	return p, nil
}

// Views возвращает все виды, отсортированные по имени
func (r *Registry) Views() []models.MapView {
	out := make([]models.MapView, 0, len(r.presets))
	for _, p := range r.presets {
		out = append(out, p.View)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func validateView(v models.MapView) error {
	if v.Name == "" {
		return errors.New("mapview: view name is required")
	}
	if !geo.InRange(v.Center) {
		return fmt.Errorf("mapview: %q: center out of range", v.Name)
	}
	if v.MinZoom < 0 || v.MinZoom > v.Zoom || v.Zoom > v.MaxZoom {
		return fmt.Errorf("mapview: %q: zoom %d not within [%d, %d]", v.Name, v.Zoom, v.MinZoom, v.MaxZoom)
	}
	sw, ne := v.MaxBounds.SouthWest, v.MaxBounds.NorthEast
	if !geo.InRange(sw) || !geo.InRange(ne) || sw.Lat >= ne.Lat || sw.Lng >= ne.Lng {
		return fmt.Errorf("mapview: %q: invalid max bounds", v.Name)
	}
	return nil
}
