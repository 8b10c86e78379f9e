package mapview

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shenikar/bodycam_dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
views:
  - name: dashboard
    center: [51.505, -0.09]
    zoom: 13
    min_zoom: 2
    max_zoom: 18
    max_bounds: [[-90, -180], [90, 180]]
  - name: dublin
    center: [53.3492832, -6.2476664]
    zoom: 12
    min_zoom: 2
    max_zoom: 18
    max_bounds: [[51.3, -10.7], [55.5, -5.3]]
    style:
      radius_meters: 800
    keywords:
      primary: [weapon]
`

func TestParse(t *testing.T) {
	reg, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	views := reg.Views()
	require.Len(t, views, 2)
	assert.Equal(t, "dashboard", views[0].Name)
	assert.Equal(t, "dublin", views[1].Name)

	p, err := reg.Get("dublin")
	require.NoError(t, err)
	assert.Equal(t, models.Position{Lat: 53.3492832, Lng: -6.2476664}, p.View.Center)
	assert.Equal(t, 800.0, p.Style.RadiusMeters)
	assert.Equal(t, "red", p.Style.Primary.Color)
	assert.Equal(t, []string{"weapon"}, p.Keywords.Primary)
	assert.True(t, p.View.MaxBounds.Contains(models.Position{Lat: 53.3, Lng: -6.2}))
	assert.False(t, p.View.MaxBounds.Contains(models.Position{Lat: 51.505, Lng: -0.09}))
}

func TestGet_Unknown(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)

	_, err = reg.Get("nowhere")
	assert.ErrorIs(t, err, models.ErrUnknownView)

	p, err := reg.Get(DefaultViewName)
	require.NoError(t, err)
	assert.Equal(t, 13, p.View.Zoom)
}

func TestParse_InvalidViews(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "без имени", yaml: "views:\n  - center: [0, 0]\n    zoom: 3\n    max_zoom: 5\n    max_bounds: [[-1, -1], [1, 1]]\n"},
		{name: "зум вне границ", yaml: "views:\n  - name: a\n    zoom: 20\n    min_zoom: 2\n    max_zoom: 18\n    max_bounds: [[-1, -1], [1, 1]]\n"},
		{name: "перевёрнутые границы", yaml: "views:\n  - name: a\n    zoom: 3\n    max_zoom: 5\n    max_bounds: [[1, 1], [-1, -1]]\n"},
		{name: "центр вне диапазона", yaml: "views:\n  - name: a\n    center: [100, 0]\n    zoom: 3\n    max_zoom: 5\n    max_bounds: [[-1, -1], [1, 1]]\n"},
		{name: "дубликат", yaml: "views:\n  - {name: a, zoom: 3, max_zoom: 5, max_bounds: [[-1, -1], [1, 1]]}\n  - {name: a, zoom: 3, max_zoom: 5, max_bounds: [[-1, -1], [1, 1]]}\n"},
		{name: "сломанный yaml", yaml: "views: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFileUsesDefault(t *testing.T) {
	reg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	views := reg.Views()
	require.Len(t, views, 1)
	assert.Equal(t, DefaultPreset().View, views[0])
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "views.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	reg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, reg.Views(), 2)
}
