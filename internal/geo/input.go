package geo

import (
	"strconv"

	"github.com/shenikar/bodycam_dashboard/internal/models"
)

// Input - состояние ручного ввода координат для перетаскиваемого маркера.
// Position меняется только после успешной проверки обоих полей.
type Input struct {
	LatText  string
	LngText  string
	Position models.Position
}

// NewInput создаёт ввод с начальной позицией
func NewInput(pos models.Position) *Input {
	in := &Input{}
	in.DragTo(pos)
	return in
}

// Update применяет введённый текст. При ошибке позиция не меняется.
func (in *Input) Update() error {
	pos, err := Validate(in.LatText, in.LngText)
	if err != nil {
		return err
	}
	in.Position = pos
	return nil
}

// DragTo применяет координату после перетаскивания маркера на карте
func (in *Input) DragTo(pos models.Position) {
	in.Position = pos
	in.LatText = strconv.FormatFloat(pos.Lat, 'f', 6, 64)
	in.LngText = strconv.FormatFloat(pos.Lng, 'f', 6, 64)
}
