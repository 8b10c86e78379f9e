// Package geo проверяет координаты, введённые пользователем вручную.
package geo

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shenikar/bodycam_dashboard/internal/models"
)

var (
	ErrNotNumeric = errors.New("coordinates are not numeric")
	ErrOutOfRange = errors.New("coordinates are out of range")
)

// Kind - причина отказа
type Kind int

const (
	NotNumeric Kind = iota + 1
	OutOfRange
)

func (k Kind) String() string {
	switch k {
	case NotNumeric:
		return "not_numeric"
	case OutOfRange:
		return "out_of_range"
	}
	return "unknown"
}

const (
	msgNotNumeric = "Please enter valid numeric values for latitude and longitude."
	msgOutOfRange = "Latitude must be between -90 and 90, and longitude between -180 and 180."
)

// ValidationError описывает отклонённую пару координат
type ValidationError struct {
	Kind Kind
	Lat  string
	Lng  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("geo: %s (lat=%q, lng=%q)", e.Kind, e.Lat, e.Lng)
}

func (e *ValidationError) Unwrap() error {
	if e.Kind == OutOfRange {
		return ErrOutOfRange
	}
	return ErrNotNumeric
}

// Message возвращает текст для показа пользователю
func (e *ValidationError) Message() string {
	if e.Kind == OutOfRange {
		return msgOutOfRange
	}
	return msgNotNumeric
}

// Validate разбирает широту и долготу из текста и проверяет диапазоны.
// Проверяются обе координаты сразу, границы включительно.
func Validate(latText, lngText string) (models.Position, error) {
	lat, latErr := parse(latText)
	lng, lngErr := parse(lngText)
	if latErr != nil || lngErr != nil {
		return models.Position{}, &ValidationError{Kind: NotNumeric, Lat: latText, Lng: lngText}
	}

	pos := models.Position{Lat: lat, Lng: lng}
	if !InRange(pos) {
		return models.Position{}, &ValidationError{Kind: OutOfRange, Lat: latText, Lng: lngText}
	}
	return pos, nil
}

// InRange проверяет уже разобранную точку
func InRange(p models.Position) bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

func parse(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotNumeric
	}
	return v, nil
}
