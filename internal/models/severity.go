package models

import "fmt"

// Severity - уровень опасности инцидента по тексту описания
type Severity int

const (
	SeverityNone Severity = iota
	SeveritySecondary
	SeverityPrimary
)

func (s Severity) String() string {
	switch s {
	case SeverityPrimary:
		return "primary"
	case SeveritySecondary:
		return "secondary"
	default:
		return "none"
	}
}

// ParseSeverity разбирает текстовое представление уровня
func ParseSeverity(v string) (Severity, error) {
	switch v {
	case "none", "":
		return SeverityNone, nil
	case "secondary":
		return SeveritySecondary, nil
	case "primary":
		return SeverityPrimary, nil
	}
	return SeverityNone, fmt.Errorf("unknown severity %q", v)
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Severity) UnmarshalText(b []byte) error {
	v, err := ParseSeverity(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
