// Package classifier определяет уровень опасности инцидента по ключевым словам в описании.
package classifier

import (
	"strings"

	"github.com/shenikar/bodycam_dashboard/internal/models"
)

var (
	DefaultPrimary   = []string{"violence", "aggression"}
	DefaultSecondary = []string{"angry", "shouting"}
)

// Rules - наборы ключевых слов для двух уровней
type Rules struct {
	Primary   []string `yaml:"primary" json:"primary"`
	Secondary []string `yaml:"secondary" json:"secondary"`
}

// Match - результат сопоставления описания с правилами
type Match struct {
	Severity  models.Severity `json:"severity"`
	Primary   []string        `json:"primary,omitempty"`
	Secondary []string        `json:"secondary,omitempty"`
}

// Keywords возвращает все совпавшие слова, сначала первичные
func (m Match) Keywords() []string {
	out := make([]string, 0, len(m.Primary)+len(m.Secondary))
	out = append(out, m.Primary...)
	return append(out, m.Secondary...)
}

type Classifier struct {
	primary   []string
	secondary []string
}

// New создаёт классификатор. Пустой набор заменяется набором по умолчанию.
func New(rules Rules) *Classifier {
	c := &Classifier{
		primary:   normalize(rules.Primary),
		secondary: normalize(rules.Secondary),
	}
	if len(c.primary) == 0 {
		c.primary = normalize(DefaultPrimary)
	}
	if len(c.secondary) == 0 {
		c.secondary = normalize(DefaultSecondary)
	}
	return c
}

// Default - классификатор со словами по умолчанию
func Default() *Classifier {
	return New(Rules{})
}

// Classify ищет подстроки без учёта регистра. Первичный уровень важнее вторичного.
func (c *Classifier) Classify(description string) models.Severity {
	text := strings.ToLower(description)
	if containsAny(text, c.primary) {
		return models.SeverityPrimary
	}
	if containsAny(text, c.secondary) {
		return models.SeveritySecondary
	}
	return models.SeverityNone
}

// Matches работает как Classify, но возвращает и совпавшие слова
func (c *Classifier) Matches(description string) Match {
	text := strings.ToLower(description)
	m := Match{
		Primary:   matched(text, c.primary),
		Secondary: matched(text, c.secondary),
	}
	switch {
	case len(m.Primary) > 0:
		m.Severity = models.SeverityPrimary
	case len(m.Secondary) > 0:
		m.Severity = models.SeveritySecondary
	}
	return m
}

// Rules возвращает действующие наборы слов
func (c *Classifier) Rules() Rules {
	return Rules{
		Primary:   append([]string(nil), c.primary...),
		Secondary: append([]string(nil), c.secondary...),
	}
}

// Classify использует правила по умолчанию
func Classify(description string) models.Severity {
	return defaultClassifier.Classify(description)
}

var defaultClassifier = Default()

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

func matched(text string, words []string) []string {
	var out []string
	for _, w := range words {
		if strings.Contains(text, w) {
			out = append(out, w)
		}
	}
	return out
}

func normalize(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}
