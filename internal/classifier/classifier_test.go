package classifier

import (
	"testing"

	"github.com/shenikar/bodycam_dashboard/internal/models"
	"github.com/stretchr/testify/assert"
)

const footageSummary = "Summary of events: Act of physical violence - a gun was pulled on the police officer at time stamp: 12.34 in the body camera footage."

func TestClassify_Default(t *testing.T) {
	tests := []struct {
		name string
		desc string
		want models.Severity
	}{
		{name: "первичное слово", desc: footageSummary, want: models.SeverityPrimary},
		{name: "регистр не важен", desc: "Officer faced AGGRESSION", want: models.SeverityPrimary},
		{name: "вторичное слово", desc: "the man was shouting at the officer", want: models.SeveritySecondary},
		{name: "первичное важнее", desc: "an angry crowd, violence broke out", want: models.SeverityPrimary},
		{name: "подстрока внутри слова", desc: "Angrybirds", want: models.SeveritySecondary},
		{name: "нет совпадений", desc: "routine traffic stop", want: models.SeverityNone},
		{name: "пустое описание", desc: "", want: models.SeverityNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.desc))
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	c := Default()
	for i := 0; i < 5; i++ {
		assert.Equal(t, models.SeverityPrimary, c.Classify(footageSummary))
	}
}

func TestNew_CustomRules(t *testing.T) {
	c := New(Rules{Primary: []string{" Weapon ", ""}, Secondary: []string{"Yelling"}})

	assert.Equal(t, models.SeverityPrimary, c.Classify("a weapon was drawn"))
	assert.Equal(t, models.SeveritySecondary, c.Classify("YELLING nearby"))
	assert.Equal(t, models.SeverityNone, c.Classify("violence"))
	assert.Equal(t, []string{"weapon"}, c.Rules().Primary)
}

func TestNew_EmptyRulesFallBack(t *testing.T) {
	c := New(Rules{Primary: []string{"  "}})
	assert.Equal(t, DefaultPrimary, c.Rules().Primary)
	assert.Equal(t, DefaultSecondary, c.Rules().Secondary)
}

func TestMatches(t *testing.T) {
	m := Default().Matches("Angry shouting then violence")

	assert.Equal(t, models.SeverityPrimary, m.Severity)
	assert.Equal(t, []string{"violence"}, m.Primary)
	assert.Equal(t, []string{"angry", "shouting"}, m.Secondary)
	assert.Equal(t, []string{"violence", "angry", "shouting"}, m.Keywords())

	assert.Equal(t, models.SeverityNone, Default().Matches("calm").Severity)
}
