package advisory

import (
	"strings"

	"wealthcheck/internal/models"
)

// message builds a finding from a template with {name} placeholders and the
// operands that fill them. Sinks get both the rendered text and the operands.
type message struct {
	template string
	operands []models.Operand
}

func newMessage(template string) *message {
	return &message{template: template}
}

func (m *message) with(name string, value float64, display string) *message {
	m.operands = append(m.operands, models.Operand{Name: name, Value: value, Display: display})
	return m
}

func (m *message) render() string {
	pairs := make([]string, 0, 2*len(m.operands))
	for _, op := range m.operands {
		pairs = append(pairs, "{"+op.Name+"}", op.Display)
	}
	return strings.NewReplacer(pairs...).Replace(m.template)
}

func (m *message) finding(rule models.Rule, severity models.Severity) models.Finding {
	return models.Finding{
		Rule:     rule,
		Severity: severity,
		Message:  m.render(),
		Template: m.template,
		Operands: m.operands,
	}
}
