package models

// Severity grades an advisory finding.
type Severity string

const (
	SeverityOK         Severity = "ok"
	SeverityWarning    Severity = "warning"
	SeverityDeficiency Severity = "deficiency"
)

// Rule identifies the advisory rule that produced a finding.
type Rule string

const (
	RuleEquityAllocation Rule = "equity_allocation"
	RuleEmergencyFund    Rule = "emergency_fund"
	RuleLifeInsurance    Rule = "life_insurance"
	RuleHealthInsurance  Rule = "health_insurance"
)

// Rules lists every rule in display order.
var Rules = []Rule{RuleEquityAllocation, RuleEmergencyFund, RuleLifeInsurance, RuleHealthInsurance}

// Operand is a named value substituted into a finding template.
type Operand struct {
	Name    string  `json:"name"`
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

// Finding is the outcome of one advisory rule.
type Finding struct {
	Rule     Rule      `json:"rule"`
	Severity Severity  `json:"severity"`
	Message  string    `json:"message"`
	Template string    `json:"template"`
	Operands []Operand `json:"operands,omitempty"`
}

// Operand returns the named operand and whether it exists.
func (f Finding) Operand(name string) (Operand, bool) {
	for _, op := range f.Operands {
		if op.Name == name {
			return op, true
		}
	}
	return Operand{}, false
}
