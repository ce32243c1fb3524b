package models

// RiskTier is the coarse risk classification of a portfolio.
type RiskTier string

const (
	RiskConservative       RiskTier = "Conservative"
	RiskModerate           RiskTier = "Moderate"
	RiskModerateAggressive RiskTier = "Moderate-Aggressive"
	RiskAggressive         RiskTier = "Aggressive"
)

// RiskProfile is a tier plus its fixed description. Marker names the colour
// styled sinks use for the tier.
type RiskProfile struct {
	Tier        RiskTier `json:"tier"`
	Description string   `json:"description"`
	Marker      string   `json:"marker"`
}
