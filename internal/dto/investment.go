package dto

// InvestmentReadinessResponse is the verdict of the investment readiness
// check. Each gate reports its own pass/fail so clients can explain which
// prerequisite is missing.
type InvestmentReadinessResponse struct {
	Ready           bool              `json:"ready"`
	Gates           []GateResult      `json:"gates"`
	SafeAmount      string            `json:"safe_amount"`
	Recommendations []AssetAllocation `json:"recommendations,omitempty"`
}

// GateResult is a single prerequisite check outcome
type GateResult struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Reason string `json:"reason,omitempty"`
}

// AssetAllocation is one slice of the suggested portfolio split
type AssetAllocation struct {
	AssetClass string  `json:"asset_class"`
	Percent    float64 `json:"percent"`
	Amount     string  `json:"amount"`
}
