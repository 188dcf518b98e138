package model

type CalculationRequest struct {
	TenantID         string           `json:"tenant_id"`
	CalculationInput CalculationInput `json:"calculation_input" validate:"required"`
}

// CalculationInput is the full estate description for one calculation.
// It is validated upstream; the engine treats it as read-only.
type CalculationInput struct {
	Jurisdiction   string                        `json:"jurisdiction" validate:"required,len=2"`
	PropertyRegime string                        `json:"property_regime,omitempty"`
	MarriageInfo   MarriageInfo                  `json:"marriage_info" validate:"required"`
	Assets         []Asset                       `json:"assets" validate:"dive"`
	Debts          []Debt                        `json:"debts" validate:"dive"`
	SpecialFactors *EquitableDistributionFactors `json:"special_factors,omitempty" validate:"omitempty"`
}
