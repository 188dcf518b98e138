package model

// Rule tags the legal rule that produced a line item, so downstream
// consumers never have to parse the reasoning narrative.
type Rule string

const (
	RuleCommunitySplit    Rule = "COMMUNITY_SPLIT"
	RuleQuasiCommunity    Rule = "QUASI_COMMUNITY"
	RuleSeparateProperty  Rule = "SEPARATE_PROPERTY"
	RuleTexasAppreciation Rule = "TEXAS_APPRECIATION"
	RuleEquitableSplit    Rule = "EQUITABLE_SPLIT"
)

// AssetDivision is one allocated asset. Spouse1Share + Spouse2Share always
// equals TotalValue; CommunityPortion is the slice treated as community
// (the whole value for community items, the appreciation for Texas-rule
// items, zero for fully separate items).
type AssetDivision struct {
	AssetID          string  `json:"asset_id"`
	Description      string  `json:"description"`
	TotalValue       float64 `json:"total_value"`
	Spouse1Share     float64 `json:"spouse1_share"`
	Spouse2Share     float64 `json:"spouse2_share"`
	RuleApplied      Rule    `json:"rule_applied"`
	CommunityPortion float64 `json:"community_portion"`
	Reasoning        string  `json:"reasoning"`
}

type DebtDivision struct {
	DebtID           string  `json:"debt_id"`
	Description      string  `json:"description"`
	TotalBalance     float64 `json:"total_balance"`
	Spouse1Share     float64 `json:"spouse1_share"`
	Spouse2Share     float64 `json:"spouse2_share"`
	RuleApplied      Rule    `json:"rule_applied"`
	CommunityPortion float64 `json:"community_portion"`
	Reasoning        string  `json:"reasoning"`
}

// FactorAdjustment records one applied equity-factor rule for audit.
type FactorAdjustment struct {
	Label string  `json:"label"`
	Delta float64 `json:"delta"`
}

// PropertyDivision is the allocation result. An item appears in a spouse's
// list exactly when that spouse's share of it is nonzero.
type PropertyDivision struct {
	Spouse1Assets       []AssetDivision    `json:"spouse1_assets"`
	Spouse2Assets       []AssetDivision    `json:"spouse2_assets"`
	Spouse1Debts        []DebtDivision     `json:"spouse1_debts"`
	Spouse2Debts        []DebtDivision     `json:"spouse2_debts"`
	TotalSpouse1Value   float64            `json:"total_spouse1_value"`
	TotalSpouse2Value   float64            `json:"total_spouse2_value"`
	EqualizationPayment *float64           `json:"equalization_payment,omitempty"`
	PaymentFrom         Owner              `json:"payment_from,omitempty"`
	EquityFactor        *float64           `json:"equity_factor,omitempty"`
	FactorAdjustments   []FactorAdjustment `json:"factor_adjustments,omitempty"`
}
