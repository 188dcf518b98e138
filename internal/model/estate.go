package model

// Owner identifies which party holds an asset or owes a debt.
type Owner string

const (
	Spouse1 Owner = "spouse1"
	Spouse2 Owner = "spouse2"
	Joint   Owner = "joint"
)

type AssetType string

const (
	AssetRealEstate        AssetType = "real_estate"
	AssetVehicle           AssetType = "vehicle"
	AssetBankAccount       AssetType = "bank_account"
	AssetRetirementAccount AssetType = "retirement_account"
	AssetInvestment        AssetType = "investment"
	AssetBusinessInterest  AssetType = "business_interest"
	AssetCryptocurrency    AssetType = "cryptocurrency"
	AssetPersonalProperty  AssetType = "personal_property"
	AssetOther             AssetType = "other"
)

// Asset is a single item of marital or separate property. Assets are
// immutable during a calculation; the engine never writes to them.
type Asset struct {
	ID                       string    `json:"id" validate:"required"`
	Description              string    `json:"description"`
	Type                     AssetType `json:"type" validate:"required"`
	CurrentValue             float64   `json:"current_value" validate:"gte=0"`
	AcquisitionValue         *float64  `json:"acquisition_value,omitempty" validate:"omitempty,gte=0"`
	AcquisitionDate          string    `json:"acquisition_date,omitempty"`
	IsSeparateProperty       bool      `json:"is_separate_property"`
	OwnedBy                  Owner     `json:"owned_by,omitempty" validate:"omitempty,oneof=spouse1 spouse2 joint"`
	IsQuasiCommunityProperty bool      `json:"is_quasi_community_property,omitempty"`
}

type Debt struct {
	ID                 string  `json:"id" validate:"required"`
	Description        string  `json:"description"`
	Type               string  `json:"type"`
	CurrentBalance     float64 `json:"current_balance" validate:"gte=0"`
	IsSeparateProperty bool    `json:"is_separate_property"`
	Responsibility     Owner   `json:"responsibility,omitempty" validate:"omitempty,oneof=spouse1 spouse2 joint"`
}

type MarriageInfo struct {
	MarriageDate   string `json:"marriage_date" validate:"required"`
	SeparationDate string `json:"separation_date,omitempty"`
	Jurisdiction   string `json:"jurisdiction,omitempty"`
	PropertyRegime string `json:"property_regime,omitempty"`
	HasPrenup      bool   `json:"has_prenup"`
}

type HealthStatus string

const (
	HealthExcellent HealthStatus = "excellent"
	HealthGood      HealthStatus = "good"
	HealthFair      HealthStatus = "fair"
	HealthPoor      HealthStatus = "poor"
)

type CustodyArrangement string

const (
	CustodyNone   CustodyArrangement = "none"
	CustodyJoint  CustodyArrangement = "joint"
	CustodySole1  CustodyArrangement = "sole_1"
	CustodySole2  CustodyArrangement = "sole_2"
)

// EquitableDistributionFactors carries the judicial balancing inputs for
// equitable-distribution jurisdictions. Extended holds the optional
// state-specific qualitative factors; a nil Extended means none were given.
type EquitableDistributionFactors struct {
	MarriageDurationYears  float64            `json:"marriage_duration_years" validate:"gte=0"`
	Spouse1Age             int                `json:"spouse1_age" validate:"gte=0"`
	Spouse2Age             int                `json:"spouse2_age" validate:"gte=0"`
	Spouse1Health          HealthStatus       `json:"spouse1_health,omitempty" validate:"omitempty,oneof=excellent good fair poor"`
	Spouse2Health          HealthStatus       `json:"spouse2_health,omitempty" validate:"omitempty,oneof=excellent good fair poor"`
	Spouse1Income          float64            `json:"spouse1_income" validate:"gte=0"`
	Spouse2Income          float64            `json:"spouse2_income" validate:"gte=0"`
	Spouse1EarningCapacity float64            `json:"spouse1_earning_capacity" validate:"gte=0"`
	Spouse2EarningCapacity float64            `json:"spouse2_earning_capacity" validate:"gte=0"`
	CustodyArrangement     CustodyArrangement `json:"custody_arrangement,omitempty" validate:"omitempty,oneof=none joint sole_1 sole_2"`
	DomesticViolence       bool               `json:"domestic_violence"`
	WastingOfAssets        bool               `json:"wasting_of_assets"`
	Extended               *ExtendedFactors   `json:"extended,omitempty"`
}

// ExtendedFactors are jurisdiction-specific qualitative considerations.
// Narrative fields count as present when non-empty.
type ExtendedFactors struct {
	Spouse1PriorMarriage                bool     `json:"spouse1_prior_marriage"`
	Spouse2PriorMarriage                bool     `json:"spouse2_prior_marriage"`
	Spouse1StationInLife                string   `json:"spouse1_station_in_life,omitempty"`
	Spouse2StationInLife                string   `json:"spouse2_station_in_life,omitempty"`
	Spouse1VocationalSkills             string   `json:"spouse1_vocational_skills,omitempty"`
	Spouse2VocationalSkills             string   `json:"spouse2_vocational_skills,omitempty"`
	Spouse1SeparateEstate               *float64 `json:"spouse1_separate_estate,omitempty" validate:"omitempty,gte=0"`
	Spouse2SeparateEstate               *float64 `json:"spouse2_separate_estate,omitempty" validate:"omitempty,gte=0"`
	Spouse1Needs                        string   `json:"spouse1_needs,omitempty"`
	Spouse2Needs                        string   `json:"spouse2_needs,omitempty"`
	Spouse1ContributedToEducation       bool     `json:"spouse1_contributed_to_education"`
	Spouse2ContributedToEducation       bool     `json:"spouse2_contributed_to_education"`
	Spouse1FutureAcquisitionOpportunity string   `json:"spouse1_future_acquisition_opportunity,omitempty"`
	Spouse2FutureAcquisitionOpportunity string   `json:"spouse2_future_acquisition_opportunity,omitempty"`
	StandardOfLiving                    string   `json:"standard_of_living,omitempty"`
	Spouse1EconomicCircumstances        string   `json:"spouse1_economic_circumstances,omitempty"`
	Spouse2EconomicCircumstances        string   `json:"spouse2_economic_circumstances,omitempty"`
	Spouse1OtherIncomeSources           string   `json:"spouse1_other_income_sources,omitempty"`
	Spouse2OtherIncomeSources           string   `json:"spouse2_other_income_sources,omitempty"`
	ExpenseOfAssetSale                  float64  `json:"expense_of_asset_sale" validate:"gte=0"`
}
