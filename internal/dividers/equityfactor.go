package dividers

import (
	"math"

	"division-engine/internal/format"
	"division-engine/internal/model"
)

const (
	minEquityFactor = 0.3
	maxEquityFactor = 0.7
)

// factorRule is one step of the equity-factor evaluation. adjust returns
// the delta to apply; 0 means the rule did not fire. score is the running
// value, needed only by the sale-expense nudge.
type factorRule struct {
	label  string
	adjust func(f *model.EquitableDistributionFactors, score float64) float64
}

var coreRules = []factorRule{
	{"marriage_duration", func(f *model.EquitableDistributionFactors, _ float64) float64 {
		switch {
		case f.MarriageDurationYears < 5:
			return -0.05
		case f.MarriageDurationYears > 20:
			return 0.05
		}
		return 0
	}},
	{"age_gap", func(f *model.EquitableDistributionFactors, _ float64) float64 {
		gap := f.Spouse1Age - f.Spouse2Age
		switch {
		case gap > 10:
			return 0.03
		case gap < -10:
			return -0.03
		}
		return 0
	}},
	{"income_ratio", func(f *model.EquitableDistributionFactors, _ float64) float64 {
		total := f.Spouse1Income + f.Spouse2Income
		if total <= 0 {
			return 0
		}
		switch ratio := format.Ratio(f.Spouse1Income, total); {
		case ratio < 0.3:
			return 0.10
		case ratio > 0.7:
			return -0.10
		}
		return 0
	}},
	{"earning_capacity", func(f *model.EquitableDistributionFactors, _ float64) float64 {
		total := f.Spouse1EarningCapacity + f.Spouse2EarningCapacity
		if total <= 0 {
			return 0
		}
		switch ratio := format.Ratio(f.Spouse1EarningCapacity, total); {
		case ratio < 0.4:
			return 0.05
		case ratio > 0.6:
			return -0.05
		}
		return 0
	}},
	{"health", func(f *model.EquitableDistributionFactors, _ float64) float64 {
		switch {
		case f.Spouse1Health == model.HealthPoor && f.Spouse2Health != model.HealthPoor:
			return 0.05
		case f.Spouse2Health == model.HealthPoor && f.Spouse1Health != model.HealthPoor:
			return -0.05
		}
		return 0
	}},
	{"custody", func(f *model.EquitableDistributionFactors, _ float64) float64 {
		switch f.CustodyArrangement {
		case model.CustodySole1:
			return 0.08
		case model.CustodySole2:
			return -0.08
		}
		return 0
	}},
	{"domestic_violence", func(f *model.EquitableDistributionFactors, _ float64) float64 {
		if f.DomesticViolence {
			return 0.10
		}
		return 0
	}},
	{"wasting_of_assets", func(f *model.EquitableDistributionFactors, _ float64) float64 {
		if f.WastingOfAssets {
			return 0.05
		}
		return 0
	}},
}

var extendedRules = []factorRule{
	{"prior_marriage", func(f *model.EquitableDistributionFactors, _ float64) float64 {
		x := f.Extended
		switch {
		case x.Spouse1PriorMarriage && !x.Spouse2PriorMarriage:
			return -0.01
		case x.Spouse2PriorMarriage && !x.Spouse1PriorMarriage:
			return 0.01
		}
		return 0
	}},
	{"education_contribution", func(f *model.EquitableDistributionFactors, _ float64) float64 {
		x := f.Extended
		switch {
		case x.Spouse1ContributedToEducation && !x.Spouse2ContributedToEducation:
			return 0.02
		case x.Spouse2ContributedToEducation && !x.Spouse1ContributedToEducation:
			return -0.02
		}
		return 0
	}},
	{"future_acquisition", func(f *model.EquitableDistributionFactors, _ float64) float64 {
		// An acquisition opportunity reduces the holder's own share.
		x := f.Extended
		switch {
		case x.Spouse1FutureAcquisitionOpportunity != "" && x.Spouse2FutureAcquisitionOpportunity == "":
			return -0.01
		case x.Spouse2FutureAcquisitionOpportunity != "" && x.Spouse1FutureAcquisitionOpportunity == "":
			return 0.01
		}
		return 0
	}},
	{"needs", func(f *model.EquitableDistributionFactors, _ float64) float64 {
		x := f.Extended
		switch {
		case x.Spouse1Needs != "" && x.Spouse2Needs == "":
			return 0.02
		case x.Spouse2Needs != "" && x.Spouse1Needs == "":
			return -0.02
		}
		return 0
	}},
	{"economic_circumstances", func(f *model.EquitableDistributionFactors, _ float64) float64 {
		x := f.Extended
		switch {
		case x.Spouse1EconomicCircumstances != "" && x.Spouse2EconomicCircumstances == "":
			return 0.02
		case x.Spouse2EconomicCircumstances != "" && x.Spouse1EconomicCircumstances == "":
			return -0.02
		}
		return 0
	}},
	{"separate_estate", func(f *model.EquitableDistributionFactors, _ float64) float64 {
		x := f.Extended
		e1, e2 := derefValue(x.Spouse1SeparateEstate), derefValue(x.Spouse2SeparateEstate)
		switch {
		case e1 > 0 && e2 > 0:
			if e1 > 2*e2 {
				return -0.02
			}
			if e2 > 2*e1 {
				return 0.02
			}
		case e1 > 0:
			return -0.01
		case e2 > 0:
			return 0.01
		}
		return 0
	}},
	{"expense_of_sale", func(f *model.EquitableDistributionFactors, score float64) float64 {
		// A costly liquidation nudges an already-leaning score back
		// toward an equal split.
		if f.Extended.ExpenseOfAssetSale <= 0 {
			return 0
		}
		switch {
		case score > 0.55:
			return -0.01
		case score < 0.45:
			return 0.01
		}
		return 0
	}},
	{"station_in_life", func(f *model.EquitableDistributionFactors, _ float64) float64 {
		x := f.Extended
		switch {
		case x.Spouse1StationInLife != "" && x.Spouse2StationInLife == "":
			return 0.01
		case x.Spouse2StationInLife != "" && x.Spouse1StationInLife == "":
			return -0.01
		}
		return 0
	}},
	{"other_income_sources", func(f *model.EquitableDistributionFactors, _ float64) float64 {
		x := f.Extended
		switch {
		case x.Spouse1OtherIncomeSources != "" && x.Spouse2OtherIncomeSources == "":
			return -0.01
		case x.Spouse2OtherIncomeSources != "" && x.Spouse1OtherIncomeSources == "":
			return 0.01
		}
		return 0
	}},
}

// EquityFactor evaluates the ordered rule list over the factors and folds
// the deltas into spouse1's marital share, clamped to [0.3, 0.7] and
// rounded to 3 decimals. It also returns the adjustments that fired.
func EquityFactor(f *model.EquitableDistributionFactors) (float64, []model.FactorAdjustment) {
	score := 0.5
	var applied []model.FactorAdjustment

	rules := coreRules
	if f.Extended != nil {
		rules = make([]factorRule, 0, len(coreRules)+len(extendedRules))
		rules = append(rules, coreRules...)
		rules = append(rules, extendedRules...)
	}

	for _, rule := range rules {
		delta := rule.adjust(f, score)
		if delta == 0 {
			continue
		}
		score += delta
		applied = append(applied, model.FactorAdjustment{Label: rule.label, Delta: delta})
	}

	if score < minEquityFactor {
		score = minEquityFactor
	}
	if score > maxEquityFactor {
		score = maxEquityFactor
	}
	return math.Round(score*1000) / 1000, applied
}

func derefValue(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
