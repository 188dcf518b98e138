package dividers

import (
	"fmt"
	"math"

	"division-engine/internal/format"
	"division-engine/internal/model"
	"division-engine/internal/stateregistry"
)

// equalizationThreshold is the net-value divergence, in dollars, above
// which an equalization payment is ordered.
const equalizationThreshold = 1000.0

// EquitableDivider splits estates in equitable-distribution states. Marital
// property is divided by the equity factor; separate property goes wholly
// to its owner. When the resulting nets diverge materially, the higher-net
// spouse owes an equalization payment.
type EquitableDivider struct{}

func (d *EquitableDivider) Validate(in *model.CalculationInput) []model.CalculationMessage {
	if in.SpecialFactors == nil {
		return []model.CalculationMessage{{
			Level:   model.LevelCritical,
			Code:    model.CodeMissingFactors,
			Message: "Equitable distribution requires special_factors; none were provided",
		}}
	}
	return nil
}

func (d *EquitableDivider) Divide(in *model.CalculationInput, state stateregistry.StateInfo) (*model.PropertyDivision, []model.CalculationMessage) {
	var msgs []model.CalculationMessage

	factor, adjustments := EquityFactor(in.SpecialFactors)
	spouse1Pct := format.Percent(factor, 1)
	spouse2Pct := format.Percent(1-factor, 1)

	var maritalAssets, maritalDebts float64
	separateAssets := map[model.Owner]float64{}
	separateDebts := map[model.Owner]float64{}

	division := &model.PropertyDivision{
		Spouse1Assets:     []model.AssetDivision{},
		Spouse2Assets:     []model.AssetDivision{},
		Spouse1Debts:      []model.DebtDivision{},
		Spouse2Debts:      []model.DebtDivision{},
		EquityFactor:      &factor,
		FactorAdjustments: adjustments,
	}

	for _, a := range in.Assets {
		item := model.AssetDivision{
			AssetID:     a.ID,
			Description: a.Description,
			TotalValue:  a.CurrentValue,
		}
		if a.IsSeparateProperty {
			owner := resolveOwner(a.OwnedBy, model.CodeOwnerUnspecified, "asset", a.ID, &msgs)
			separateAssets[owner] += a.CurrentValue
			item.RuleApplied = model.RuleSeparateProperty
			item.Reasoning = fmt.Sprintf("Separate property of %s; excluded from equitable distribution and awarded entirely to owner", owner)
			if owner == model.Spouse1 {
				item.Spouse1Share = a.CurrentValue
			} else {
				item.Spouse2Share = a.CurrentValue
			}
		} else {
			maritalAssets += a.CurrentValue
			item.Spouse1Share = factor * a.CurrentValue
			item.Spouse2Share = a.CurrentValue - item.Spouse1Share
			item.RuleApplied = model.RuleEquitableSplit
			item.CommunityPortion = a.CurrentValue
			item.Reasoning = fmt.Sprintf("Marital property divided %.1f%%/%.1f%% per equity factor %.3f", spouse1Pct, spouse2Pct, factor)
		}
		if item.Spouse1Share != 0 {
			division.Spouse1Assets = append(division.Spouse1Assets, item)
		}
		if item.Spouse2Share != 0 {
			division.Spouse2Assets = append(division.Spouse2Assets, item)
		}
	}

	for _, debt := range in.Debts {
		item := model.DebtDivision{
			DebtID:       debt.ID,
			Description:  debt.Description,
			TotalBalance: debt.CurrentBalance,
		}
		if debt.IsSeparateProperty {
			owner := resolveOwner(debt.Responsibility, model.CodeResponsibilityUnspecified, "debt", debt.ID, &msgs)
			separateDebts[owner] += debt.CurrentBalance
			item.RuleApplied = model.RuleSeparateProperty
			item.Reasoning = fmt.Sprintf("Separate debt of %s; assigned entirely to the responsible party", owner)
			if owner == model.Spouse1 {
				item.Spouse1Share = debt.CurrentBalance
			} else {
				item.Spouse2Share = debt.CurrentBalance
			}
		} else {
			maritalDebts += debt.CurrentBalance
			item.Spouse1Share = factor * debt.CurrentBalance
			item.Spouse2Share = debt.CurrentBalance - item.Spouse1Share
			item.RuleApplied = model.RuleEquitableSplit
			item.CommunityPortion = debt.CurrentBalance
			item.Reasoning = fmt.Sprintf("Marital debt divided %.1f%%/%.1f%% per equity factor %.3f", spouse1Pct, spouse2Pct, factor)
		}
		if item.Spouse1Share != 0 {
			division.Spouse1Debts = append(division.Spouse1Debts, item)
		}
		if item.Spouse2Share != 0 {
			division.Spouse2Debts = append(division.Spouse2Debts, item)
		}
	}

	spouse1Net := factor*maritalAssets + separateAssets[model.Spouse1] - factor*maritalDebts - separateDebts[model.Spouse1]
	spouse2Net := (1-factor)*(maritalAssets-maritalDebts) + separateAssets[model.Spouse2] - separateDebts[model.Spouse2]

	division.TotalSpouse1Value = format.RoundCents(spouse1Net)
	division.TotalSpouse2Value = format.RoundCents(spouse2Net)

	if diff := spouse1Net - spouse2Net; math.Abs(diff) > equalizationThreshold {
		payment := format.RoundCents(math.Abs(diff) / 2)
		division.EqualizationPayment = &payment
		if diff > 0 {
			division.PaymentFrom = model.Spouse1
		} else {
			division.PaymentFrom = model.Spouse2
		}
	}

	return division, msgs
}
