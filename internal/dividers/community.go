package dividers

import (
	"fmt"

	"division-engine/internal/format"
	"division-engine/internal/model"
	"division-engine/internal/stateregistry"
)

const texasJurisdiction = "TX"

// CommunityDivider splits estates in the nine community-property states:
// the net community estate goes 50/50, separate property goes to its owner,
// with two carve-outs that move value back into the community pot — the
// quasi-community override and the Texas appreciation rule.
type CommunityDivider struct{}

func (d *CommunityDivider) Validate(in *model.CalculationInput) []model.CalculationMessage {
	return nil
}

func (d *CommunityDivider) Divide(in *model.CalculationInput, state stateregistry.StateInfo) (*model.PropertyDivision, []model.CalculationMessage) {
	var msgs []model.CalculationMessage

	var communityAssets, communityDebts float64
	separateAssets := map[model.Owner]float64{}
	separateDebts := map[model.Owner]float64{}

	division := &model.PropertyDivision{
		Spouse1Assets: []model.AssetDivision{},
		Spouse2Assets: []model.AssetDivision{},
		Spouse1Debts:  []model.DebtDivision{},
		Spouse2Debts:  []model.DebtDivision{},
	}

	for _, a := range in.Assets {
		item := d.divideAsset(&a, in.Jurisdiction, state, &communityAssets, separateAssets, &msgs)
		if item.Spouse1Share != 0 {
			division.Spouse1Assets = append(division.Spouse1Assets, item)
		}
		if item.Spouse2Share != 0 {
			division.Spouse2Assets = append(division.Spouse2Assets, item)
		}
	}

	for _, debt := range in.Debts {
		item := d.divideDebt(&debt, &communityDebts, separateDebts, &msgs)
		if item.Spouse1Share != 0 {
			division.Spouse1Debts = append(division.Spouse1Debts, item)
		}
		if item.Spouse2Share != 0 {
			division.Spouse2Debts = append(division.Spouse2Debts, item)
		}
	}

	halfCommunity := (communityAssets - communityDebts) / 2
	division.TotalSpouse1Value = format.RoundCents(halfCommunity + separateAssets[model.Spouse1] - separateDebts[model.Spouse1])
	division.TotalSpouse2Value = format.RoundCents(halfCommunity + separateAssets[model.Spouse2] - separateDebts[model.Spouse2])

	return division, msgs
}

func (d *CommunityDivider) divideAsset(a *model.Asset, jurisdiction string, state stateregistry.StateInfo, communityAssets *float64, separateAssets map[model.Owner]float64, msgs *[]model.CalculationMessage) model.AssetDivision {
	item := model.AssetDivision{
		AssetID:     a.ID,
		Description: a.Description,
		TotalValue:  a.CurrentValue,
	}

	// QCP override trumps the separate-property flag.
	if state.QCP && a.IsQuasiCommunityProperty {
		half := a.CurrentValue / 2
		item.Spouse1Share = half
		item.Spouse2Share = half
		item.RuleApplied = model.RuleQuasiCommunity
		item.CommunityPortion = a.CurrentValue
		item.Reasoning = fmt.Sprintf("Treated as community property under quasi-community property rules; split 50/50 (%s each)", format.Currency(half))
		*communityAssets += a.CurrentValue
		return item
	}

	if !a.IsSeparateProperty {
		half := a.CurrentValue / 2
		item.Spouse1Share = half
		item.Spouse2Share = half
		item.RuleApplied = model.RuleCommunitySplit
		item.CommunityPortion = a.CurrentValue
		item.Reasoning = fmt.Sprintf("Community property acquired during marriage; split 50/50 (%s each)", format.Currency(half))
		*communityAssets += a.CurrentValue
		return item
	}

	owner := resolveOwner(a.OwnedBy, model.CodeOwnerUnspecified, "asset", a.ID, msgs)

	if jurisdiction == texasJurisdiction {
		if a.AcquisitionValue == nil {
			separateAssets[owner] += a.CurrentValue
			item.RuleApplied = model.RuleSeparateProperty
			item.Reasoning = fmt.Sprintf("Separate property of %s; acquisition value unknown, so appreciation during marriage could not be computed and the asset is treated as fully separate", owner)
			d.assignSeparate(&item, owner, a.CurrentValue)
			return item
		}
		if appreciation := a.CurrentValue - *a.AcquisitionValue; appreciation > 0 {
			corpus := *a.AcquisitionValue
			separateAssets[owner] += corpus
			*communityAssets += appreciation
			item.RuleApplied = model.RuleTexasAppreciation
			item.CommunityPortion = appreciation
			if owner == model.Spouse1 {
				item.Spouse1Share = corpus + appreciation/2
				item.Spouse2Share = appreciation / 2
			} else {
				item.Spouse1Share = appreciation / 2
				item.Spouse2Share = corpus + appreciation/2
			}
			item.Reasoning = fmt.Sprintf("Separate property of %s; under the Texas rule the %s appreciation during marriage is community property split 50/50, while the %s acquisition value remains separate", owner, format.Currency(appreciation), format.Currency(corpus))
			return item
		}
	}

	separateAssets[owner] += a.CurrentValue
	item.RuleApplied = model.RuleSeparateProperty
	item.Reasoning = fmt.Sprintf("Separate property of %s; awarded entirely to owner", owner)
	d.assignSeparate(&item, owner, a.CurrentValue)
	return item
}

func (d *CommunityDivider) assignSeparate(item *model.AssetDivision, owner model.Owner, value float64) {
	if owner == model.Spouse1 {
		item.Spouse1Share = value
	} else {
		item.Spouse2Share = value
	}
}

func (d *CommunityDivider) divideDebt(debt *model.Debt, communityDebts *float64, separateDebts map[model.Owner]float64, msgs *[]model.CalculationMessage) model.DebtDivision {
	item := model.DebtDivision{
		DebtID:       debt.ID,
		Description:  debt.Description,
		TotalBalance: debt.CurrentBalance,
	}

	if debt.IsSeparateProperty {
		owner := resolveOwner(debt.Responsibility, model.CodeResponsibilityUnspecified, "debt", debt.ID, msgs)
		separateDebts[owner] += debt.CurrentBalance
		item.RuleApplied = model.RuleSeparateProperty
		item.Reasoning = fmt.Sprintf("Separate debt of %s; assigned entirely to the responsible party", owner)
		if owner == model.Spouse1 {
			item.Spouse1Share = debt.CurrentBalance
		} else {
			item.Spouse2Share = debt.CurrentBalance
		}
		return item
	}

	half := debt.CurrentBalance / 2
	item.Spouse1Share = half
	item.Spouse2Share = half
	item.RuleApplied = model.RuleCommunitySplit
	item.CommunityPortion = debt.CurrentBalance
	item.Reasoning = fmt.Sprintf("Community debt incurred during marriage; split 50/50 (%s each)", format.Currency(half))
	*communityDebts += debt.CurrentBalance
	return item
}
