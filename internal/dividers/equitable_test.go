package dividers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"division-engine/internal/model"
	"division-engine/internal/stateregistry"
)

var equitableState = stateregistry.StateInfo{Regime: stateregistry.Equitable}

// neutralFactors produce an equity factor of exactly 0.5: mid-length
// marriage, symmetric ages, incomes, capacities and health, joint custody.
func neutralFactors() *model.EquitableDistributionFactors {
	return &model.EquitableDistributionFactors{
		MarriageDurationYears:  10,
		Spouse1Age:             45,
		Spouse2Age:             43,
		Spouse1Health:          model.HealthGood,
		Spouse2Health:          model.HealthGood,
		Spouse1Income:          50000,
		Spouse2Income:          50000,
		Spouse1EarningCapacity: 60000,
		Spouse2EarningCapacity: 60000,
		CustodyArrangement:     model.CustodyJoint,
	}
}

func TestValidateRequiresFactors(t *testing.T) {
	d := &EquitableDivider{}
	msgs := d.Validate(&model.CalculationInput{Jurisdiction: "NY"})

	require.Len(t, msgs, 1)
	assert.Equal(t, model.LevelCritical, msgs[0].Level)
	assert.Equal(t, model.CodeMissingFactors, msgs[0].Code)
}

func TestValidatePassesWithFactors(t *testing.T) {
	d := &EquitableDivider{}
	msgs := d.Validate(&model.CalculationInput{
		Jurisdiction:   "NY",
		SpecialFactors: neutralFactors(),
	})
	assert.Empty(t, msgs)
}

func TestEqualizationPayment(t *testing.T) {
	in := &model.CalculationInput{
		Jurisdiction:   "NY",
		SpecialFactors: neutralFactors(),
		Assets: []model.Asset{
			{ID: "home", Type: model.AssetRealEstate, CurrentValue: 200000},
			{ID: "inheritance", Type: model.AssetBankAccount, CurrentValue: 60000, IsSeparateProperty: true, OwnedBy: model.Spouse1},
		},
	}

	d := &EquitableDivider{}
	division, msgs := d.Divide(in, equitableState)

	require.Empty(t, msgs)
	require.NotNil(t, division.EquityFactor)
	assert.InDelta(t, 0.5, *division.EquityFactor, 1e-9)

	assert.InDelta(t, 160000, division.TotalSpouse1Value, 0.01)
	assert.InDelta(t, 100000, division.TotalSpouse2Value, 0.01)

	require.NotNil(t, division.EqualizationPayment)
	assert.InDelta(t, 30000, *division.EqualizationPayment, 0.01)
	assert.Equal(t, model.Spouse1, division.PaymentFrom)
}

func TestNoEqualizationBelowThreshold(t *testing.T) {
	in := &model.CalculationInput{
		Jurisdiction:   "NY",
		SpecialFactors: neutralFactors(),
		Assets: []model.Asset{
			{ID: "home", Type: model.AssetRealEstate, CurrentValue: 200000},
			{ID: "watch", Type: model.AssetPersonalProperty, CurrentValue: 900, IsSeparateProperty: true, OwnedBy: model.Spouse1},
		},
	}

	d := &EquitableDivider{}
	division, msgs := d.Divide(in, equitableState)

	require.Empty(t, msgs)
	assert.Nil(t, division.EqualizationPayment)
	assert.Empty(t, division.PaymentFrom)
}

func TestEqualizationFlowsFromSpouse2(t *testing.T) {
	in := &model.CalculationInput{
		Jurisdiction:   "NY",
		SpecialFactors: neutralFactors(),
		Assets: []model.Asset{
			{ID: "trust", Type: model.AssetInvestment, CurrentValue: 80000, IsSeparateProperty: true, OwnedBy: model.Spouse2},
		},
	}

	d := &EquitableDivider{}
	division, msgs := d.Divide(in, equitableState)

	require.Empty(t, msgs)
	require.NotNil(t, division.EqualizationPayment)
	assert.InDelta(t, 40000, *division.EqualizationPayment, 0.01)
	assert.Equal(t, model.Spouse2, division.PaymentFrom)
}

func TestMaritalSplitFollowsFactor(t *testing.T) {
	factors := neutralFactors()
	factors.CustodyArrangement = model.CustodySole1 // 0.5 + 0.08

	in := &model.CalculationInput{
		Jurisdiction:   "NY",
		SpecialFactors: factors,
		Assets: []model.Asset{
			{ID: "home", Type: model.AssetRealEstate, CurrentValue: 100000},
		},
		Debts: []model.Debt{
			{ID: "loan", CurrentBalance: 40000},
		},
	}

	d := &EquitableDivider{}
	division, msgs := d.Divide(in, equitableState)

	require.Empty(t, msgs)
	require.NotNil(t, division.EquityFactor)
	assert.InDelta(t, 0.58, *division.EquityFactor, 1e-9)

	require.Len(t, division.Spouse1Assets, 1)
	item := division.Spouse1Assets[0]
	assert.Equal(t, model.RuleEquitableSplit, item.RuleApplied)
	assert.InDelta(t, 58000, item.Spouse1Share, 0.01)
	assert.InDelta(t, 42000, item.Spouse2Share, 0.01)
	assert.InDelta(t, item.TotalValue, item.Spouse1Share+item.Spouse2Share, 0.01)

	require.Len(t, division.Spouse1Debts, 1)
	assert.InDelta(t, 23200, division.Spouse1Debts[0].Spouse1Share, 0.01)

	// Nets: 0.58*(100000-40000) vs 0.42*(100000-40000).
	assert.InDelta(t, 34800, division.TotalSpouse1Value, 0.01)
	assert.InDelta(t, 25200, division.TotalSpouse2Value, 0.01)
}

func TestEquitableSeparateOwnerDefaultsWithWarning(t *testing.T) {
	in := &model.CalculationInput{
		Jurisdiction:   "NY",
		SpecialFactors: neutralFactors(),
		Assets: []model.Asset{
			{ID: "a1", Type: model.AssetInvestment, CurrentValue: 15000, IsSeparateProperty: true},
		},
	}

	d := &EquitableDivider{}
	division, msgs := d.Divide(in, equitableState)

	require.Len(t, msgs, 1)
	assert.Equal(t, model.LevelWarning, msgs[0].Level)
	assert.Equal(t, model.CodeOwnerUnspecified, msgs[0].Code)
	require.Len(t, division.Spouse1Assets, 1)
	assert.InDelta(t, 15000, division.Spouse1Assets[0].Spouse1Share, 0.01)
}

func TestEquitableConservation(t *testing.T) {
	factors := neutralFactors()
	factors.DomesticViolence = true // 0.6

	in := &model.CalculationInput{
		Jurisdiction:   "NY",
		SpecialFactors: factors,
		Assets: []model.Asset{
			{ID: "a1", Type: model.AssetRealEstate, CurrentValue: 310000},
			{ID: "a2", Type: model.AssetRetirementAccount, CurrentValue: 125000},
			{ID: "a3", Type: model.AssetBankAccount, CurrentValue: 40000, IsSeparateProperty: true, OwnedBy: model.Spouse2},
		},
		Debts: []model.Debt{
			{ID: "d1", CurrentBalance: 55000},
			{ID: "d2", CurrentBalance: 8000, IsSeparateProperty: true, Responsibility: model.Spouse1},
		},
	}

	d := &EquitableDivider{}
	division, msgs := d.Divide(in, equitableState)
	require.Empty(t, msgs)

	netEstate := (310000.0 + 125000 - 55000) + (40000 - 8000)
	assert.InDelta(t, netEstate, division.TotalSpouse1Value+division.TotalSpouse2Value, 0.01)
}

func TestEquitableEmptyEstate(t *testing.T) {
	in := &model.CalculationInput{
		Jurisdiction:   "NY",
		SpecialFactors: neutralFactors(),
	}

	d := &EquitableDivider{}
	division, msgs := d.Divide(in, equitableState)

	require.Empty(t, msgs)
	assert.Zero(t, division.TotalSpouse1Value)
	assert.Zero(t, division.TotalSpouse2Value)
	assert.Nil(t, division.EqualizationPayment)
}
