package dividers

import "division-engine/internal/stateregistry"

var registry = map[stateregistry.Regime]Divider{
	stateregistry.Community: &CommunityDivider{},
	stateregistry.Equitable: &EquitableDivider{},
}

func Get(regime stateregistry.Regime) (Divider, bool) {
	d, ok := registry[regime]
	return d, ok
}
