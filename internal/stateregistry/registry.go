package stateregistry

// Regime is a jurisdiction's marital property regime.
type Regime string

const (
	Community Regime = "community"
	Equitable Regime = "equitable"
)

type StateInfo struct {
	Regime Regime `json:"regime"`
	QCP    bool   `json:"qcp"`
}

// Registry is a read-only jurisdiction table. It is injected into the
// engine so calculations stay a pure function of their inputs.
type Registry struct {
	states map[string]StateInfo
}

func New(states map[string]StateInfo) *Registry {
	m := make(map[string]StateInfo, len(states))
	for code, info := range states {
		m[code] = info
	}
	return &Registry{states: m}
}

func (r *Registry) Lookup(code string) (StateInfo, bool) {
	info, ok := r.states[code]
	return info, ok
}

func (r *Registry) Len() int {
	return len(r.states)
}

// Default returns the registry for all 50 states plus DC. The nine
// community states are AZ, CA, ID, LA, NV, NM, TX, WA and WI; of those,
// AZ, CA, ID and WA apply quasi-community property at divorce.
func Default() *Registry {
	states := make(map[string]StateInfo, 51)

	community := map[string]bool{
		"AZ": true, "CA": true, "ID": true, "WA": true,
		"LA": false, "NV": false, "NM": false, "TX": false, "WI": false,
	}
	for code, qcp := range community {
		states[code] = StateInfo{Regime: Community, QCP: qcp}
	}

	equitable := []string{
		"AL", "AK", "AR", "CO", "CT", "DE", "DC", "FL", "GA", "HI",
		"IL", "IN", "IA", "KS", "KY", "ME", "MD", "MA", "MI", "MN",
		"MS", "MO", "MT", "NE", "NH", "NJ", "NY", "NC", "ND", "OH",
		"OK", "OR", "PA", "RI", "SC", "SD", "TN", "UT", "VT", "VA",
		"WV", "WY",
	}
	for _, code := range equitable {
		states[code] = StateInfo{Regime: Equitable}
	}

	return New(states)
}
