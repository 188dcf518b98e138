package dividers

import (
	"fmt"

	"division-engine/internal/model"
	"division-engine/internal/stateregistry"
)

// Divider defines the contract for the per-regime division implementations.
// Validate reports blocking problems; Divide allocates the estate and may
// emit non-blocking diagnostics.
type Divider interface {
	Validate(in *model.CalculationInput) []model.CalculationMessage
	Divide(in *model.CalculationInput, state stateregistry.StateInfo) (*model.PropertyDivision, []model.CalculationMessage)
}

// resolveOwner normalizes the declared holder of a separate item. Unset or
// joint ownership on separate property is ambiguous; it defaults to spouse1
// with a warning rather than aborting the calculation.
func resolveOwner(declared model.Owner, code, kind, id string, msgs *[]model.CalculationMessage) model.Owner {
	switch declared {
	case model.Spouse1, model.Spouse2:
		return declared
	}
	*msgs = append(*msgs, model.CalculationMessage{
		Level:   model.LevelWarning,
		Code:    code,
		Message: fmt.Sprintf("Separate %s %q has no unambiguous owner; defaulting to spouse1", kind, id),
	})
	return model.Spouse1
}
