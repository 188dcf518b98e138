package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"division-engine/internal/dividers"
	"division-engine/internal/model"
	"division-engine/internal/stateregistry"
)

// Engine dispatches a calculation to the divider for the jurisdiction's
// property regime. It holds only the injected jurisdiction table, so every
// calculation is a pure function of its input.
type Engine struct {
	states *stateregistry.Registry
}

func New(states *stateregistry.Registry) *Engine {
	return &Engine{states: states}
}

func (e *Engine) Process(req *model.CalculationRequest) *model.CalculationResponse {
	start := time.Now()
	in := &req.CalculationInput

	var allMessages []model.CalculationMessage
	var division *model.PropertyDivision
	var confidence float64
	var regime string
	outcome := model.OutcomeSuccess

	appendMessage := func(m model.CalculationMessage) {
		m.ID = len(allMessages)
		allMessages = append(allMessages, m)
	}

	state, known := e.states.Lookup(in.Jurisdiction)
	if !known {
		appendMessage(model.CalculationMessage{
			Level:   model.LevelCritical,
			Code:    model.CodeUnknownJurisdiction,
			Message: fmt.Sprintf("Unknown jurisdiction: %s", in.Jurisdiction),
		})
		outcome = model.OutcomeFailure
	} else {
		regime = string(state.Regime)
		divider, ok := dividers.Get(state.Regime)
		if !ok {
			appendMessage(model.CalculationMessage{
				Level:   model.LevelCritical,
				Code:    model.CodeUnsupportedRegime,
				Message: fmt.Sprintf("No divider registered for regime: %s", state.Regime),
			})
			outcome = model.OutcomeFailure
		} else {
			hasCritical := false
			for _, vm := range divider.Validate(in) {
				appendMessage(vm)
				if vm.Level == model.LevelCritical {
					hasCritical = true
				}
			}
			if hasCritical {
				outcome = model.OutcomeFailure
			} else {
				var divideMsgs []model.CalculationMessage
				division, divideMsgs = divider.Divide(in, state)
				for _, dm := range divideMsgs {
					appendMessage(dm)
				}
				confidence = dividers.ConfidenceLevel(in)
			}
		}
	}

	if allMessages == nil {
		allMessages = []model.CalculationMessage{}
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	return &model.CalculationResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          uuid.New().String(),
			TenantID:               req.TenantID,
			Jurisdiction:           in.Jurisdiction,
			PropertyRegime:         regime,
			CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CalculationCompletedAt: now.Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     outcome,
		},
		CalculationResult: model.CalculationResult{
			Messages:        allMessages,
			Division:        division,
			ConfidenceLevel: confidence,
		},
	}
}
