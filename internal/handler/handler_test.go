package handler

import (
	"io"
	"log/slog"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"division-engine/internal/engine"
	"division-engine/internal/model"
	"division-engine/internal/stateregistry"
)

func newTestHandler() *Handler {
	eng := engine.New(stateregistry.Default())
	return New(eng, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func post(h *Handler, body string) *fasthttp.RequestCtx {
	var ctx fasthttp.RequestCtx
	ctx.Request.Header.SetMethod(fasthttp.MethodPost)
	ctx.Request.SetRequestURI("/v1/calculations")
	ctx.Request.SetBodyString(body)
	h.HandleCalculation(&ctx)
	return &ctx
}

func TestHandleCalculationSuccess(t *testing.T) {
	h := newTestHandler()
	ctx := post(h, `{
		"tenant_id": "t-1",
		"calculation_input": {
			"jurisdiction": "CA",
			"marriage_info": {"marriage_date": "2010-06-12"},
			"assets": [{"id": "home", "type": "real_estate", "current_value": 500000}],
			"debts": [{"id": "mortgage", "current_balance": 200000}]
		}
	}`)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp model.CalculationResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, model.OutcomeSuccess, resp.CalculationMetadata.CalculationOutcome)
	require.NotNil(t, resp.CalculationResult.Division)
	assert.InDelta(t, 150000, resp.CalculationResult.Division.TotalSpouse1Value, 0.01)
	assert.InDelta(t, 150000, resp.CalculationResult.Division.TotalSpouse2Value, 0.01)
	assert.Equal(t, 90.0, resp.CalculationResult.ConfidenceLevel)
}

func TestHandleCalculationMissingFactors(t *testing.T) {
	h := newTestHandler()
	ctx := post(h, `{
		"calculation_input": {
			"jurisdiction": "NY",
			"marriage_info": {"marriage_date": "2005-03-01"}
		}
	}`)

	require.Equal(t, fasthttp.StatusUnprocessableEntity, ctx.Response.StatusCode())

	var resp model.CalculationResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, model.OutcomeFailure, resp.CalculationMetadata.CalculationOutcome)
	require.Len(t, resp.CalculationResult.Messages, 1)
	assert.Equal(t, model.CodeMissingFactors, resp.CalculationResult.Messages[0].Code)
}

func TestHandleCalculationUnknownJurisdiction(t *testing.T) {
	h := newTestHandler()
	ctx := post(h, `{
		"calculation_input": {
			"jurisdiction": "ZZ",
			"marriage_info": {"marriage_date": "2005-03-01"}
		}
	}`)

	require.Equal(t, fasthttp.StatusUnprocessableEntity, ctx.Response.StatusCode())
}

func TestHandleCalculationInvalidBody(t *testing.T) {
	h := newTestHandler()
	ctx := post(h, `{not json`)

	require.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())

	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, fasthttp.StatusBadRequest, resp.Status)
}

func TestHandleCalculationValidationFailure(t *testing.T) {
	h := newTestHandler()
	// Jurisdiction must be a two-letter code.
	ctx := post(h, `{
		"calculation_input": {
			"jurisdiction": "CALIFORNIA",
			"marriage_info": {"marriage_date": "2010-06-12"}
		}
	}`)

	require.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}

func TestHandleCalculationRejectsGet(t *testing.T) {
	h := newTestHandler()
	var ctx fasthttp.RequestCtx
	ctx.Request.Header.SetMethod(fasthttp.MethodGet)
	ctx.Request.SetRequestURI("/v1/calculations")
	h.HandleCalculation(&ctx)

	require.Equal(t, fasthttp.StatusMethodNotAllowed, ctx.Response.StatusCode())
}
