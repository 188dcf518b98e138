package handler

import (
	"log/slog"

	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"division-engine/internal/engine"
	"division-engine/internal/model"
)

// Handler exposes the engine over a single POST endpoint.
type Handler struct {
	engine   *engine.Engine
	validate *validator.Validate
	log      *slog.Logger
}

func New(eng *engine.Engine, log *slog.Logger) *Handler {
	return &Handler{
		engine:   eng,
		validate: validator.New(),
		log:      log,
	}
}

func (h *Handler) HandleCalculation(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		h.writeError(ctx, fasthttp.StatusMethodNotAllowed, "Only POST is supported")
		return
	}

	var req model.CalculationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		h.writeError(ctx, fasthttp.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	resp := h.engine.Process(&req)

	status := fasthttp.StatusOK
	if resp.CalculationMetadata.CalculationOutcome == model.OutcomeFailure {
		status = fasthttp.StatusUnprocessableEntity
	}

	h.log.Info("calculation processed",
		"calculation_id", resp.CalculationMetadata.CalculationID,
		"jurisdiction", req.CalculationInput.Jurisdiction,
		"outcome", resp.CalculationMetadata.CalculationOutcome,
		"duration_ms", resp.CalculationMetadata.CalculationDurationMs,
	)

	body, err := json.Marshal(resp)
	if err != nil {
		h.log.Error("failed to encode response", "error", err)
		h.writeError(ctx, fasthttp.StatusInternalServerError, "Failed to encode response")
		return
	}

	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

func (h *Handler) writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	body, _ := json.Marshal(model.ErrorResponse{
		Status:  status,
		Message: message,
	})
	ctx.SetBody(body)
}
