package controllers

import (
	"log/slog"
	"net/http"

	"lampceremony/internal/delivery/http/helpers"
	"lampceremony/internal/domain"
)

type CeremonyController struct {
	Logger  *slog.Logger
	Service domain.CeremonyService
}

func NewCeremonyController(logger *slog.Logger, svc domain.CeremonyService) *CeremonyController {
	return &CeremonyController{
		Logger:  logger,
		Service: svc,
	}
}

// StartRequest is the request body for POST /api/events/{eventID}/start.
// IsStart is a pointer so a missing field is distinguishable from false.
type StartRequest struct {
	IsStart *bool `json:"isStart"`
}

// StartResponse is the success body for POST /api/events/{eventID}/start.
// swagger:model StartResponse
type StartResponse struct {
	EventID string `json:"eventId"`
	IsStart bool   `json:"isStart"`
	Updated bool   `json:"updated"`
}

// Start godoc
// @Summary Set the ceremony start flag
// @Description Writes is_start for the event. Re-writing the same value is a harmless no-op, so the endpoint is idempotent.
// @Tags ceremony
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID (8 digits)"
// @Param body body StartRequest true "Start flag"
// @Success 200 {object} controllers.StartResponse
// @Failure 400 {object} helpers.ErrorResponse "missing isStart field"
// @Failure 404 {object} helpers.ErrorResponse "event not found"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{eventID}/start [post]
func (c *CeremonyController) Start(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	var req StartRequest
	if !helpers.Decode(w, r, &req) {
		return
	}
	if req.IsStart == nil {
		helpers.WriteMissingFields(w, []string{"isStart"})
		return
	}
	st, err := c.Service.Start(r.Context(), eventID, *req.IsStart)
	if err != nil {
		writeDomainError(w, c.Logger, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, StartResponse{
		EventID: eventID,
		IsStart: st.IsStart,
		Updated: true,
	})
}

// State godoc
// @Summary Poll the ceremony state snapshot
// @Description Lightweight snapshot of (currentLight, currentGuest, isStart) for the viewer poll loop. Clients compare against their previously observed values and update only on change.
// @Tags ceremony
// @Produce json
// @Param eventID path string true "Event ID (8 digits)"
// @Success 200 {object} domain.CeremonyState
// @Failure 404 {object} helpers.ErrorResponse "event not found"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{eventID}/state [get]
func (c *CeremonyController) State(w http.ResponseWriter, r *http.Request) {
	st, err := c.Service.State(r.Context(), r.PathValue("eventID"))
	if err != nil {
		writeDomainError(w, c.Logger, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, st)
}

// ActionRequest is the request body for POST /api/events/{eventID}/action.
type ActionRequest struct {
	Action string `json:"action"`
}

// ActionResponse is the success body for POST /api/events/{eventID}/action.
// The acting host applies these counters immediately instead of waiting for
// its next poll tick.
// swagger:model ActionResponse
type ActionResponse struct {
	EventID      string `json:"eventId"`
	CurrentLight int    `json:"current_light"`
	CurrentGuest int    `json:"current_guest"`
}

// Action godoc
// @Summary Advance the ceremony
// @Description Applies one of light, skip, or back as a single atomic read-modify-write on the event row and returns the authoritative post-transition counters.
// @Tags ceremony
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID (8 digits)"
// @Param body body ActionRequest true "Action: light, skip, or back"
// @Success 200 {object} controllers.ActionResponse
// @Failure 400 {object} helpers.ErrorResponse "unknown action or boundary reached"
// @Failure 404 {object} helpers.ErrorResponse "event not found"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{eventID}/action [post]
func (c *CeremonyController) Action(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	var req ActionRequest
	if !helpers.Decode(w, r, &req) {
		return
	}
	action, err := domain.ParseAction(req.Action)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid action: must be light, skip, or back")
		return
	}
	st, err := c.Service.Advance(r.Context(), eventID, action)
	if err != nil {
		writeDomainError(w, c.Logger, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, ActionResponse{
		EventID:      eventID,
		CurrentLight: st.CurrentLight,
		CurrentGuest: st.CurrentGuest,
	})
}
