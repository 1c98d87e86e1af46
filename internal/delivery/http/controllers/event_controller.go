package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"time"

	qrcode "github.com/skip2/go-qrcode"

	"lampceremony/internal/delivery/http/helpers"
	"lampceremony/internal/domain"
)

// eventIDFormat matches the 8-digit event identifier format used in paths.
var eventIDFormat = regexp.MustCompile(`^[0-9]{8}$`)

// writeDomainError maps domain errors to HTTP statuses. Anything
// unrecognized is a 500 with a generic body; the real error goes to the log.
func writeDomainError(w http.ResponseWriter, logger *slog.Logger, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, "Event not found")
	case errors.Is(err, domain.ErrPasswordInUse):
		helpers.WriteJSONError(w, http.StatusConflict, "Password already in use. Please choose a different password.")
	case errors.Is(err, domain.ErrEventIDInUse):
		helpers.WriteJSONError(w, http.StatusConflict, "Event ID already in use. Please choose a different ID.")
	case errors.Is(err, domain.ErrInvalidInput), isBoundaryError(err):
		helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Server error")
	}
}

func isBoundaryError(err error) bool {
	return errors.Is(err, domain.ErrNoMoreGuests) ||
		errors.Is(err, domain.ErrAtLastGuest) ||
		errors.Is(err, domain.ErrAtFirstGuest) ||
		errors.Is(err, domain.ErrAtLampFloor) ||
		errors.Is(err, domain.ErrNoGuestsToSkip)
}

type EventController struct {
	Logger        *slog.Logger
	Service       domain.CeremonyService
	PublicBaseURL string
}

func NewEventController(logger *slog.Logger, svc domain.CeremonyService, publicBaseURL string) *EventController {
	return &EventController{
		Logger:        logger,
		Service:       svc,
		PublicBaseURL: publicBaseURL,
	}
}

// ExistsResponse is the body of the existence probes.
// swagger:model ExistsResponse
type ExistsResponse struct {
	Exists bool `json:"exists"`
}

// CheckEvent godoc
// @Summary Check whether an event ID is taken
// @Description Existence probe for an 8-digit event identifier, used by the creation page before claiming an ID.
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID (8 digits)"
// @Success 200 {object} controllers.ExistsResponse
// @Failure 400 {object} helpers.ErrorResponse "invalid event ID format"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /check-event/{eventID} [get]
func (c *EventController) CheckEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if !eventIDFormat.MatchString(eventID) {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid event ID format")
		return
	}
	exists, err := c.Service.EventExists(r.Context(), eventID)
	if err != nil {
		writeDomainError(w, c.Logger, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, ExistsResponse{Exists: exists})
}

// CheckPassword godoc
// @Summary Check whether a host password is taken
// @Description Existence probe for a 9-character host password, used by the creation page before claiming a password.
// @Tags events
// @Produce json
// @Param password path string true "Host password (9 characters)"
// @Success 200 {object} controllers.ExistsResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /check-password/{password} [get]
func (c *EventController) CheckPassword(w http.ResponseWriter, r *http.Request) {
	exists, err := c.Service.PasswordExists(r.Context(), r.PathValue("password"))
	if err != nil {
		writeDomainError(w, c.Logger, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, ExistsResponse{Exists: exists})
}

// EventInfo godoc
// @Summary Resolve a login token to the full event state
// @Description Classifies the token by exact length: 8 characters is an event ID (viewer), 9 characters is a host password (host). Returns headers, the ordered roster, and the current counters.
// @Tags events
// @Produce json
// @Param token path string true "Login token (8 or 9 characters)"
// @Success 200 {object} domain.EventInfo
// @Failure 400 {object} helpers.ErrorResponse "token is neither 8 nor 9 characters"
// @Failure 404 {object} helpers.ErrorResponse
// @Router /api/event-info/{token} [get]
func (c *EventController) EventInfo(w http.ResponseWriter, r *http.Request) {
	info, err := c.Service.Resolve(r.Context(), r.PathValue("token"))
	if err != nil {
		writeDomainError(w, c.Logger, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, info)
}

// CreateEventRequest is the request body for POST /api/events. hostEmail is
// optional; when present the host receives a summary email with the
// credentials.
type CreateEventRequest struct {
	EventID      string `json:"eventId"`
	FirstHeader  string `json:"firstHeader"`
	SecondHeader string `json:"secondHeader"`
	Password     string `json:"password"`
	SoundURL     string `json:"soundUrl"`
	HostEmail    string `json:"hostEmail,omitempty"`
}

func (req CreateEventRequest) complete() bool {
	return req.EventID != "" && req.FirstHeader != "" && req.SecondHeader != "" &&
		req.Password != "" && req.SoundURL != ""
}

// CreateEventResponse is the success body for POST /api/events.
// swagger:model CreateEventResponse
type CreateEventResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	EventID string `json:"event_id"`
}

// CreateEvent godoc
// @Summary Create a new ceremony event
// @Description Creates the event with counters at (0, 0, false). The identifier and password are chosen by the caller; uniqueness is enforced by the store.
// @Tags events
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} controllers.CreateEventResponse
// @Failure 400 {object} helpers.ErrorResponse "missing or malformed fields"
// @Failure 409 {object} helpers.ErrorResponse "password or event ID already in use"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.Decode(w, r, &req) {
		return
	}
	if !req.complete() {
		helpers.WriteMissingFields(w, []string{"eventId", "firstHeader", "secondHeader", "password", "soundUrl"})
		return
	}
	event := domain.NewEvent(req.EventID, req.FirstHeader, req.SecondHeader, req.SoundURL, req.Password, time.Now())
	if err := c.Service.CreateEvent(r.Context(), event, req.HostEmail); err != nil {
		writeDomainError(w, c.Logger, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, CreateEventResponse{
		Success: true,
		Message: "Event created successfully",
		EventID: event.ID,
	})
}

// AddGuestRequest is the request body for POST /api/events/{eventID}/guests.
type AddGuestRequest struct {
	GuestName  string `json:"guestName"`
	GuestTitle string `json:"guestTitle"`
	ImageURL   string `json:"imageUrl"`
}

// AddGuestResponse is the success body for POST /api/events/{eventID}/guests.
// swagger:model AddGuestResponse
type AddGuestResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	GuestID int64  `json:"guest_id"`
	EventID string `json:"event_id"`
}

// AddGuest godoc
// @Summary Append a guest to the event roster
// @Description Appends the guest at the next roster position. Guests are immutable once created; the roster is fixed at ceremony time.
// @Tags guests
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID (8 digits)"
// @Param guest body AddGuestRequest true "Guest data"
// @Success 201 {object} controllers.AddGuestResponse
// @Failure 400 {object} helpers.ErrorResponse "missing fields"
// @Failure 404 {object} helpers.ErrorResponse "event not found"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{eventID}/guests [post]
func (c *EventController) AddGuest(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	var req AddGuestRequest
	if !helpers.Decode(w, r, &req) {
		return
	}
	if req.GuestName == "" || req.GuestTitle == "" || req.ImageURL == "" {
		helpers.WriteMissingFields(w, []string{"eventId", "guestName", "guestTitle", "imageUrl"})
		return
	}
	guest, err := c.Service.AddGuest(r.Context(), eventID, req.GuestTitle, req.GuestName, req.ImageURL)
	if err != nil {
		writeDomainError(w, c.Logger, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, AddGuestResponse{
		Success: true,
		Message: "Guest added successfully",
		GuestID: guest.ID,
		EventID: guest.EventID,
	})
}

const qrSize = 320

// JoinQR godoc
// @Summary QR code for joining an event
// @Description Returns a PNG QR code encoding the public join URL for the event, for display on the host's screen.
// @Tags events
// @Produce png
// @Param eventID path string true "Event ID (8 digits)"
// @Success 200 {file} byte "PNG image"
// @Failure 404 {object} helpers.ErrorResponse "event not found"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /api/events/{eventID}/qr [get]
func (c *EventController) JoinQR(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	exists, err := c.Service.EventExists(r.Context(), eventID)
	if err != nil {
		writeDomainError(w, c.Logger, r, err)
		return
	}
	if !exists {
		helpers.WriteJSONError(w, http.StatusNotFound, "Event not found")
		return
	}
	joinURL := c.PublicBaseURL + "/?event=" + eventID
	png, err := qrcode.Encode(joinURL, qrcode.Medium, qrSize)
	if err != nil {
		writeDomainError(w, c.Logger, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
