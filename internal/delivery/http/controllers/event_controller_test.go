package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"lampceremony/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeCeremonyService implements domain.CeremonyService for handler tests.
type fakeCeremonyService struct {
	createEventErr    error
	lastCreateEvent   *domain.Event
	lastHostEmail     string
	addGuestErr       error
	addGuestResult    *domain.Guest
	resolveErr        error
	resolveResult     *domain.EventInfo
	lastResolveToken  string
	startErr          error
	startResult       domain.CeremonyState
	lastStartValue    bool
	advanceErr        error
	advanceResult     domain.CeremonyState
	lastAdvanceAction domain.Action
	stateErr          error
	stateResult       domain.CeremonyState
	eventExists       bool
	eventExistsErr    error
	passwordExists    bool
	passwordExistsErr error
}

func (f *fakeCeremonyService) CreateEvent(ctx context.Context, event *domain.Event, hostEmail string) error {
	f.lastCreateEvent = event
	f.lastHostEmail = hostEmail
	return f.createEventErr
}

func (f *fakeCeremonyService) AddGuest(ctx context.Context, eventID, title, name, imageURL string) (*domain.Guest, error) {
	if f.addGuestErr != nil {
		return nil, f.addGuestErr
	}
	return f.addGuestResult, nil
}

func (f *fakeCeremonyService) Resolve(ctx context.Context, token string) (*domain.EventInfo, error) {
	f.lastResolveToken = token
	if f.resolveErr != nil {
		return nil, f.resolveErr
	}
	return f.resolveResult, nil
}

func (f *fakeCeremonyService) Start(ctx context.Context, eventID string, isStart bool) (domain.CeremonyState, error) {
	f.lastStartValue = isStart
	return f.startResult, f.startErr
}

func (f *fakeCeremonyService) Advance(ctx context.Context, eventID string, action domain.Action) (domain.CeremonyState, error) {
	f.lastAdvanceAction = action
	return f.advanceResult, f.advanceErr
}

func (f *fakeCeremonyService) State(ctx context.Context, eventID string) (domain.CeremonyState, error) {
	return f.stateResult, f.stateErr
}

func (f *fakeCeremonyService) EventExists(ctx context.Context, eventID string) (bool, error) {
	return f.eventExists, f.eventExistsErr
}

func (f *fakeCeremonyService) PasswordExists(ctx context.Context, password string) (bool, error) {
	return f.passwordExists, f.passwordExistsErr
}

func newTestRouter(svc domain.CeremonyService) *http.ServeMux {
	mux := http.NewServeMux()
	events := NewEventController(testLogger, svc, "http://localhost:8080")
	ceremony := NewCeremonyController(testLogger, svc)
	mux.HandleFunc("GET /check-event/{eventID}", events.CheckEvent)
	mux.HandleFunc("GET /check-password/{password}", events.CheckPassword)
	mux.HandleFunc("GET /api/event-info/{token}", events.EventInfo)
	mux.HandleFunc("POST /api/events", events.CreateEvent)
	mux.HandleFunc("POST /api/events/{eventID}/guests", events.AddGuest)
	mux.HandleFunc("GET /api/events/{eventID}/qr", events.JoinQR)
	mux.HandleFunc("POST /api/events/{eventID}/start", ceremony.Start)
	mux.HandleFunc("GET /api/events/{eventID}/state", ceremony.State)
	mux.HandleFunc("POST /api/events/{eventID}/action", ceremony.Action)
	return mux
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestEventController_CheckEvent(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		svc        *fakeCeremonyService
		wantStatus int
		wantBody   string
	}{
		{
			name:       "exists",
			path:       "/check-event/12345678",
			svc:        &fakeCeremonyService{eventExists: true},
			wantStatus: http.StatusOK,
			wantBody:   `{"exists":true}`,
		},
		{
			name:       "missing",
			path:       "/check-event/99999999",
			svc:        &fakeCeremonyService{},
			wantStatus: http.StatusOK,
			wantBody:   `{"exists":false}`,
		},
		{
			name:       "bad format",
			path:       "/check-event/notanid1",
			svc:        &fakeCeremonyService{},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid event ID format"}`,
		},
		{
			name:       "store error",
			path:       "/check-event/12345678",
			svc:        &fakeCeremonyService{eventExistsErr: context.DeadlineExceeded},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Server error"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, newTestRouter(tt.svc), http.MethodGet, tt.path, nil)
			require.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestEventController_CheckPassword(t *testing.T) {
	rec := doJSON(t, newTestRouter(&fakeCeremonyService{passwordExists: true}), http.MethodGet, "/check-password/secret123", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"exists":true}`, rec.Body.String())
}

func TestEventController_EventInfo(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeCeremonyService{resolveResult: &domain.EventInfo{
			EventID:      "12345678",
			IsHost:       true,
			TopHeader:    "Welcome",
			BottomHeader: "Ceremony",
			SoundURL:     "/s.mp3",
			GuestsInfo:   []domain.GuestInfo{{Title: "Dr.", Name: "Ada", ImageURL: "/img/ada.png"}},
			CurrentLight: 1,
			CurrentGuest: 2,
			IsStart:      true,
		}}
		rec := doJSON(t, newTestRouter(svc), http.MethodGet, "/api/event-info/secret123", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "secret123", svc.lastResolveToken)

		var info domain.EventInfo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
		assert.True(t, info.IsHost)
		assert.Equal(t, 1, info.CurrentLight)
		require.Len(t, info.GuestsInfo, 1)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeCeremonyService{resolveErr: domain.ErrNotFound}
		rec := doJSON(t, newTestRouter(svc), http.MethodGet, "/api/event-info/99999999", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("bad token length", func(t *testing.T) {
		svc := &fakeCeremonyService{resolveErr: domain.ErrInvalidInput}
		rec := doJSON(t, newTestRouter(svc), http.MethodGet, "/api/event-info/abc", nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestEventController_CreateEvent(t *testing.T) {
	validBody := map[string]any{
		"eventId":      "12345678",
		"firstHeader":  "Welcome",
		"secondHeader": "Ceremony",
		"password":     "secret123",
		"soundUrl":     "/s.mp3",
	}

	t.Run("created", func(t *testing.T) {
		svc := &fakeCeremonyService{}
		rec := doJSON(t, newTestRouter(svc), http.MethodPost, "/api/events", validBody)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"success":true,"message":"Event created successfully","event_id":"12345678"}`, rec.Body.String())
		require.NotNil(t, svc.lastCreateEvent)
		assert.Equal(t, "secret123", svc.lastCreateEvent.HostPassword)
	})

	t.Run("host email forwarded", func(t *testing.T) {
		svc := &fakeCeremonyService{}
		body := map[string]any{}
		for k, v := range validBody {
			body[k] = v
		}
		body["hostEmail"] = "host@example.com"
		rec := doJSON(t, newTestRouter(svc), http.MethodPost, "/api/events", body)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "host@example.com", svc.lastHostEmail)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := &fakeCeremonyService{}
		rec := doJSON(t, newTestRouter(svc), http.MethodPost, "/api/events", map[string]any{"eventId": "12345678"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Missing required fields","required":["eventId","firstHeader","secondHeader","password","soundUrl"]}`, rec.Body.String())
	})

	t.Run("password conflict", func(t *testing.T) {
		svc := &fakeCeremonyService{createEventErr: domain.ErrPasswordInUse}
		rec := doJSON(t, newTestRouter(svc), http.MethodPost, "/api/events", validBody)
		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "Password already in use")
	})

	t.Run("event id conflict", func(t *testing.T) {
		svc := &fakeCeremonyService{createEventErr: domain.ErrEventIDInUse}
		rec := doJSON(t, newTestRouter(svc), http.MethodPost, "/api/events", validBody)
		require.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("invalid format", func(t *testing.T) {
		svc := &fakeCeremonyService{createEventErr: domain.ErrInvalidInput}
		rec := doJSON(t, newTestRouter(svc), http.MethodPost, "/api/events", validBody)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestEventController_AddGuest(t *testing.T) {
	validBody := map[string]any{
		"guestName":  "Ada",
		"guestTitle": "Dr.",
		"imageUrl":   "/img/ada.png",
	}

	t.Run("created", func(t *testing.T) {
		svc := &fakeCeremonyService{addGuestResult: &domain.Guest{ID: 5, EventID: "12345678", OrderNum: 2}}
		rec := doJSON(t, newTestRouter(svc), http.MethodPost, "/api/events/12345678/guests", validBody)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"success":true,"message":"Guest added successfully","guest_id":5,"event_id":"12345678"}`, rec.Body.String())
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := &fakeCeremonyService{}
		rec := doJSON(t, newTestRouter(svc), http.MethodPost, "/api/events/12345678/guests", map[string]any{"guestName": "Ada"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Missing required fields")
	})

	t.Run("event not found", func(t *testing.T) {
		svc := &fakeCeremonyService{addGuestErr: domain.ErrNotFound}
		rec := doJSON(t, newTestRouter(svc), http.MethodPost, "/api/events/00000000/guests", validBody)
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Event not found"}`, rec.Body.String())
	})
}

func TestEventController_JoinQR(t *testing.T) {
	t.Run("png for existing event", func(t *testing.T) {
		svc := &fakeCeremonyService{eventExists: true}
		rec := doJSON(t, newTestRouter(svc), http.MethodGet, "/api/events/12345678/qr", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.NotEmpty(t, rec.Body.Bytes())
	})

	t.Run("unknown event", func(t *testing.T) {
		svc := &fakeCeremonyService{eventExists: false}
		rec := doJSON(t, newTestRouter(svc), http.MethodGet, "/api/events/12345678/qr", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
