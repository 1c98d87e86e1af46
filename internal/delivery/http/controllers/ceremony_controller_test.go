package controllers

import (
	"net/http"
	"testing"

	"lampceremony/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCeremonyController_Start(t *testing.T) {
	t.Run("sets the flag", func(t *testing.T) {
		svc := &fakeCeremonyService{startResult: domain.CeremonyState{IsStart: true}}
		rec := doJSON(t, newTestRouter(svc), http.MethodPost, "/api/events/12345678/start", map[string]any{"isStart": true})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"eventId":"12345678","isStart":true,"updated":true}`, rec.Body.String())
		assert.True(t, svc.lastStartValue)
	})

	t.Run("missing isStart", func(t *testing.T) {
		svc := &fakeCeremonyService{}
		rec := doJSON(t, newTestRouter(svc), http.MethodPost, "/api/events/12345678/start", map[string]any{})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Missing required fields","required":["isStart"]}`, rec.Body.String())
	})

	t.Run("event not found", func(t *testing.T) {
		svc := &fakeCeremonyService{startErr: domain.ErrNotFound}
		rec := doJSON(t, newTestRouter(svc), http.MethodPost, "/api/events/00000000/start", map[string]any{"isStart": true})
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCeremonyController_State(t *testing.T) {
	t.Run("snapshot", func(t *testing.T) {
		svc := &fakeCeremonyService{stateResult: domain.CeremonyState{CurrentLight: 2, CurrentGuest: 3, IsStart: true}}
		rec := doJSON(t, newTestRouter(svc), http.MethodGet, "/api/events/12345678/state", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"currentLight":2,"currentGuest":3,"isStart":true}`, rec.Body.String())
	})

	t.Run("unknown event is 404 every time", func(t *testing.T) {
		svc := &fakeCeremonyService{stateErr: domain.ErrNotFound}
		mux := newTestRouter(svc)
		for i := 0; i < 3; i++ {
			rec := doJSON(t, mux, http.MethodGet, "/api/events/00000000/state", nil)
			require.Equal(t, http.StatusNotFound, rec.Code)
		}
	})
}

func TestCeremonyController_Action(t *testing.T) {
	t.Run("light returns authoritative counters", func(t *testing.T) {
		svc := &fakeCeremonyService{advanceResult: domain.CeremonyState{CurrentLight: 1, CurrentGuest: 1, IsStart: true}}
		rec := doJSON(t, newTestRouter(svc), http.MethodPost, "/api/events/12345678/action", map[string]any{"action": "light"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"eventId":"12345678","current_light":1,"current_guest":1}`, rec.Body.String())
		assert.Equal(t, domain.ActionLight, svc.lastAdvanceAction)
	})

	t.Run("unknown action", func(t *testing.T) {
		svc := &fakeCeremonyService{}
		rec := doJSON(t, newTestRouter(svc), http.MethodPost, "/api/events/12345678/action", map[string]any{"action": "reset"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid action")
	})

	t.Run("boundary errors are 400 with the specific reason", func(t *testing.T) {
		boundaries := []error{
			domain.ErrNoMoreGuests,
			domain.ErrAtLastGuest,
			domain.ErrAtFirstGuest,
			domain.ErrAtLampFloor,
			domain.ErrNoGuestsToSkip,
		}
		for _, boundary := range boundaries {
			svc := &fakeCeremonyService{advanceErr: boundary}
			rec := doJSON(t, newTestRouter(svc), http.MethodPost, "/api/events/12345678/action", map[string]any{"action": "light"})
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), boundary.Error())
		}
	})

	t.Run("event not found", func(t *testing.T) {
		svc := &fakeCeremonyService{advanceErr: domain.ErrNotFound}
		rec := doJSON(t, newTestRouter(svc), http.MethodPost, "/api/events/00000000/action", map[string]any{"action": "light"})
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
