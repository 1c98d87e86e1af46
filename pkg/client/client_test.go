package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"lampceremony/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_State(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/events/12345678/state", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.CeremonyState{CurrentLight: 2, CurrentGuest: 3, IsStart: true})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	st, err := c.State(context.Background(), "12345678")
	require.NoError(t, err)
	assert.Equal(t, domain.CeremonyState{CurrentLight: 2, CurrentGuest: 3, IsStart: true}, st)
}

func TestClient_ErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Event not found"})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.State(context.Background(), "00000000")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Event not found", apiErr.Message)
}

func TestClient_CreateEventAndAction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/events":
			var req CreateEventRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "12345678", req.EventID)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(CreateEventResult{Success: true, Message: "Event created successfully", EventID: req.EventID})
		case "/api/events/12345678/action":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "light", body["action"])
			json.NewEncoder(w).Encode(ActionResult{EventID: "12345678", CurrentLight: 1, CurrentGuest: 1})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	created, err := c.CreateEvent(context.Background(), CreateEventRequest{
		EventID:      "12345678",
		FirstHeader:  "Welcome",
		SecondHeader: "Ceremony",
		Password:     "secret123",
		SoundURL:     "/s.mp3",
	})
	require.NoError(t, err)
	assert.True(t, created.Success)

	res, err := c.Action(context.Background(), "12345678", domain.ActionLight)
	require.NoError(t, err)
	assert.Equal(t, 1, res.CurrentLight)
	assert.Equal(t, 1, res.CurrentGuest)
}

func TestClient_EventInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/event-info/secret123", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.EventInfo{EventID: "12345678", IsHost: true})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	info, err := c.EventInfo(context.Background(), "secret123")
	require.NoError(t, err)
	assert.True(t, info.IsHost)
	assert.Equal(t, "12345678", info.EventID)
}
