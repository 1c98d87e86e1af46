package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"lampceremony/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(events *controllers.EventController, ceremony *controllers.CeremonyController) *http.ServeMux {
	mux := http.NewServeMux()

	// Creation-page probes
	mux.HandleFunc("GET /check-event/{eventID}", events.CheckEvent)
	mux.HandleFunc("GET /check-password/{password}", events.CheckPassword)

	// Events
	mux.HandleFunc("GET /api/event-info/{token}", events.EventInfo)
	mux.HandleFunc("POST /api/events", events.CreateEvent)
	mux.HandleFunc("POST /api/events/{eventID}/guests", events.AddGuest)
	mux.HandleFunc("GET /api/events/{eventID}/qr", events.JoinQR)

	// Ceremony
	mux.HandleFunc("POST /api/events/{eventID}/start", ceremony.Start)
	mux.HandleFunc("GET /api/events/{eventID}/state", ceremony.State)
	mux.HandleFunc("POST /api/events/{eventID}/action", ceremony.Action)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
