package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"weekscheduler/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(scheduleController *controllers.ScheduleController) *http.ServeMux {
	mux := http.NewServeMux()

	// Events
	mux.HandleFunc("POST /events", scheduleController.CreateEvent)
	mux.HandleFunc("GET /events", scheduleController.ListEventsOnDate)
	mux.HandleFunc("GET /events/{eventID}", scheduleController.GetEventByID)
	mux.HandleFunc("PATCH /events/{eventID}", scheduleController.UpdateEvent)
	mux.HandleFunc("DELETE /events/{eventID}", scheduleController.DeleteEvent)

	// Week navigation and room filter
	mux.HandleFunc("GET /week", scheduleController.GetWeek)
	mux.HandleFunc("GET /rooms", scheduleController.ListRooms)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
