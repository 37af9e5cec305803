package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"weekscheduler/internal/delivery/http/helpers"
	"weekscheduler/internal/domain"
)

// ScheduleController serves the weekly-calendar JSON API.
type ScheduleController struct {
	Logger  *slog.Logger
	Service domain.ScheduleService
}

func NewScheduleController(logger *slog.Logger, svc domain.ScheduleService) *ScheduleController {
	return &ScheduleController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateEventRequest is the request body for POST /events. The id is
// server-generated. rooms entries may be comma-joined lists; they are
// normalized into a set here, at the editor boundary.
type CreateEventRequest struct {
	Title       string   `json:"title"`
	Rooms       []string `json:"rooms"`
	Date        string   `json:"date"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	Description string   `json:"description"`
}

// Validate implements Validator. Field-level checks only; cross-field rules
// (start before end, known rooms) belong to the schedule service.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if c.Title == "" {
		errs = append(errs, "title is required")
	}
	if len(c.Rooms) == 0 {
		errs = append(errs, "rooms is required")
	}
	if c.Date != "" {
		if _, err := domain.ParseDate(c.Date); err != nil {
			errs = append(errs, "date must be formatted YYYY-MM-DD")
		}
	}
	if c.StartTime != "" {
		if _, err := domain.ParseTimeOfDay(c.StartTime); err != nil {
			errs = append(errs, "start_time must be formatted HH:MM")
		}
	}
	if c.EndTime != "" {
		if _, err := domain.ParseTimeOfDay(c.EndTime); err != nil {
			errs = append(errs, "end_time must be formatted HH:MM")
		}
	}
	return errs
}

// candidate converts the request into a domain candidate. Unset date and
// times default to now, mirroring the editor's pickers.
func (c CreateEventRequest) candidate(now time.Time) domain.Candidate {
	cand := domain.Candidate{
		Title:       c.Title,
		Rooms:       domain.NormalizeRooms(c.Rooms),
		Date:        domain.DateOf(now),
		Start:       domain.TimeOfDay{Hour: now.Hour(), Minute: now.Minute()},
		End:         domain.TimeOfDay{Hour: now.Hour(), Minute: now.Minute()},
		Description: c.Description,
	}
	if c.Date != "" {
		cand.Date, _ = domain.ParseDate(c.Date)
	}
	if c.StartTime != "" {
		cand.Start, _ = domain.ParseTimeOfDay(c.StartTime)
	}
	if c.EndTime != "" {
		cand.End, _ = domain.ParseTimeOfDay(c.EndTime)
	}
	return cand
}

// CreateEventSuccessResponse is the success response envelope for POST /events (201).
type CreateEventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Create a booking on the weekly calendar. The id is server-generated. Unset date and times default to now.
// @Tags events
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Candidate event"
// @Success 201 {object} controllers.CreateEventSuccessResponse "data contains the stored event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *ScheduleController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.CreateEvent(r.Context(), req.candidate(time.Now()))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCandidate) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// GetEventSuccessResponse is the success response envelope for GET /events/{eventID} (200).
type GetEventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// GetEventByID godoc
// @Summary Get an event by ID
// @Description Returns the stored event. A stale id yields 404; the caller should re-query its day view.
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.GetEventSuccessResponse "data contains the event"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [get]
func (c *ScheduleController) GetEventByID(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	event, err := c.Service.GetEventByID(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// UpdateEventRequest is the request body for PATCH /events/{eventID}. All
// fields optional; omitted fields are unchanged. A non-null rooms replaces
// the whole set.
type UpdateEventRequest struct {
	Title       *string  `json:"title"`
	Rooms       []string `json:"rooms"`
	Date        *string  `json:"date"`
	StartTime   *string  `json:"start_time"`
	EndTime     *string  `json:"end_time"`
	Description *string  `json:"description"`
}

// Validate implements Validator. Checks formats of whichever fields are set.
func (u UpdateEventRequest) Validate() []string {
	var errs []string
	if u.Date != nil {
		if _, err := domain.ParseDate(*u.Date); err != nil {
			errs = append(errs, "date must be formatted YYYY-MM-DD")
		}
	}
	if u.StartTime != nil {
		if _, err := domain.ParseTimeOfDay(*u.StartTime); err != nil {
			errs = append(errs, "start_time must be formatted HH:MM")
		}
	}
	if u.EndTime != nil {
		if _, err := domain.ParseTimeOfDay(*u.EndTime); err != nil {
			errs = append(errs, "end_time must be formatted HH:MM")
		}
	}
	return errs
}

func (u UpdateEventRequest) patch() domain.Patch {
	p := domain.Patch{
		Title:       u.Title,
		Description: u.Description,
	}
	if u.Rooms != nil {
		p.Rooms = domain.NormalizeRooms(u.Rooms)
	}
	if u.Date != nil {
		d, _ := domain.ParseDate(*u.Date)
		p.Date = &d
	}
	if u.StartTime != nil {
		t, _ := domain.ParseTimeOfDay(*u.StartTime)
		p.Start = &t
	}
	if u.EndTime != nil {
		t, _ := domain.ParseTimeOfDay(*u.EndTime)
		p.End = &t
	}
	return p
}

// UpdateEventSuccessResponse is the success response envelope for PATCH /events/{eventID} (200).
type UpdateEventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Merges the patch over the stored record; the id is preserved. An edit may move the event to a different day.
// @Tags events
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID"
// @Param patch body UpdateEventRequest true "Fields to change"
// @Success 200 {object} controllers.UpdateEventSuccessResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [patch]
func (c *ScheduleController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.UpdateEvent(r.Context(), eventID, req.patch())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
		case errors.Is(err, domain.ErrInvalidCandidate):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Removes the event. Deleting an already-deleted id yields 404, which the caller recovers from by refreshing its view.
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 204 "no content"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [delete]
func (c *ScheduleController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	if err := c.Service.DeleteEvent(r.Context(), eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DayViewResponse is the day view returned by GET /events.
type DayViewResponse struct {
	Date   domain.Date     `json:"date"`
	Events []*domain.Event `json:"events"`
}

// ListEventsSuccessResponse is the success response envelope for GET /events (200).
type ListEventsSuccessResponse struct {
	Data  DayViewResponse   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListEventsOnDate godoc
// @Summary List events on a date
// @Description Returns the events on the given date, in insertion order, filtered by rooms when given. An empty rooms filter matches every event.
// @Tags events
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param rooms query string false "Comma-separated room filter"
// @Success 200 {object} controllers.ListEventsSuccessResponse "data contains the day view"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *ScheduleController) ListEventsOnDate(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing date")
		return
	}
	date, err := domain.ParseDate(raw)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "date must be formatted YYYY-MM-DD")
		return
	}
	var filter []domain.Room
	if rooms := r.URL.Query().Get("rooms"); rooms != "" {
		filter = domain.NormalizeRooms([]string{rooms})
	}
	events, err := c.Service.EventsOnDate(r.Context(), date, filter)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, DayViewResponse{Date: date, Events: events})
}

// WeekResponse is the Monday-aligned display window returned by GET /week.
type WeekResponse struct {
	Monday domain.Date    `json:"monday"`
	Days   [7]domain.Date `json:"days"`
}

// WeekSuccessResponse is the success response envelope for GET /week (200).
type WeekSuccessResponse struct {
	Data  WeekResponse      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// GetWeek godoc
// @Summary Get the week window for a date
// @Description Returns the Monday of the week containing the given date plus the seven display dates Monday..Sunday. Defaults to today when date is omitted.
// @Tags week
// @Produce json
// @Param date query string false "Reference date (YYYY-MM-DD)"
// @Success 200 {object} controllers.WeekSuccessResponse "data contains monday and the seven days"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /week [get]
func (c *ScheduleController) GetWeek(w http.ResponseWriter, r *http.Request) {
	date := domain.DateOf(time.Now())
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := domain.ParseDate(raw)
		if err != nil {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "date must be formatted YYYY-MM-DD")
			return
		}
		date = parsed
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, WeekResponse{
		Monday: c.Service.WeekOf(date),
		Days:   c.Service.WeekWindow(date),
	})
}

// RoomsResponse is the room enumeration returned by GET /rooms.
type RoomsResponse struct {
	Rooms []domain.Room `json:"rooms"`
}

// RoomsSuccessResponse is the success response envelope for GET /rooms (200).
type RoomsSuccessResponse struct {
	Data  RoomsResponse     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListRooms godoc
// @Summary List bookable rooms
// @Description Returns the active room enumeration for the filter selector, in display order.
// @Tags rooms
// @Produce json
// @Success 200 {object} controllers.RoomsSuccessResponse "data contains the rooms"
// @Router /rooms [get]
func (c *ScheduleController) ListRooms(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, RoomsResponse{Rooms: c.Service.Rooms()})
}
