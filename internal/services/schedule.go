package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"weekscheduler/internal/domain"
)

type scheduleService struct {
	repo           domain.EventRepository
	rooms          []domain.Room
	roomSet        map[domain.Room]struct{}
	contextTimeout time.Duration
}

// NewScheduleService wires the weekly-calendar business logic over an event
// repository. rooms is the active room enumeration; candidates referencing a
// room outside it are rejected.
func NewScheduleService(repo domain.EventRepository, rooms []domain.Room, timeout time.Duration) domain.ScheduleService {
	roomSet := make(map[domain.Room]struct{}, len(rooms))
	for _, r := range rooms {
		roomSet[r] = struct{}{}
	}
	return &scheduleService{
		repo:           repo,
		rooms:          rooms,
		roomSet:        roomSet,
		contextTimeout: timeout,
	}
}

// validate collects every problem with a would-be event in one pass so the
// editor can show all of them at once.
func (s *scheduleService) validate(c domain.Candidate) error {
	var reasons []string
	if strings.TrimSpace(c.Title) == "" {
		reasons = append(reasons, "title is required")
	}
	if len(c.Rooms) == 0 {
		reasons = append(reasons, "at least one room is required")
	}
	for _, r := range c.Rooms {
		if _, ok := s.roomSet[r]; !ok {
			reasons = append(reasons, fmt.Sprintf("unknown room %q", r))
		}
	}
	if c.Date.IsZero() {
		reasons = append(reasons, "date is required")
	}
	if !c.Start.Before(c.End) {
		reasons = append(reasons, "end time must be after start time")
	}
	if len(reasons) > 0 {
		return &domain.InvalidCandidateError{Reasons: reasons}
	}
	return nil
}

func (s *scheduleService) CreateEvent(ctx context.Context, c domain.Candidate) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.validate(c); err != nil {
		return nil, err
	}
	event := &domain.Event{
		Title:       strings.TrimSpace(c.Title),
		Rooms:       append([]domain.Room(nil), c.Rooms...),
		Date:        c.Date,
		Start:       c.Start,
		End:         c.End,
		Description: c.Description,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *scheduleService) GetEventByID(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.repo.GetByID(ctx, id)
}

func (s *scheduleService) UpdateEvent(ctx context.Context, id string, p domain.Patch) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := existing.Clone()
	if p.Title != nil {
		merged.Title = *p.Title
	}
	if p.Rooms != nil {
		merged.Rooms = append([]domain.Room(nil), p.Rooms...)
	}
	if p.Date != nil {
		merged.Date = *p.Date
	}
	if p.Start != nil {
		merged.Start = *p.Start
	}
	if p.End != nil {
		merged.End = *p.End
	}
	if p.Description != nil {
		merged.Description = *p.Description
	}

	// The merged record must hold up as a whole; a bad patch is rejected
	// without touching the collection.
	if err := s.validate(domain.Candidate{
		Title:       merged.Title,
		Rooms:       merged.Rooms,
		Date:        merged.Date,
		Start:       merged.Start,
		End:         merged.End,
		Description: merged.Description,
	}); err != nil {
		return nil, err
	}
	merged.Title = strings.TrimSpace(merged.Title)

	if err := s.repo.Replace(ctx, merged); err != nil {
		return nil, err
	}
	return merged, nil
}

func (s *scheduleService) DeleteEvent(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.repo.Delete(ctx, id)
}

// EventsOnDate is a pure read: it re-derives the day view on every call
// instead of caching, since the collection is small and mutation infrequent.
func (s *scheduleService) EventsOnDate(ctx context.Context, date domain.Date, filter []domain.Room) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	onDate, err := s.repo.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	out := []*domain.Event{}
	for _, e := range onDate {
		if e.MatchesFilter(filter) {
			out = append(out, e)
		}
	}
	return out, nil
}

// WeekOf returns the Monday on or before d. Sunday wraps back to the Monday
// six days earlier, keeping the whole week window behind the reference date.
func (s *scheduleService) WeekOf(d domain.Date) domain.Date {
	wd := int(d.Weekday()) // Sunday = 0
	offset := 1 - wd
	if wd == 0 {
		offset = -6
	}
	return d.AddDays(offset)
}

// WeekWindow returns the seven display dates Monday..Sunday for the week
// containing d.
func (s *scheduleService) WeekWindow(d domain.Date) [7]domain.Date {
	monday := s.WeekOf(d)
	var days [7]domain.Date
	for i := range days {
		days[i] = monday.AddDays(i)
	}
	return days
}

func (s *scheduleService) Rooms() []domain.Room {
	return append([]domain.Room(nil), s.rooms...)
}
