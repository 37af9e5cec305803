package services

import (
	"context"
	"testing"
	"time"

	"weekscheduler/internal/domain"
	"weekscheduler/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDialogFixture(t *testing.T) (*DialogSession, domain.ScheduleService, *domain.Event) {
	t.Helper()
	svc := NewScheduleService(memory.NewEventRepository(), domain.DefaultRooms(), time.Second)
	e, err := svc.CreateEvent(context.Background(), validCandidate(monday))
	require.NoError(t, err)
	return NewDialogSession(svc), svc, e
}

func TestDialogCreateFlow(t *testing.T) {
	dlg, svc, _ := newDialogFixture(t)
	ctx := context.Background()

	require.NoError(t, dlg.Open())
	assert.Equal(t, DialogCreating, dlg.State())

	c := validCandidate(monday)
	c.Title = "Parents Evening"
	created, err := dlg.Submit(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, DialogClosed, dlg.State())

	got, err := svc.GetEventByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Parents Evening", got.Title)
}

func TestDialogSubmitInvalidKeepsDialogOpen(t *testing.T) {
	dlg, _, _ := newDialogFixture(t)
	ctx := context.Background()

	require.NoError(t, dlg.Open())
	bad := validCandidate(monday)
	bad.Title = ""
	_, err := dlg.Submit(ctx, bad)
	require.ErrorIs(t, err, domain.ErrInvalidCandidate)
	assert.Equal(t, DialogCreating, dlg.State(), "editor stays open to correct the input")
}

func TestDialogCancelCreateDoesNotMutate(t *testing.T) {
	dlg, svc, _ := newDialogFixture(t)
	ctx := context.Background()

	require.NoError(t, dlg.Open())
	require.NoError(t, dlg.Cancel())
	assert.Equal(t, DialogClosed, dlg.State())

	onDay, err := svc.EventsOnDate(ctx, monday, nil)
	require.NoError(t, err)
	assert.Len(t, onDay, 1, "only the fixture event exists")
}

func TestDialogViewEditSave(t *testing.T) {
	dlg, svc, e := newDialogFixture(t)
	ctx := context.Background()

	require.NoError(t, dlg.ClickEvent(ctx, e.ID))
	assert.Equal(t, DialogViewing, dlg.State())
	require.NotNil(t, dlg.Current())
	assert.Equal(t, e.ID, dlg.Current().ID)

	require.NoError(t, dlg.RequestEdit())
	assert.Equal(t, DialogEditing, dlg.State())

	title := "Renamed"
	updated, err := dlg.Save(ctx, domain.Patch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, DialogClosed, dlg.State())
	assert.Nil(t, dlg.Current())
	assert.Equal(t, "Renamed", updated.Title)

	got, err := svc.GetEventByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
}

func TestDialogDeleteFlow(t *testing.T) {
	dlg, svc, e := newDialogFixture(t)
	ctx := context.Background()

	require.NoError(t, dlg.ClickEvent(ctx, e.ID))
	require.NoError(t, dlg.RequestDelete())
	assert.Equal(t, DialogConfirmingDelete, dlg.State())

	// backing out of the confirmation returns to the detail view, unchanged
	require.NoError(t, dlg.Cancel())
	assert.Equal(t, DialogViewing, dlg.State())
	_, err := svc.GetEventByID(ctx, e.ID)
	require.NoError(t, err)

	require.NoError(t, dlg.RequestDelete())
	require.NoError(t, dlg.ConfirmDelete(ctx))
	assert.Equal(t, DialogClosed, dlg.State())

	_, err = svc.GetEventByID(ctx, e.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDialogClickStaleEvent(t *testing.T) {
	dlg, svc, e := newDialogFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.DeleteEvent(ctx, e.ID))
	err := dlg.ClickEvent(ctx, e.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, DialogClosed, dlg.State())
}

func TestDialogCloseDiscardsFromAnyState(t *testing.T) {
	dlg, svc, e := newDialogFixture(t)
	ctx := context.Background()

	require.NoError(t, dlg.ClickEvent(ctx, e.ID))
	require.NoError(t, dlg.RequestEdit())
	dlg.Close()
	assert.Equal(t, DialogClosed, dlg.State())
	assert.Nil(t, dlg.Current())

	// the abandoned edit never reached the store
	got, err := svc.GetEventByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Staff Meeting", got.Title)
}

func TestDialogInvalidTransitions(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T, dlg *DialogSession, e *domain.Event) error
	}{
		{"submit while closed", func(t *testing.T, dlg *DialogSession, e *domain.Event) error {
			_, err := dlg.Submit(context.Background(), validCandidate(monday))
			return err
		}},
		{"open twice", func(t *testing.T, dlg *DialogSession, e *domain.Event) error {
			require.NoError(t, dlg.Open())
			return dlg.Open()
		}},
		{"edit without viewing", func(t *testing.T, dlg *DialogSession, e *domain.Event) error {
			return dlg.RequestEdit()
		}},
		{"save without editing", func(t *testing.T, dlg *DialogSession, e *domain.Event) error {
			_, err := dlg.Save(context.Background(), domain.Patch{})
			return err
		}},
		{"confirm without request", func(t *testing.T, dlg *DialogSession, e *domain.Event) error {
			require.NoError(t, dlg.ClickEvent(context.Background(), e.ID))
			return dlg.ConfirmDelete(context.Background())
		}},
		{"cancel while closed", func(t *testing.T, dlg *DialogSession, e *domain.Event) error {
			return dlg.Cancel()
		}},
		{"click while creating", func(t *testing.T, dlg *DialogSession, e *domain.Event) error {
			require.NoError(t, dlg.Open())
			return dlg.ClickEvent(context.Background(), e.ID)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dlg, _, e := newDialogFixture(t)
			err := tt.run(t, dlg, e)
			assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		})
	}
}

func TestDialogStateString(t *testing.T) {
	assert.Equal(t, "closed", DialogClosed.String())
	assert.Equal(t, "confirming-delete", DialogConfirmingDelete.String())
	assert.Equal(t, "DialogState(99)", DialogState(99).String())
}
