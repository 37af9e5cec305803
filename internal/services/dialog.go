package services

import (
	"context"
	"fmt"

	"weekscheduler/internal/domain"
)

// DialogState identifies where the create/view/edit dialog interaction is.
// States are mutually exclusive: the session can never have, say, the delete
// confirmation and the editor open at once.
type DialogState int

const (
	DialogClosed DialogState = iota
	DialogCreating
	DialogViewing
	DialogEditing
	DialogConfirmingDelete
)

func (s DialogState) String() string {
	switch s {
	case DialogClosed:
		return "closed"
	case DialogCreating:
		return "creating"
	case DialogViewing:
		return "viewing"
	case DialogEditing:
		return "editing"
	case DialogConfirmingDelete:
		return "confirming-delete"
	}
	return fmt.Sprintf("DialogState(%d)", int(s))
}

// DialogSession drives the calendar's modal interaction as an explicit state
// machine. It is the only path through which user intents reach the schedule
// service, so cancel and close can guarantee that nothing was mutated.
type DialogSession struct {
	svc     domain.ScheduleService
	state   DialogState
	current *domain.Event
}

// NewDialogSession returns a session in the Closed state.
func NewDialogSession(svc domain.ScheduleService) *DialogSession {
	return &DialogSession{svc: svc, state: DialogClosed}
}

// State returns the current dialog state.
func (d *DialogSession) State() DialogState {
	return d.state
}

// Current returns the event being viewed, edited, or confirmed for deletion,
// or nil in the Closed and Creating states.
func (d *DialogSession) Current() *domain.Event {
	if d.current == nil {
		return nil
	}
	return d.current.Clone()
}

// Open starts a new-event dialog. Valid only when closed.
func (d *DialogSession) Open() error {
	if d.state != DialogClosed {
		return fmt.Errorf("open from %s: %w", d.state, domain.ErrInvalidTransition)
	}
	d.state = DialogCreating
	return nil
}

// Submit creates the event and closes the dialog. If the candidate is
// rejected the dialog stays open so the editor can correct it.
func (d *DialogSession) Submit(ctx context.Context, c domain.Candidate) (*domain.Event, error) {
	if d.state != DialogCreating {
		return nil, fmt.Errorf("submit from %s: %w", d.state, domain.ErrInvalidTransition)
	}
	event, err := d.svc.CreateEvent(ctx, c)
	if err != nil {
		return nil, err
	}
	d.state = DialogClosed
	return event, nil
}

// ClickEvent opens the detail view for the given event. Valid only when
// closed; a stale id surfaces domain.ErrNotFound and leaves the dialog
// closed.
func (d *DialogSession) ClickEvent(ctx context.Context, id string) error {
	if d.state != DialogClosed {
		return fmt.Errorf("click event from %s: %w", d.state, domain.ErrInvalidTransition)
	}
	event, err := d.svc.GetEventByID(ctx, id)
	if err != nil {
		return err
	}
	d.state = DialogViewing
	d.current = event
	return nil
}

// RequestEdit switches the detail view into editing, pre-populated from the
// viewed event.
func (d *DialogSession) RequestEdit() error {
	if d.state != DialogViewing {
		return fmt.Errorf("request edit from %s: %w", d.state, domain.ErrInvalidTransition)
	}
	d.state = DialogEditing
	return nil
}

// Save applies the patch to the event under edit and closes the dialog. A
// rejected patch keeps the editor open.
func (d *DialogSession) Save(ctx context.Context, p domain.Patch) (*domain.Event, error) {
	if d.state != DialogEditing {
		return nil, fmt.Errorf("save from %s: %w", d.state, domain.ErrInvalidTransition)
	}
	event, err := d.svc.UpdateEvent(ctx, d.current.ID, p)
	if err != nil {
		return nil, err
	}
	d.state = DialogClosed
	d.current = nil
	return event, nil
}

// RequestDelete asks for confirmation before deleting the viewed event.
func (d *DialogSession) RequestDelete() error {
	if d.state != DialogViewing {
		return fmt.Errorf("request delete from %s: %w", d.state, domain.ErrInvalidTransition)
	}
	d.state = DialogConfirmingDelete
	return nil
}

// ConfirmDelete deletes the event and closes the dialog.
func (d *DialogSession) ConfirmDelete(ctx context.Context) error {
	if d.state != DialogConfirmingDelete {
		return fmt.Errorf("confirm delete from %s: %w", d.state, domain.ErrInvalidTransition)
	}
	if err := d.svc.DeleteEvent(ctx, d.current.ID); err != nil {
		return err
	}
	d.state = DialogClosed
	d.current = nil
	return nil
}

// Cancel backs out of the pending step without mutating anything: a create
// dialog closes, a delete confirmation returns to the detail view.
func (d *DialogSession) Cancel() error {
	switch d.state {
	case DialogCreating:
		d.state = DialogClosed
	case DialogConfirmingDelete:
		d.state = DialogViewing
	default:
		return fmt.Errorf("cancel from %s: %w", d.state, domain.ErrInvalidTransition)
	}
	return nil
}

// Close closes the dialog from any state, discarding in-progress edits
// without mutation.
func (d *DialogSession) Close() {
	d.state = DialogClosed
	d.current = nil
}
