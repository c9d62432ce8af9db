package orderform

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"elaundry/internal/entities"
	apperrors "elaundry/pkg/errors"
	"elaundry/pkg/validation"
)

type State string

const (
	StateEditing          State = "editing"
	StateValidationFailed State = "validation_failed"
	StateSubmitted        State = "submitted"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

const (
	MessageMissingFields = "Please fill all required fields."
	MessageSubmitted     = "Your order has been submitted!"
	MessageSubmitFailed  = "We could not send your order. Please try again."
)

type Notification struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// Acknowledgment is what the order intake hands back for an accepted draft.
type Acknowledgment struct {
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
}

// Submitter receives drafts that passed validation.
type Submitter interface {
	SubmitOrder(ctx context.Context, draft entities.OrderDraft) (Acknowledgment, error)
}

type Options struct {
	RequireBranch bool
	DefaultBranch entities.BranchID
}

type Result struct {
	Accepted       bool            `json:"accepted"`
	State          State           `json:"state"`
	Notification   Notification    `json:"notification"`
	Missing        []string        `json:"missing,omitempty"`
	Acknowledgment *Acknowledgment `json:"acknowledgment,omitempty"`
	Err            error           `json:"-"`
}

// BranchOption is one entry of the branch drop-down.
type BranchOption struct {
	Value entities.BranchID `json:"value"`
	Label string            `json:"label"`
}

// Form holds one visitor's draft order. It is never cleared by a submit.
type Form struct {
	branches  []entities.Branch
	submitter Submitter
	validator *validation.CustomValidator
	opts      Options

	mu           sync.Mutex
	draft        entities.OrderDraft
	state        State
	notification *Notification
	missing      []string
}

func New(branches []entities.Branch, submitter Submitter, v *validation.CustomValidator, opts Options) *Form {
	if v == nil {
		v = validation.New()
	}
	f := &Form{
		branches:  append([]entities.Branch(nil), branches...),
		submitter: submitter,
		validator: v,
		opts:      opts,
		state:     StateEditing,
	}
	if f.hasBranch(opts.DefaultBranch) {
		f.draft.BranchID = opts.DefaultBranch
	}
	return f
}

func (f *Form) RequiresBranch() bool { return f.opts.RequireBranch }

func (f *Form) BranchOptions() []BranchOption {
	out := make([]BranchOption, 0, len(f.branches))
	for _, b := range f.branches {
		out = append(out, BranchOption{Value: b.ID, Label: b.Name})
	}
	return out
}

// Set changes one field. Editing after a failed or accepted submit puts the
// form back into editing.
func (f *Form) Set(field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := setField(&f.draft, field, value); err != nil {
		return err
	}
	f.backToEditingLocked()
	return nil
}

// SetAll applies several fields at once. Nothing is changed when any key is
// not a form field.
func (f *Form) SetAll(values map[string]string) error {
	for field := range values {
		if !knownField(field) {
			return fmt.Errorf("%w: %q", apperrors.ErrUnknownField, field)
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for field, value := range values {
		_ = setField(&f.draft, field, value)
	}
	if len(values) > 0 {
		f.backToEditingLocked()
	}
	return nil
}

func (f *Form) Draft() entities.OrderDraft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Notification is the message from the last submit, if the form has not been
// edited since.
func (f *Form) Notification() (Notification, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.notification == nil {
		return Notification{}, false
	}
	return *f.notification, true
}

func (f *Form) Missing() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.missing...)
}

// Submit checks the draft and, when it is complete, hands it to the submitter.
func (f *Form) Submit(ctx context.Context) Result {
	f.mu.Lock()
	draft := f.draft
	missing := f.check(draft)
	if len(missing) > 0 {
		n := Notification{Level: LevelError, Message: MessageMissingFields}
		f.state = StateValidationFailed
		f.notification = &n
		f.missing = missing
		f.mu.Unlock()
		return Result{State: StateValidationFailed, Notification: n, Missing: missing}
	}
	f.mu.Unlock()

	ack, err := f.submit(ctx, draft)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.missing = nil
	if err != nil {
		n := Notification{Level: LevelError, Message: MessageSubmitFailed}
		f.state = StateEditing
		f.notification = &n
		return Result{State: StateEditing, Notification: n, Err: err}
	}

	n := Notification{Level: LevelSuccess, Message: MessageSubmitted}
	f.state = StateSubmitted
	f.notification = &n
	return Result{Accepted: true, State: StateSubmitted, Notification: n, Acknowledgment: &ack}
}

func (f *Form) submit(ctx context.Context, draft entities.OrderDraft) (Acknowledgment, error) {
	if f.submitter == nil {
		return Acknowledgment{Message: MessageSubmitted, ReceivedAt: time.Now()}, nil
	}
	return f.submitter.SubmitOrder(ctx, draft)
}

// check returns the names of the fields that keep the draft from being sent.
func (f *Form) check(draft entities.OrderDraft) []string {
	sub := submissionOf(draft)
	engine := f.validator.Engine()

	var err error
	if f.opts.RequireBranch {
		err = engine.Struct(sub)
	} else {
		err = engine.StructExcept(sub, "BranchID")
	}

	var missing []string
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, e := range verrs {
			missing = append(missing, e.Field())
		}
	}

	if sub.BranchID != "" && !f.hasBranch(entities.BranchID(sub.BranchID)) && !contains(missing, FieldBranchID) {
		missing = append(missing, FieldBranchID)
	}
	return missing
}

func (f *Form) hasBranch(id entities.BranchID) bool {
	if id.IsZero() {
		return false
	}
	for _, b := range f.branches {
		if b.ID == id {
			return true
		}
	}
	return false
}

func (f *Form) backToEditingLocked() {
	f.state = StateEditing
	f.notification = nil
	f.missing = nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
