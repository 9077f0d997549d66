// Package contact manages the contact-form field state and submission
// lifecycle.
//
// A Controller owns all mutable form state for one visit: field values, a
// per-field error map, the submitting flag, and the tri-state submission
// status. No other component mutates this state; consumers read snapshots.
package contact

import (
	"context"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/vpenugonda/portfolio/pkg/logger"
)

// Field names accepted by UpdateField.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)

// Validation rule constants.
const (
	minNameLength    = 2
	minMessageLength = 10
)

// Status is the tri-state submission result.
type Status string

// Submission statuses.
const (
	StatusIdle    Status = "idle"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Message is one submitted contact message handed to a Sender.
type Message struct {
	ID      string
	Name    string
	Email   string
	Message string
}

// Sender delivers a contact message. Implementations may simulate a network
// call or perform a real send; either way Send must honor ctx.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// State is a read-only snapshot of the controller.
type State struct {
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Message    string            `json:"message"`
	Errors     map[string]string `json:"errors"`
	Submitting bool              `json:"submitting"`
	Status     Status            `json:"status"`
}

// emailRule validates the local@domain.tld shape.
var emailRule = validator.New(validator.WithRequiredStructEnabled())

// Controller owns the contact form state machine:
// idle -> submitting -> {success, error} -> idle.
type Controller struct {
	mu         sync.Mutex
	name       string
	email      string
	message    string
	errors     map[string]string
	submitting bool
	status     Status

	sender Sender
	log    logger.Logger
}

// Option applies a configuration option to the Controller.
type Option func(*Controller)

// WithSender sets the message transport.
func WithSender(sender Sender) Option {
	return func(c *Controller) {
		if sender != nil {
			c.sender = sender
		}
	}
}

// WithLogger sets a custom logger for the controller.
func WithLogger(log logger.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// New constructs a Controller. The default transport is the simulated sender.
func New(opts ...Option) *Controller {
	c := &Controller{
		errors: map[string]string{},
		status: StatusIdle,
		sender: NewSimulatedSender(),
	}

	// Apply all options
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// UpdateField sets the named field unconditionally. If the field currently
// carries a validation error, only that field's error is cleared; other
// fields are not re-validated. A transient success/error status reverts to
// idle on the next edit.
func (c *Controller) UpdateField(name, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch name {
	case FieldName:
		c.name = value
	case FieldEmail:
		c.email = value
	case FieldMessage:
		c.message = value
	default:
		return NewUnknownFieldError(name)
	}

	delete(c.errors, name)
	c.status = StatusIdle
	return nil
}

// Validate recomputes the error map from the current field values. The map
// is always replaced as a whole, never merged. Returns true iff the form is
// valid.
func (c *Controller) Validate() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.validateLocked()
}

func (c *Controller) validateLocked() bool {
	errs := map[string]string{}

	name := strings.TrimSpace(c.name)
	if name == "" {
		errs[FieldName] = "Name is required"
	} else if len(name) < minNameLength {
		errs[FieldName] = "Name must be at least 2 characters"
	}

	email := strings.TrimSpace(c.email)
	if email == "" {
		errs[FieldEmail] = "Email is required"
	} else if err := emailRule.Var(email, "email"); err != nil {
		errs[FieldEmail] = "Please enter a valid email address"
	}

	message := strings.TrimSpace(c.message)
	if message == "" {
		errs[FieldMessage] = "Message is required"
	} else if len(message) < minMessageLength {
		errs[FieldMessage] = "Message must be at least 10 characters"
	}

	c.errors = errs
	return len(errs) == 0
}

// Submit validates and, if the form is valid, delivers the message through
// the sender. A submit while another is in flight is a no-op. On success the
// fields are cleared; on failure user input is preserved so nothing typed is
// lost. The submitting flag is always reset, even if the sender panics.
func (c *Controller) Submit(ctx context.Context) (State, error) {
	c.mu.Lock()
	if c.submitting {
		state := c.snapshotLocked()
		c.mu.Unlock()
		return state, ErrInFlight
	}
	if !c.validateLocked() {
		state := c.snapshotLocked()
		c.mu.Unlock()
		return state, ErrInvalid
	}

	c.submitting = true
	c.status = StatusIdle
	msg := Message{
		ID:      uuid.NewString(),
		Name:    strings.TrimSpace(c.name),
		Email:   strings.TrimSpace(c.email),
		Message: strings.TrimSpace(c.message),
	}
	sender := c.sender
	c.mu.Unlock()

	err := c.send(ctx, sender, msg)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.submitting = false
	if err != nil {
		c.status = StatusError
		if c.log != nil {
			c.log.Warn(ctx, "contact message send failed",
				logger.String("messageID", msg.ID),
				logger.Error(err),
			)
		}
		return c.snapshotLocked(), WrapSendError(err)
	}

	c.status = StatusSuccess
	c.name, c.email, c.message = "", "", ""
	c.errors = map[string]string{}
	if c.log != nil {
		c.log.Info(ctx, "contact message sent", logger.String("messageID", msg.ID))
	}
	return c.snapshotLocked(), nil
}

// send isolates the sender call so a panic cannot leave submitting stuck.
func (c *Controller) send(ctx context.Context, sender Sender, msg Message) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = NewPanicError(r)
		}
	}()
	return sender.Send(ctx, msg)
}

// State returns a read-only snapshot of the form.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() State {
	errs := make(map[string]string, len(c.errors))
	for k, v := range c.errors {
		errs[k] = v
	}
	return State{
		Name:       c.name,
		Email:      c.email,
		Message:    c.message,
		Errors:     errs,
		Submitting: c.submitting,
		Status:     c.status,
	}
}
