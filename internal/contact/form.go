// Package contact implements the contact form: field rules, the editing/submitted state machine
// and the sinks validated submissions are emitted to.
package contact

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/oklog/ulid/v2"
)

// ErrAlreadySubmitted is returned by Submit once the form left the editing state.
var ErrAlreadySubmitted = errors.New("contact: form already submitted")

// State is the form lifecycle state.
type State int

const (
	StateEditing State = iota
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateSubmitted:
		return "submitted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Input is one form-fill session's values.
type Input struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

// Value returns the value of the named field.
func (in Input) Value(field string) string {
	switch field {
	case FieldFirstName:
		return in.FirstName
	case FieldLastName:
		return in.LastName
	case FieldEmail:
		return in.Email
	case FieldSubject:
		return in.Subject
	case FieldMessage:
		return in.Message
	}
	return ""
}

// Values returns the input keyed by field name, for re-rendering the form.
func (in Input) Values() map[string]string {
	out := make(map[string]string, len(Rules))
	for _, f := range Fields() {
		out[f] = in.Value(f)
	}
	return out
}

// InputFromForm reads the posted fields. Values are kept verbatim.
func InputFromForm(form url.Values) Input {
	return Input{
		FirstName: form.Get(FieldFirstName),
		LastName:  form.Get(FieldLastName),
		Email:     form.Get(FieldEmail),
		Subject:   form.Get(FieldSubject),
		Message:   form.Get(FieldMessage),
	}
}

// FieldErrors maps field names to the rule key of the failed constraint.
type FieldErrors map[string]Rule

// Messages returns the default (English) message per failing field.
func (e FieldErrors) Messages() map[string]string {
	out := make(map[string]string, len(e))
	for field, rule := range e {
		out[field] = rule.Message
	}
	return out
}

// Validate evaluates every rule against in. An empty result means the input is valid.
func Validate(in Input) FieldErrors {
	errs := FieldErrors{}
	for _, r := range Rules {
		if !r.Check(in.Value(r.Field)) {
			errs[r.Field] = r
		}
	}
	return errs
}

// ValidateField evaluates only the rule of field. ok is false when the field fails; the failed
// rule is returned. Unknown fields are valid.
func ValidateField(field string, in Input) (Rule, bool) {
	r, known := RuleFor(field)
	if !known {
		return Rule{}, true
	}
	if r.Check(in.Value(field)) {
		return Rule{}, true
	}
	return r, false
}

// Submission is the record emitted for a valid form.
type Submission struct {
	ID         string    `json:"id"`
	Input      Input     `json:"input"`
	ReceivedAt time.Time `json:"receivedAt"`
}

// Form is the validate-then-submit state machine for one form-fill session.
type Form struct {
	sink   Sink
	now    func() time.Time
	state  State
	values Input
	errors FieldErrors
}

// Option customises a Form.
type Option func(*Form)

// WithClock overrides the time source used for Submission.ReceivedAt.
func WithClock(now func() time.Time) Option {
	return func(f *Form) {
		if now != nil {
			f.now = now
		}
	}
}

// NewForm returns a form in the editing state emitting to sink.
func NewForm(sink Sink, opts ...Option) *Form {
	f := &Form{
		sink:   sink,
		now:    time.Now,
		errors: FieldErrors{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// State returns the current lifecycle state.
func (f *Form) State() State { return f.state }

// Values returns the last submitted values.
func (f *Form) Values() Input { return f.values }

// Errors returns the failing fields of the last submit attempt.
func (f *Form) Errors() FieldErrors { return f.errors }

// Submit validates in. When every rule passes the form moves to StateSubmitted and exactly one
// Submission is emitted; the returned bool reports the transition. Invalid input keeps the form
// editing and is not an error.
func (f *Form) Submit(ctx context.Context, in Input) (bool, error) {
	if f.state == StateSubmitted {
		return false, ErrAlreadySubmitted
	}
	f.values = in
	f.errors = Validate(in)
	if len(f.errors) > 0 {
		return false, nil
	}

	sub := Submission{
		ID:         newID(f.now()),
		Input:      in,
		ReceivedAt: f.now().UTC(),
	}
	if f.sink != nil {
		if err := f.sink.Emit(ctx, sub); err != nil {
			return false, fmt.Errorf("contact: emit submission %s: %w", sub.ID, err)
		}
	}
	f.state = StateSubmitted
	return true, nil
}

// Reset clears values and errors and returns the form to the editing state.
func (f *Form) Reset() {
	f.state = StateEditing
	f.values = Input{}
	f.errors = FieldErrors{}
}

func newID(t time.Time) string {
	return ulid.MustNew(ulid.Timestamp(t), ulid.DefaultEntropy()).String()
}
