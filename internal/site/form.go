package site

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"destiny-global-backend/internal/domain"
	"destiny-global-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// DefaultConfirmationTimeout is how long the success banner stays visible
const DefaultConfirmationTimeout = 5 * time.Second

const (
	MsgFillRequired  = "Please fill all required fields"
	MsgInvalidEmail  = "Please enter a valid email address"
	MsgSubmitFailed  = "Failed to submit enquiry. Please try again."
	MsgUnreachable   = "Cannot connect to server. Please try again later."
	MsgSubmitSuccess = "Your enquiry has been submitted. We'll get back to you soon."
)

var (
	ErrSubmitInFlight = errors.New("a submission is already in progress")
	ErrFormInvalid    = errors.New("form is invalid")
	ErrSubmitFailed   = errors.New("submission failed")
)

// FormKind selects which enquiry form a Form models
type FormKind int

const (
	ContactForm FormKind = iota
	ProductForm
)

// Field describes one input of a form
type Field struct {
	Name      string
	Label     string
	Required  bool
	Multiline bool
}

var contactFields = []Field{
	{Name: "name", Label: "Your Name", Required: true},
	{Name: "email", Label: "Email Address", Required: true},
	{Name: "phone", Label: "Phone Number", Required: true},
	{Name: "product", Label: "Product Interest"},
	{Name: "message", Label: "Your Message", Required: true, Multiline: true},
}

var productFields = []Field{
	{Name: "name", Label: "Your Name", Required: true},
	{Name: "email", Label: "Email Address", Required: true},
	{Name: "phone", Label: "Phone Number", Required: true},
	{Name: "company", Label: "Company Name"},
	{Name: "country", Label: "Country"},
	{Name: "message", Label: "Your Message", Required: true, Multiline: true},
}

// FormState is the lifecycle of one form
type FormState struct {
	Submitted bool
	Loading   bool
	Error     string
}

// Form collects enquiry fields and submits them. At most one submission is
// in flight; the form is cleared only after the API confirms success.
type Form struct {
	kind      FormKind
	client    Submitter
	validate  *validator.Validate
	hideAfter time.Duration
	onChange  func(FormState)

	mu        sync.Mutex
	values    map[string]string
	state     FormState
	hideTimer *time.Timer
}

// NewForm creates an empty form. hideAfter <= 0 keeps the confirmation
// until the next submission.
func NewForm(kind FormKind, client Submitter, hideAfter time.Duration, onChange func(FormState)) *Form {
	return &Form{
		kind:      kind,
		client:    client,
		validate:  validation.New(),
		hideAfter: hideAfter,
		onChange:  onChange,
		values:    make(map[string]string),
	}
}

// Fields lists the inputs of this form in display order
func (f *Form) Fields() []Field {
	if f.kind == ProductForm {
		return productFields
	}
	return contactFields
}

// Set stores a field value; unknown field names are ignored like any
// unnamed input would be
func (f *Form) Set(name, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, field := range f.Fields() {
		if field.Name == name {
			f.values[name] = value
			return
		}
	}
}

func (f *Form) Value(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[name]
}

func (f *Form) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Submit validates the fields and posts them. When selected is non-nil its
// name replaces the product field. The returned error carries the message
// also stored in State().Error.
func (f *Form) Submit(ctx context.Context, selected *domain.Product) error {
	f.mu.Lock()
	if f.state.Loading {
		f.mu.Unlock()
		return ErrSubmitInFlight
	}

	enquiry := f.enquiryLocked(selected)
	if err := validation.ValidateEnquiry(f.validate, &enquiry); err != nil {
		msg := MsgFillRequired
		if errors.Is(err, validation.ErrInvalidEmail) {
			msg = MsgInvalidEmail
		}
		f.state.Error = msg
		snap := f.state
		f.mu.Unlock()
		f.notify(snap)
		return fmt.Errorf("%w: %s", ErrFormInvalid, msg)
	}

	f.state.Loading = true
	f.state.Error = ""
	snap := f.state
	f.mu.Unlock()
	f.notify(snap)

	resp, err := f.client.SubmitEnquiry(ctx, enquiry)

	f.mu.Lock()
	f.state.Loading = false
	var result error
	switch {
	case err != nil:
		f.state.Error = MsgUnreachable
		result = fmt.Errorf("%w: %s", ErrSubmitFailed, MsgUnreachable)
	case !resp.Success:
		msg := resp.Message
		if msg == "" {
			msg = MsgSubmitFailed
		}
		f.state.Error = msg
		result = fmt.Errorf("%w: %s", ErrSubmitFailed, msg)
	default:
		f.state.Submitted = true
		f.values = make(map[string]string)
		f.scheduleHideLocked()
	}
	snap = f.state
	f.mu.Unlock()

	f.notify(snap)
	return result
}

// Close stops a pending confirmation timer
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.hideTimer != nil {
		f.hideTimer.Stop()
		f.hideTimer = nil
	}
}

func (f *Form) enquiryLocked(selected *domain.Product) domain.Enquiry {
	e := domain.Enquiry{
		Name:    f.values["name"],
		Email:   f.values["email"],
		Phone:   f.values["phone"],
		Company: f.values["company"],
		Country: f.values["country"],
		Product: f.values["product"],
		Message: f.values["message"],
	}
	if selected != nil {
		e.Product = selected.Name
	}
	return e
}

func (f *Form) scheduleHideLocked() {
	if f.hideTimer != nil {
		f.hideTimer.Stop()
		f.hideTimer = nil
	}
	if f.hideAfter <= 0 {
		return
	}

	var t *time.Timer
	t = time.AfterFunc(f.hideAfter, func() {
		f.mu.Lock()
		// A newer submission owns the banner now
		if f.hideTimer != t {
			f.mu.Unlock()
			return
		}
		f.hideTimer = nil
		f.state.Submitted = false
		snap := f.state
		f.mu.Unlock()
		f.notify(snap)
	})
	f.hideTimer = t
}

func (f *Form) notify(s FormState) {
	if f.onChange != nil {
		f.onChange(s)
	}
}
