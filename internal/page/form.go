package page

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Anshit-Gupta/Enigma/internal/engine"
)

// DefaultSubmitDelay simulates the network round trip of the contact form.
const DefaultSubmitDelay = 1500 * time.Millisecond

// Field validation errors surfaced next to the offending input.
var (
	ErrNameRequired    = errors.New("please enter your name")
	ErrNameTooShort    = errors.New("name must be at least 2 characters")
	ErrEmailRequired   = errors.New("please enter your email")
	ErrEmailInvalid    = errors.New("please enter a valid email address")
	ErrMessageRequired = errors.New("please enter a message")
	ErrMessageTooShort = errors.New("message must be at least 10 characters")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateName checks the name field.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}
	if utf8.RuneCountInString(name) < 2 {
		return ErrNameTooShort
	}
	return nil
}

// ValidateEmail checks the email field.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailRequired
	}
	if !emailPattern.MatchString(email) {
		return ErrEmailInvalid
	}
	return nil
}

// ValidateMessage checks the message field.
func ValidateMessage(message string) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return ErrMessageRequired
	}
	if utf8.RuneCountInString(message) < 10 {
		return ErrMessageTooShort
	}
	return nil
}

// ContactSubmission is a validated contact form payload.
type ContactSubmission struct {
	Name    string
	Email   string
	Message string
}

// Validate runs every field rule and returns the first failure per field.
func (s ContactSubmission) Validate() []error {
	var errs []error
	if err := ValidateName(s.Name); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateEmail(s.Email); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateMessage(s.Message); err != nil {
		errs = append(errs, err)
	}
	return errs
}

// Submit simulates sending the form. After delay elapses on the scheduler
// the status node gets the show presentation state and done runs. The
// returned timer lets the caller cancel on teardown. Submitting an invalid
// payload fails immediately without scheduling anything.
func Submit(sch engine.Scheduler, s ContactSubmission, delay time.Duration, status engine.Node, done func()) (*engine.Timer, error) {
	if errs := s.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("contact form invalid: %w", errors.Join(errs...))
	}
	if delay <= 0 {
		delay = DefaultSubmitDelay
	}
	return sch.AfterFunc(delay, func() {
		if status != nil {
			status.SetText(fmt.Sprintf("Thanks %s! Your message has been sent.", strings.TrimSpace(s.Name)))
			status.AddState(engine.StateShow)
		}
		if done != nil {
			done()
		}
	}), nil
}
