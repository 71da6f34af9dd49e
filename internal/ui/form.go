package ui

import (
	"github.com/charmbracelet/huh"

	"github.com/Anshit-Gupta/Enigma/internal/page"
)

// newContactForm builds the contact form over a shared submission struct.
// Field-level validation comes from the page package; huh re-runs it on
// every confirm, so invalid fields block completion with their message.
func newContactForm(sub *page.ContactSubmission) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Placeholder("Your full name").
				Value(&sub.Name).
				Validate(page.ValidateName),
			huh.NewInput().
				Key("email").
				Title("Email").
				Placeholder("you@example.com").
				Value(&sub.Email).
				Validate(page.ValidateEmail),
			huh.NewText().
				Key("message").
				Title("Message").
				Placeholder("What would you like to tell us?").
				Value(&sub.Message).
				Validate(page.ValidateMessage),
		).Title("Get in touch"),
	).WithShowHelp(true)
}
