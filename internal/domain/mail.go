package domain

import "context"

// Mail is a single formatted HTML email
type Mail struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

// Mailer sends one formatted email and reports success or failure
type Mailer interface {
	Send(ctx context.Context, msg Mail) error
}
