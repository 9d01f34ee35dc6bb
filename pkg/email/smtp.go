package email

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"mime"
	"mime/quotedprintable"
	"net"
	"net/smtp"
	"strings"
	"time"

	"destiny-global-backend/config"
	"destiny-global-backend/internal/domain"
)

// ErrNotConfigured is returned when SMTP credentials are missing
var ErrNotConfigured = errors.New("email service is not configured")

// SMTPMailer sends HTML emails over SMTP. It is built once at startup and
// only read afterwards, so one instance is shared by all requests.
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	timeout  time.Duration
	dialer   *net.Dialer
	now      func() time.Time
}

// NewSMTPMailer creates a new SMTP mailer from configuration
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		timeout:  cfg.MailSendTimeout,
		dialer:   &net.Dialer{},
		now:      time.Now,
	}
}

// IsConfigured checks if the mailer has valid SMTP configuration
func (m *SMTPMailer) IsConfigured() bool {
	return m.host != "" && m.port != "" && m.username != "" && m.password != ""
}

// Verify opens a session, authenticates and quits without sending anything
func (m *SMTPMailer) Verify(ctx context.Context) error {
	if !m.IsConfigured() {
		return ErrNotConfigured
	}
	c, stop, err := m.connect(ctx)
	if err != nil {
		return err
	}
	defer stop()
	defer c.Close()

	return c.Quit()
}

// Send delivers one message. The context deadline, if any, bounds the whole
// SMTP conversation.
func (m *SMTPMailer) Send(ctx context.Context, msg domain.Mail) error {
	if !m.IsConfigured() {
		return ErrNotConfigured
	}
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	c, stop, err := m.connect(ctx)
	if err != nil {
		return err
	}
	defer stop()
	defer c.Close()

	if err := c.Mail(msg.From); err != nil {
		return fmt.Errorf("smtp MAIL FROM: %w", err)
	}
	if err := c.Rcpt(msg.To); err != nil {
		return fmt.Errorf("smtp RCPT TO: %w", err)
	}

	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("smtp DATA: %w", err)
	}
	if _, err := w.Write(BuildMessage(msg, m.now())); err != nil {
		return fmt.Errorf("failed to write email body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return c.Quit()
}

// connect dials, upgrades to TLS when offered and authenticates. The returned
// stop func detaches the context watcher.
func (m *SMTPMailer) connect(ctx context.Context) (*smtp.Client, func() bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	addr := net.JoinHostPort(m.host, m.port)
	tlsConfig := &tls.Config{ServerName: m.host}

	var (
		conn net.Conn
		err  error
	)
	if m.port == "465" {
		d := &tls.Dialer{NetDialer: m.dialer, Config: tlsConfig}
		conn, err = d.DialContext(ctx, "tcp", addr)
	} else {
		conn, err = m.dialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })

	c, err := smtp.NewClient(conn, m.host)
	if err != nil {
		stop()
		_ = conn.Close()
		return nil, nil, fmt.Errorf("smtp handshake: %w", err)
	}

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(tlsConfig); err != nil {
			stop()
			_ = c.Close()
			return nil, nil, fmt.Errorf("smtp STARTTLS: %w", err)
		}
	}

	if ok, _ := c.Extension("AUTH"); ok {
		auth := smtp.PlainAuth("", m.username, m.password, m.host)
		if err := c.Auth(auth); err != nil {
			stop()
			_ = c.Close()
			return nil, nil, fmt.Errorf("smtp AUTH: %w", err)
		}
	}

	return c, stop, nil
}

// BuildMessage renders the MIME document for msg. The body is
// quoted-printable encoded so no line exceeds the SMTP line limit.
func BuildMessage(msg domain.Mail, date time.Time) []byte {
	var b strings.Builder
	header := func(k, v string) {
		if v != "" {
			b.WriteString(k + ": " + v + "\r\n")
		}
	}

	header("From", msg.From)
	header("To", msg.To)
	header("Reply-To", msg.ReplyTo)
	header("Subject", mime.QEncoding.Encode("UTF-8", msg.Subject))
	header("Date", date.Format(time.RFC1123Z))
	header("MIME-Version", "1.0")
	header("Content-Type", "text/html; charset=UTF-8")
	header("Content-Transfer-Encoding", "quoted-printable")
	b.WriteString("\r\n")

	qp := quotedprintable.NewWriter(&b)
	_, _ = qp.Write([]byte(msg.HTML))
	_ = qp.Close()

	return []byte(b.String())
}
