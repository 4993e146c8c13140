package mailer

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/QuangTung97/event-checkout/config"
	"github.com/wneessen/go-mail"
)

const defaultTimeout = 10 * time.Second

// ErrInvalidHeader when a header value would break out of its line
var ErrInvalidHeader = errors.New("mailer: invalid header value")

// Message is one plain text mail
type Message struct {
	To      string
	Subject string
	Body    string
}

// SMTPSender delivers each message over its own SMTP session
type SMTPSender struct {
	host    string
	from    string
	timeout time.Duration
	options []mail.Option
}

// NewSMTPSender ...
func NewSMTPSender(conf config.MailConfig) *SMTPSender {
	timeout := conf.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	tlsPolicy := mail.TLSOpportunistic
	if conf.RequireTLS {
		tlsPolicy = mail.TLSMandatory
	}

	options := []mail.Option{
		mail.WithPort(int(conf.Port)),
		mail.WithTLSPolicy(tlsPolicy),
		mail.WithDialContextFunc(dialWithDeadline),
	}
	if conf.Username != "" {
		options = append(options,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(conf.Username),
			mail.WithPassword(conf.Password),
		)
	}

	return &SMTPSender{
		host:    conf.Host,
		from:    conf.From,
		timeout: timeout,
		options: options,
	}
}

// dialWithDeadline bounds the greeting and handshake by the dial context,
// the library only applies the context to the TCP connect
func dialWithDeadline(ctx context.Context, network string, address string) (net.Conn, error) {
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, network, address)
	if err != nil {
		return nil, err
	}
	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			_ = conn.Close()
			return nil, err
		}
	}
	return conn, nil
}

func (s *SMTPSender) newMsg(msg Message) (*mail.Msg, error) {
	if strings.ContainsAny(msg.To, "\r\n") || strings.ContainsAny(msg.Subject, "\r\n") {
		return nil, ErrInvalidHeader
	}

	m := mail.NewMsg()
	if err := m.From(s.from); err != nil {
		return nil, fmt.Errorf("mailer: from: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("mailer: to: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)
	return m, nil
}

// sessionTimeout is the configured timeout cut to what is left of ctx
func (s *SMTPSender) sessionTimeout(ctx context.Context) time.Duration {
	timeout := s.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}
	return timeout
}

// Send delivers the message, the whole SMTP session is bounded by ctx and the configured timeout
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m, err := s.newMsg(msg)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	timeout := s.sessionTimeout(ctx)
	if timeout <= 0 {
		return context.DeadlineExceeded
	}

	options := append([]mail.Option{mail.WithTimeout(timeout)}, s.options...)
	client, err := mail.NewClient(s.host, options...)
	if err != nil {
		return fmt.Errorf("mailer: %w", err)
	}
	return client.DialAndSendWithContext(ctx, m)
}
