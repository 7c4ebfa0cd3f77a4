package mailer

import (
	"errors"
	"fmt"
	"io"

	gomail "gopkg.in/gomail.v2"

	"github.com/kunallagu/shopify-gst-invoice-app-2/config"
)

// ErrMissingRecipient is returned when no destination address is supplied.
var ErrMissingRecipient = errors.New("mailer: recipient email is required")

// DeliveryError wraps an SMTP transport failure.
type DeliveryError struct {
	To  string
	Err error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("mailer: failed to send to %s: %v", e.To, e.Err)
}
func (e *DeliveryError) Unwrap() error { return e.Err }

// Mailer sends invoice PDFs as attachments through a configured SMTP server
// with a fixed sender identity.
type Mailer struct {
	cfg config.SMTPConfig
}

func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

func (m *Mailer) SendInvoice(to, subject string, pdf []byte) error {
	if to == "" {
		return ErrMissingRecipient
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.cfg.FromAddr, m.cfg.FromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", "Please find your invoice attached.")
	msg.Attach("invoice.pdf",
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(pdf)
			return err
		}),
		gomail.SetHeader(map[string][]string{"Content-Type": {"application/pdf"}}),
	)

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	d.SSL = false

	if err := d.DialAndSend(msg); err != nil {
		return &DeliveryError{To: to, Err: err}
	}
	return nil
}
