package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/trendify-api/internal/application/ports"
	"github.com/jhoicas/trendify-api/pkg/config"
	"github.com/jhoicas/trendify-api/pkg/logger"
)

var _ ports.Mailer = (*SMTPMailer)(nil)

// SMTPMailer implementación del puerto Mailer sobre SMTP. Los envíos son
// fire-and-forget: un fallo se loguea y se devuelve, pero los casos de uso
// no lo propagan al caller.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
	log    *logger.Logger
}

// NewSMTPMailer construye el notificador.
func NewSMTPMailer(cfg config.SMTPConfig, log *logger.Logger) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
		log:    log,
	}
}

// SendConfirmationCode envía el código de activación de la cuenta.
func (m *SMTPMailer) SendConfirmationCode(name, email, code string) error {
	body := fmt.Sprintf(`
		<h2>Hola %s,</h2>
		<p>Gracias por registrarte en Trendify. Usa este código para confirmar tu cuenta. Vence en 10 minutos.</p>
		<p>Código de verificación: <b>%s</b></p>
	`, name, code)
	return m.send("Confirma tu cuenta", email, body)
}

// SendPasswordChanged notifica que la contraseña fue cambiada.
func (m *SMTPMailer) SendPasswordChanged(name, email string) error {
	body := fmt.Sprintf(`
		<h2>Hola %s,</h2>
		<p>Tu contraseña fue cambiada. Si no fuiste tú, contacta a soporte de inmediato.</p>
	`, name)
	return m.send("Tu contraseña fue cambiada", email, body)
}

func (m *SMTPMailer) send(subject, to, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.log.Warn().Err(err).Str("to", to).Str("subject", subject).Msg("fallo al enviar email")
		return err
	}
	return nil
}
