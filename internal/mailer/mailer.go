package mailer

import (
	"context"
	"fmt"

	"github.com/examhub/examhub-api/pkg/config"
	"github.com/wneessen/go-mail"
)

// Mailer sends account mails over SMTP.
type Mailer struct {
	client   *mail.Client
	from     string
	fromName string
}

func New(cfg *config.MailConfig) (*Mailer, error) {
	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.User),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return nil, fmt.Errorf("creating smtp client: %w", err)
	}

	return &Mailer{
		client:   client,
		from:     cfg.From,
		fromName: cfg.FromName,
	}, nil
}

func (m *Mailer) SendVerificationCode(ctx context.Context, to, name, code string) error {
	html := fmt.Sprintf(`
    <h2>Merhaba %s</h2>
    <p>Kayıt işleminiz başarıyla tamamlandı!</p>
    <p>Hesabınızı doğrulamak için aşağıdaki 4 haneli kodu girin:</p>
    <h3>%s</h3>
    <p>Bu kod 24 saat geçerlidir.</p>`, name, code)

	return m.send(ctx, to, "Hesabınızı doğrulayın", html)
}

func (m *Mailer) SendPasswordResetCode(ctx context.Context, to, code string) error {
	html := fmt.Sprintf(
		`<p>Şifre sıfırlama kodunuz: <b>%s</b></p><p>Bu kod 15 dakika geçerlidir.</p>`,
		code,
	)

	return m.send(ctx, to, "Şifre sıfırlama kodunuz", html)
}

func (m *Mailer) send(ctx context.Context, to, subject, html string) error {
	msg := mail.NewMsg()
	if err := msg.FromFormat(m.fromName, m.from); err != nil {
		return fmt.Errorf("setting sender: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("setting recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, html)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("sending mail to %s: %w", to, err)
	}
	return nil
}
