package services

import (
	"fmt"

	"inventario-app/config"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

// EnviarBienvenida manda el correo de alta de usuario. Es best-effort:
// un fallo se registra y no afecta la creacion del usuario.
func EnviarBienvenida(email, nombre string) error {
	if config.SMTPHost == "" {
		log.Debug().Str("email", email).Msg("SMTP not configured, skipping welcome mail")
		return nil
	}

	subject := "Bienvenido al sistema de inventario"
	body := fmt.Sprintf(`
		<html>
			<body>
				<h3>Hola %s</h3>
				<p>Tu cuenta ha sido creada con el correo <strong>%s</strong>.</p>
				<p>This is an auto-generated email. Please do not reply.</p>
			</body>
		</html>
	`, nombre, email)

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPUser)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		log.Warn().Err(err).Str("email", email).Msg("failed to send welcome mail")
		return err
	}

	log.Info().Str("email", email).Msg("welcome mail sent")
	return nil
}
