package mailer

import (
	"medibook-service/internal/app/config"

	"github.com/go-gomail/gomail"
)

// NewSMTPDialer builds the gomail dialer used by the mail worker. The dialer
// opens a fresh connection per send, which is fine at notification volume.
func NewSMTPDialer(driverConfig *config.DriverConfig) *gomail.Dialer {
	return gomail.NewDialer(
		driverConfig.SMTP.Host,
		driverConfig.SMTP.Port,
		driverConfig.SMTP.Username,
		driverConfig.SMTP.Password,
	)
}
