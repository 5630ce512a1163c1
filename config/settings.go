package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Settings holds every environment option the server recognizes.
type Settings struct {
	Port  string `envconfig:"PORT" default:"8080"`
	DBURL string `envconfig:"DB_URL" required:"true"`

	JWTSecret                string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenExpireMinutes int    `envconfig:"ACCESS_TOKEN_EXPIRE_MINUTES" default:"480"`

	// DisableAuth resolves every request to a fixed admin identity.
	// Local development only.
	DisableAuth bool `envconfig:"DISABLE_AUTH" default:"false"`

	AdminEmail       string `envconfig:"ADMIN_EMAIL"`
	AdminPassword    string `envconfig:"ADMIN_PASSWORD"`
	EmployeeEmail    string `envconfig:"EMPLOYEE_EMAIL"`
	EmployeePassword string `envconfig:"EMPLOYEE_PASSWORD"`

	TwilioAccountSID     string `envconfig:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken      string `envconfig:"TWILIO_AUTH_TOKEN"`
	TwilioPhoneNumber    string `envconfig:"TWILIO_PHONE_NUMBER"`
	TwilioWhatsAppNumber string `envconfig:"TWILIO_WHATSAPP_NUMBER"`
}

func Load() (*Settings, error) {
	var s Settings
	if err := envconfig.Process("", &s); err != nil {
		return nil, err
	}
	return &s, nil
}
