package mailfx

import (
	"os"
	"strconv"

	"go.uber.org/fx"
	"promptly/internal/services"
)

var Module = fx.Provide(
	provideMailService)

func provideMailService() (services.IMailService, error) {
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if port == 0 {
		port = 587
	}

	cfg := services.SMTPConfig{
		Host:       os.Getenv("SMTP_HOST"),
		Port:       port,
		Username:   os.Getenv("SMTP_USER"),
		Password:   os.Getenv("SMTP_PASS"),
		From:       os.Getenv("SMTP_FROM"),
		FromName:   os.Getenv("SMTP_FROM_NAME"),
		UseSSL:     port == 465,
		RequireTLS: os.Getenv("SMTP_REQUIRE_TLS") == "true",

		AdminEmail: os.Getenv("ADMIN_EMAIL"),
		AppName:    os.Getenv("APP_NAME"),
		AppBaseURL: os.Getenv("APP_BASE_URL"),
	}

	return services.NewSMTPMailService(cfg)
}
