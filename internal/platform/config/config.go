package config

import (
	"os"
	"time"
)

// Server captures process level configuration.
type Server struct {
	Addr          string
	Environment   string
	JWTSigningKey string
	SessionTTL    time.Duration
	OTPTTL        time.Duration

	DatabaseURL string
	RedisAddr   string

	KafkaBrokers string
	AuditTopic   string

	Email Email
}

// Email selects and configures the outbound mail provider.
type Email struct {
	Provider string // "smtp", "mailgun", or "log"
	From     string

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string

	MailgunDomain string
	MailgunAPIKey string
}

// Session and OTP lifetimes. Env overrides accept time.ParseDuration syntax.
var (
	SessionTTL = 24 * time.Hour
	OTPTTL     = 5 * time.Minute
)

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("MENTORHUB_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	environment := os.Getenv("MENTORHUB_ENV")
	if environment == "" {
		environment = "development"
	}

	if v := os.Getenv("SESSION_TTL"); v != "" {
		if duration, err := time.ParseDuration(v); err == nil {
			SessionTTL = duration
		}
	}
	if v := os.Getenv("OTP_TTL"); v != "" {
		if duration, err := time.ParseDuration(v); err == nil {
			OTPTTL = duration
		}
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	emailProvider := os.Getenv("EMAIL_PROVIDER")
	if emailProvider == "" {
		emailProvider = "log"
	}
	emailFrom := os.Getenv("EMAIL_FROM")
	if emailFrom == "" {
		emailFrom = "no-reply@mentorhub.local"
	}

	auditTopic := os.Getenv("AUDIT_TOPIC")
	if auditTopic == "" {
		auditTopic = "mentorhub.audit"
	}

	return Server{
		Addr:          addr,
		Environment:   environment,
		JWTSigningKey: jwtSigningKey,
		SessionTTL:    SessionTTL,
		OTPTTL:        OTPTTL,
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		KafkaBrokers:  os.Getenv("KAFKA_BROKERS"),
		AuditTopic:    auditTopic,
		Email: Email{
			Provider:      emailProvider,
			From:          emailFrom,
			SMTPHost:      os.Getenv("SMTP_HOST"),
			SMTPPort:      os.Getenv("SMTP_PORT"),
			SMTPUsername:  os.Getenv("SMTP_USERNAME"),
			SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
			MailgunDomain: os.Getenv("MAILGUN_DOMAIN"),
			MailgunAPIKey: os.Getenv("MAILGUN_API_KEY"),
		},
	}
}
