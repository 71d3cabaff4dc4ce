package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cg-tech-git/pmo-v2/internal/delivery"
	"github.com/cg-tech-git/pmo-v2/internal/shared/connection"
)

type Config struct {
	Port                string
	Postgres            connection.PostgresConfig
	RedisAddr           string
	KafkaBroker         string
	JWTSecret           string
	AllowedEmailDomains []string
	SMTP                delivery.SMTPConfig
	PDFFontPath         string
	ReportTitle         string
}

// LoadConfig reads the process environment. godotenv has already merged .env.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port: getEnv("PORT", "3000"),
		Postgres: connection.PostgresConfig{
			Host:     os.Getenv("DB_HOST"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			Port:     getEnv("DB_PORT", "5432"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		RedisAddr:           os.Getenv("REDIS_ADDR"),
		KafkaBroker:         os.Getenv("KAFKA_BROKER"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		AllowedEmailDomains: splitList(os.Getenv("ALLOWED_EMAIL_DOMAINS")),
		SMTP: delivery.SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     os.Getenv("MAIL_FROM"),
		},
		PDFFontPath: os.Getenv("PDF_FONT_PATH"),
		ReportTitle: os.Getenv("REPORT_TITLE"),
	}

	port, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return Config{}, fmt.Errorf("SMTP_PORT: %w", err)
	}
	cfg.SMTP.Port = port

	if v := os.Getenv("SMTP_INSECURE"); v != "" {
		if cfg.SMTP.Insecure, err = strconv.ParseBool(v); err != nil {
			return Config{}, fmt.Errorf("SMTP_INSECURE: %w", err)
		}
	}
	if cfg.SMTP.Host != "" && cfg.SMTP.From == "" {
		return Config{}, fmt.Errorf("MAIL_FROM is required when SMTP_HOST is set")
	}

	return cfg, nil
}

func (c Config) requireAPI() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	return nil
}

func (c Config) requireKafka() error {
	if c.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
