package config

import (
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	err := godotenv.Load(".env")
	if err != nil {
		logrus.Warn("No .env file found, reading configuration from the environment")
	}
	if err := env.Parse(&Config); err != nil {
		logrus.Fatalf("Error initializing: %s", err.Error())
		os.Exit(1)
	}
	return &Config, nil
}

type Config struct {
	APP
	Webhook
	POS
	Kafka
	DB
}

type APP struct {
	PORT         string        `env:"APP_PORT" envDefault:"8080"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat    string        `env:"LOG_FORMAT" envDefault:"text"`
	ReadTimeout  time.Duration `env:"APP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"APP_WRITE_TIMEOUT" envDefault:"30s"`
}

type Webhook struct {
	Secret          string        `env:"WEBHOOK_SECRET"`
	SignatureHeader string        `env:"WEBHOOK_SIGNATURE_HEADER" envDefault:"X-Webhook-Signature"`
	ReplayTolerance time.Duration `env:"WEBHOOK_REPLAY_TOLERANCE" envDefault:"0s"`
}

type POS struct {
	Transport        string        `env:"POS_TRANSPORT" envDefault:"http"`
	CallbackURL      string        `env:"POS_CALLBACK_URL"`
	CallbackTimeout  time.Duration `env:"POS_CALLBACK_TIMEOUT" envDefault:"10s"`
	TerminalStatuses string        `env:"POS_TERMINAL_STATUSES" envDefault:"paid,failed,cancelled"`
	RetryEnabled     bool          `env:"POS_RETRY_ENABLED" envDefault:"false"`
}

type Kafka struct {
	Brokers       string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	ConsumerGroup string `env:"KAFKA_RETRY_GROUP_ID" envDefault:"webhook-service"`
	PosTopic      string `env:"KAFKA_POS_TOPIC" envDefault:"pos.payment.status"`
	RetryTopic    string `env:"KAFKA_RETRY_TOPIC" envDefault:"pos.callbacks.retry"`
	DLQTopic      string `env:"KAFKA_DLQ_TOPIC" envDefault:"pos.callbacks.dlq"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

type DB struct {
	HOST     string `env:"DB_HOST"`
	USER     string `env:"DB_USER"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME"`
	PORT     string `env:"DB_PORT" envDefault:"5432"`
	SSLMODE  string `env:"DB_SSLMODE" envDefault:"disable"`

	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`
	LogLevel        string        `env:"DB_LOG_LEVEL" envDefault:"warn"`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}

func (k Kafka) BrokerList() []string {
	return splitList(k.Brokers)
}

// TerminalStatusList returns the configured terminal statuses, trimmed and lower-cased.
func (p POS) TerminalStatusList() []string {
	statuses := splitList(p.TerminalStatuses)
	for i, s := range statuses {
		statuses[i] = strings.ToLower(s)
	}
	return statuses
}

func (db DB) Enabled() bool {
	return strings.TrimSpace(db.HOST) != ""
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
