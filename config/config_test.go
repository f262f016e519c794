package config_test

import (
	"testing"

	"github.com/jeffleon2/draftea-webhook-service/config"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/logger"
)

func TestTerminalStatusList_TrimsAndLowercases(t *testing.T) {
	pos := config.POS{TerminalStatuses: " PAID, failed ,,Cancelled "}

	assert.Equal(t, []string{"paid", "failed", "cancelled"}, pos.TerminalStatusList())
}

func TestBrokerList_SkipsEmptyEntries(t *testing.T) {
	k := config.Kafka{Brokers: "broker-1:9092,, broker-2:9092"}

	assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, k.BrokerList())
}

func TestGetRetryConfig(t *testing.T) {
	k := config.Kafka{
		RetryMaxAttempts: 3,
		RetryJitter:      true,
	}

	rc := k.GetRetryConfig()

	assert.Equal(t, 3, rc.MaxAttempts)
	assert.True(t, rc.Jitter)
}

func TestDBEnabled(t *testing.T) {
	assert.False(t, config.DB{}.Enabled())
	assert.False(t, config.DB{HOST: "  "}.Enabled())
	assert.True(t, config.DB{HOST: "localhost"}.Enabled())
}

func TestDSN(t *testing.T) {
	db := config.DB{HOST: "pg", USER: "svc", PASSWORD: "pw", NAME: "webhooks", PORT: "5433", SSLMODE: "require"}

	assert.Equal(t, "host=pg user=svc password=pw dbname=webhooks port=5433 sslmode=require", db.DSN())
}

func TestGormLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, config.DB{LogLevel: "SILENT"}.GormLogLevel())
	assert.Equal(t, logger.Error, config.DB{LogLevel: "error"}.GormLogLevel())
	assert.Equal(t, logger.Info, config.DB{LogLevel: "info"}.GormLogLevel())
	assert.Equal(t, logger.Warn, config.DB{}.GormLogLevel())
	assert.Equal(t, logger.Warn, config.DB{LogLevel: "verbose"}.GormLogLevel())
}
