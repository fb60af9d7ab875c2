package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BILLING_STORE", "memory")
	t.Setenv("MONGO_TIMEOUT_SECONDS", "3")
	t.Setenv("REDIS_ADDR", "")

	cfg := Load()

	assert.Equal(t, "medrep-crm", cfg.App.Name)
	assert.Equal(t, "memory", cfg.Billing.Store)
	assert.Equal(t, "billing_", cfg.Mongo.CollectionPrefix)
	assert.Equal(t, 3*time.Second, cfg.Mongo.Timeout)
	assert.Equal(t, 24*time.Hour, cfg.Redis.IdempotencyTTL)
	assert.False(t, cfg.Redis.IdempotencyEnabled())
}

func TestDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db",
		Port:     "5432",
		Name:     "medrep",
		User:     "app",
		Password: "secret",
		SSLMode:  "disable",
		Timezone: "UTC",
	}

	assert.Equal(t, "host=db user=app password=secret dbname=medrep port=5432 sslmode=disable TimeZone=UTC", cfg.DSN())
}
