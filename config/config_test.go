package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad__Default_Config(t *testing.T) {
	conf := loadConfig(t.TempDir(), "config")

	assert.Equal(t, "local", conf.Env)
	assert.Equal(t, ":10088", conf.Server.HTTP.ListenString())
	assert.Equal(t, "localhost:10080", conf.Server.GRPC.String())
	assert.Equal(t, 50, conf.Notify.BatchSize)
	assert.Equal(t, 5*time.Second, conf.Checkout.CatalogCacheTTL)
	assert.Equal(t, false, conf.Reconcile.StrictLocking)
	assert.Equal(t, "root:1@tcp(localhost:3306)/event_checkout?parseTime=true&loc=UTC", conf.MySQL.DSN())
}

func TestNewLogger(t *testing.T) {
	logger := NewLogger(LogConfig{Level: "debug", Development: true})
	assert.NotNil(t, logger)
}
