package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.False(t, cfg.App.Debug)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 25, cfg.DB.MaxConns)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, time.Minute, cfg.Redis.AlertTTL)
	assert.False(t, cfg.Redis.Enabled(), "sin REDIS_ADDR la caché queda desactivada")
}

func TestLoad_DesdeEntorno(t *testing.T) {
	t.Setenv("APP_ENV", "staging")
	t.Setenv("APP_DEBUG", "true")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("ALERTS_CACHE_TTL_SECONDS", "30")
	t.Setenv("JWT_SECRET", "s3cr3t")

	v := viper.New()
	v.AutomaticEnv()
	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.App.Env)
	assert.True(t, cfg.App.DebugDetails())
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, 30*time.Second, cfg.Redis.AlertTTL)
	assert.True(t, cfg.Redis.Enabled())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnteroInvalido(t *testing.T) {
	t.Setenv("HTTP_PORT", "ochenta")
	v := viper.New()
	v.AutomaticEnv()

	_, err := fromViper(v)
	assert.ErrorContains(t, err, "HTTP_PORT")
}

func TestValidate_SecretoObligatorio(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)
	assert.ErrorContains(t, cfg.Validate(), "JWT_SECRET")
}

func TestDebugDetails_NuncaEnProduccion(t *testing.T) {
	assert.False(t, AppConfig{Env: "production", Debug: true}.DebugDetails())
	assert.True(t, AppConfig{Env: "development", Debug: true}.DebugDetails())
}

func TestDSN_EscapaContrasena(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w/rd", DBName: "stock", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aw%2Frd@db:5432/stock?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
