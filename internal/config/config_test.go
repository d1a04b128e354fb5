package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Database: DatabaseConfig{Host: "localhost", Port: 5432, User: "app", DBName: "lifestyle", SSLMode: "disable"},
		JWT:      JWTConfig{AccessSecret: "0123456789abcdef0123456789abcdef", AccessExpiryMin: 60},
		Feed:     FeedConfig{PoolLimit: 100, SessionTTL: 30 * time.Minute},
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	cases := map[string]func(c *Config){
		"missing db host": func(c *Config) { c.Database.Host = "" },
		"missing db user": func(c *Config) { c.Database.User = "" },
		"missing db name": func(c *Config) { c.Database.DBName = "" },
		"short secret":    func(c *Config) { c.JWT.AccessSecret = "short" },
		"zero pool limit": func(c *Config) { c.Feed.PoolLimit = 0 },
		"zero ttl":        func(c *Config) { c.Feed.SessionTTL = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := validConfig()
			mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_NAME", "lifestyle")
	t.Setenv("JWT_ACCESS_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("ADMIN_PROFILE_IDS", "1, 7")
	t.Setenv("FEED_SESSION_TTL", "10m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 100, cfg.Feed.PoolLimit)
	assert.Equal(t, 10*time.Minute, cfg.Feed.SessionTTL)
	assert.Equal(t, []int{1, 7}, cfg.Admin.ProfileIDs)
	assert.True(t, cfg.Admin.IsAdmin(7))
	assert.False(t, cfg.Admin.IsAdmin(2))
	assert.Equal(t, "postgres://app:@db:5432/lifestyle?sslmode=disable", cfg.Database.GetURL())
	assert.Equal(t, 24*time.Hour, cfg.JWT.TokenTTL())
}

func TestLoad_BadAdminIDs(t *testing.T) {
	t.Setenv("ADMIN_PROFILE_IDS", "1,root")

	_, err := Load()
	assert.Error(t, err)
}
