package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/serenity")
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.True(t, cfg.IsDevelopment())
	require.False(t, cfg.S3Enabled())
	require.Equal(t, "admin@serenityplace.org", cfg.FirstAdminEmail)
}

func TestLoadRejectsShortSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/serenity")
	t.Setenv("JWT_SECRET", "short")

	_, err := Load()
	require.Error(t, err)
}
