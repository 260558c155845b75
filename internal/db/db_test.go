package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
)

func TestConnConfigInjectsCredential(t *testing.T) {
	cfg := &config.Config{
		StoreURL:        "postgres://postgres@db.abcd.supabase.co:5432/postgres?sslmode=disable",
		StoreCredential: "service-role-secret",
	}

	connCfg, err := ConnConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, "db.abcd.supabase.co", connCfg.Host)
	assert.Equal(t, uint16(5432), connCfg.Port)
	assert.Equal(t, "postgres", connCfg.User)
	assert.Equal(t, "postgres", connCfg.Database)
	assert.Equal(t, "service-role-secret", connCfg.Password)
}

func TestConnConfigRejectsBadURL(t *testing.T) {
	_, err := ConnConfig(&config.Config{StoreURL: "postgres://host:notaport/db", StoreCredential: "x"})
	assert.Error(t, err)
}
