package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.True(t, strings.HasSuffix(cfg.DataDir, ".satchel"))
	assert.Equal(t, "addressbook.json", cfg.AddressBookFile)
	assert.Equal(t, "notes.json", cfg.NotebookFile)
	assert.Equal(t, 7, cfg.DefaultBirthdayDays)
	assert.Equal(t, "skip", cfg.OnInvalidRecord)
	assert.True(t, cfg.AuditLog)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = ""
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.NotebookFile = ""
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.DefaultBirthdayDays = -1
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.OnInvalidRecord = "panic"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "on_invalid_record")

	cfg = DefaultConfig()
	cfg.OnInvalidRecord = "abort"
	assert.NoError(t, cfg.Validate())
}
