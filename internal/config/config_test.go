package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("DISPATCH_RESET_AFTER", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.StoreDriver)
	assert.Equal(t, "binary", cfg.StatusToggleMode)
	assert.Equal(t, "last", cfg.NoticeDefaultHearing)
	assert.Equal(t, 5*time.Second, cfg.DispatchResetAfter)
	assert.Equal(t, "Government of Telangana", cfg.OfficeGovernment)
	assert.Equal(t, 8, cfg.DBMaxConns)
	assert.Equal(t, 5*time.Second, cfg.DBTimeout)
	assert.Equal(t, "Labour Department", cfg.OfficeDepartment)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("STATUS_TOGGLE_MODE", "cycle")
	t.Setenv("NOTICE_DEFAULT_HEARING", "next")
	t.Setenv("DISPATCH_RESET_AFTER", "2s")
	t.Setenv("SEED_DEMO", "yes")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.StoreDriver)
	assert.Equal(t, "cycle", cfg.StatusToggleMode)
	assert.Equal(t, "next", cfg.NoticeDefaultHearing)
	assert.Equal(t, 2*time.Second, cfg.DispatchResetAfter)
	assert.True(t, cfg.SeedDemo)
	assert.Equal(t, 9090, cfg.Port)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Environment:          "development",
			StoreDriver:          "file",
			StatusToggleMode:     "binary",
			NoticeDefaultHearing: "last",
			Timezone:             "UTC",
			JWTSecret:            devJWTSecret,
		}
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := base()
		cfg.StoreDriver = "mongo"
		assert.Error(t, cfg.Validate())
	})

	t.Run("postgres needs url", func(t *testing.T) {
		cfg := base()
		cfg.StoreDriver = "postgres"
		assert.Error(t, cfg.Validate())
	})

	t.Run("bad toggle mode", func(t *testing.T) {
		cfg := base()
		cfg.StatusToggleMode = "random"
		assert.Error(t, cfg.Validate())
	})

	t.Run("production requires secrets", func(t *testing.T) {
		cfg := base()
		cfg.Environment = "production"
		assert.Error(t, cfg.Validate())

		cfg.JWTSecret = "a-real-secret"
		assert.Error(t, cfg.Validate())

		cfg.OfficerKey = "officer"
		assert.NoError(t, cfg.Validate())
	})
}
