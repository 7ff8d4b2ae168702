package configs

import (
	"path/filepath"
	"testing"

	"github.com/hray3182/ordering-app/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "ordering.db", cfg.DBSource)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.False(t, cfg.SeedDemo)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9001")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_SOURCE", "host=localhost dbname=ordering")
	t.Setenv("SEED_DEMO", "true")

	cfg := LoadConfig()

	assert.Equal(t, "9001", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "host=localhost dbname=ordering", cfg.DBSource)
	assert.True(t, cfg.SeedDemo)
}

func TestConnectionDBRejectsUnknownDriver(t *testing.T) {
	err := ConnectionDB(&Config{DBDriver: "oracle"})
	assert.Error(t, err)
}

func TestSeedDemoIsIdempotent(t *testing.T) {
	cfg := &Config{
		DBDriver: "sqlite",
		DBSource: filepath.Join(t.TempDir(), "seed.db"),
	}
	require.NoError(t, ConnectionDB(cfg))
	require.NoError(t, SetupDatabase())

	require.NoError(t, SeedDemo())
	require.NoError(t, SeedDemo())

	var cats, items int64
	require.NoError(t, db.Model(&entity.Category{}).Count(&cats).Error)
	require.NoError(t, db.Model(&entity.MenuItem{}).Count(&items).Error)
	assert.EqualValues(t, 2, cats)
	assert.EqualValues(t, 3, items)
}
