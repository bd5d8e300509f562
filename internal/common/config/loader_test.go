package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile_DefaultsApplied(t *testing.T) {
	path := writeTempConfig(t, `
database:
  postgres:
    host: localhost
    database: renovation
    user: renovation
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "decision-core", cfg.App.Name)
	assert.Equal(t, 0.10, cfg.Estimate.VATRate)
	assert.Equal(t, 0.05, cfg.Estimate.ContingencyRate)
	assert.Equal(t, 2024, cfg.Analysis.ReferenceYear)
	assert.Equal(t, "analysis-audit", cfg.Audit.Index)
	assert.Equal(t, 25, cfg.Database.Postgres.MaxConnections)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadFromFile_ExplicitValuesWin(t *testing.T) {
	path := writeTempConfig(t, `
app:
  name: pricing-lab
database:
  postgres:
    host: db.internal
    database: renovation
    user: svc
estimate:
  vat_rate: 0.2
analysis:
  reference_year: 2025
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "pricing-lab", cfg.App.Name)
	assert.Equal(t, 0.2, cfg.Estimate.VATRate)
	assert.Equal(t, 2025, cfg.Analysis.ReferenceYear)
}

func TestLoadFromFile_MissingRequiredFields(t *testing.T) {
	path := writeTempConfig(t, `
database:
  postgres:
    host: localhost
`)

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.postgres.database")
}

func TestLoadFromFile_MirrorRequiresAddresses(t *testing.T) {
	path := writeTempConfig(t, `
database:
  postgres:
    host: localhost
    database: renovation
    user: renovation
audit:
  mirror_to_es: true
`)

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "elasticsearch")
}

func TestLoadFromFile_RateBounds(t *testing.T) {
	path := writeTempConfig(t, `
database:
  postgres:
    host: localhost
    database: renovation
    user: renovation
estimate:
  vat_rate: 1.5
`)

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vat_rate")
}

func TestGetDSN(t *testing.T) {
	cfg := PostgresConfig{
		Host: "localhost", Port: 5432, User: "svc",
		Password: "secret", Database: "renovation", SSLMode: "disable",
	}

	dsn := cfg.GetDSN()
	assert.Contains(t, dsn, "host=localhost")
	assert.Contains(t, dsn, "dbname=renovation")
	assert.Contains(t, dsn, "sslmode=disable")
}
