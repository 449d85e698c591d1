package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finboard-dev/finboard/internal/config"
	"github.com/finboard-dev/finboard/internal/importlog"
)

const sampleStatement = `Date,Account,Type,Branch,Reference,Code,Description,Balance,Debit,Credit
2024/01/05,CHK-2201,POS,0012,R84720,00,"=""COFFEE SHOP""",1913.37,4.50,0
2024/01/10,CHK-2201,WEB,0012,R84801,00,"=""AMAZON MARKETPLACE PMTS""",1858.38,54.99,0
2024/01/12,CHK-2201,DEP,0012,R84850,00,"=""PAYROLL ACME CONSULTING""",4261.88,0,2500.00
2024/01/22,CHK-2201,MEMO,0012,R84900,00,"=""BALANCE FORWARD""",4245.93,0,0
`

func writeStatement(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "statement.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleStatement), 0o644))
	return path
}

func TestRunInit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir))

	for _, d := range []string{"statements", "logs"} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir())
	}

	cfg, err := config.Load(filepath.Join(dir, configFile))
	require.NoError(t, err)
	assert.Equal(t, config.BackendFile, cfg.Storage.Backend)

	_, err = os.Stat(filepath.Join(dir, "categories.json"))
	assert.NoError(t, err)
}

func TestRunImport(t *testing.T) {
	dataDir := t.TempDir()
	require.NoError(t, runInit(dataDir))
	stmt := writeStatement(t)

	outPath := filepath.Join(dataDir, "normalized.csv")
	require.NoError(t, runImport(dataDir, []string{stmt}, outPath))

	entries, err := importlog.Read(dataDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "statement.csv", entries[0].Source)
	assert.Equal(t, 3, entries[0].Transactions)
	assert.Equal(t, 1, entries[0].Skipped)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "COFFEE SHOP")
	assert.Contains(t, string(data), "PAYROLL ACME CONSULTING")
}

func TestRunImport_AppliesStoredCategories(t *testing.T) {
	dataDir := t.TempDir()
	require.NoError(t, runInit(dataDir))
	require.NoError(t, runCategorize(dataDir, "Amazon", "Shopping"))
	stmt := writeStatement(t)

	outPath := filepath.Join(dataDir, "normalized.csv")
	require.NoError(t, runImport(dataDir, []string{stmt}, outPath))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "AMAZON MARKETPLACE PMTS,54.99,,Shopping")
}

func TestRunCategorize_Persists(t *testing.T) {
	dataDir := t.TempDir()
	require.NoError(t, runInit(dataDir))

	require.NoError(t, runCategorize(dataDir, "COFFEE SHOP", "Dining"))

	store, closeStore, err := openStore(loadConfig(dataDir))
	require.NoError(t, err)
	defer closeStore()

	category, ok := store.Lookup("COFFEE SHOP")
	require.True(t, ok)
	assert.Equal(t, "Dining", category)
}

func TestLoadConfig_MissingFileFallsBack(t *testing.T) {
	dir := t.TempDir()
	cfg := loadConfig(dir)
	assert.Equal(t, config.BackendFile, cfg.Storage.Backend)
	assert.Equal(t, filepath.Join(dir, "categories.json"), cfg.Storage.MappingPath)
}

func TestOpenStore_UnknownBackend(t *testing.T) {
	cfg := config.Default(t.TempDir())
	cfg.Storage.Backend = "redis"
	_, _, err := openStore(cfg)
	assert.Error(t, err)
}

func TestOpenStore_SQLite(t *testing.T) {
	cfg := config.Default(t.TempDir())
	cfg.Storage.Backend = config.BackendSQLite

	store, closeStore, err := openStore(cfg)
	require.NoError(t, err)
	defer closeStore()

	store.Update("COFFEE SHOP", "Dining")

	reopened, closeReopened, err := openStore(cfg)
	require.NoError(t, err)
	defer closeReopened()

	category, ok := reopened.Lookup("COFFEE SHOP")
	require.True(t, ok)
	assert.Equal(t, "Dining", category)
}

func TestParseGranularity(t *testing.T) {
	for _, valid := range []string{"daily", "monthly", "yearly"} {
		_, err := parseGranularity(valid)
		assert.NoError(t, err, valid)
	}
	_, err := parseGranularity("weekly")
	assert.Error(t, err)
}

func TestParseDateFlag(t *testing.T) {
	d, err := parseDateFlag("2024-01-05")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, 5, d.Day())

	d, err = parseDateFlag("")
	require.NoError(t, err)
	assert.Nil(t, d)

	_, err = parseDateFlag("01/05/2024")
	assert.Error(t, err)
}
