package database

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"avoqado-web/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetries(t *testing.T, retries int) {
	t.Helper()

	originalRetries, originalInterval := maxRetries, retryInterval
	maxRetries = retries
	retryInterval = 10 * time.Millisecond
	t.Cleanup(func() {
		maxRetries = originalRetries
		retryInterval = originalInterval
	})
}

func writeSeed(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestNewMigrationRunner(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db, true)

	assert.Equal(t, db, runner.db)
	assert.Equal(t, migrationsPath, runner.migrationsPath)
	assert.Equal(t, seedsPath, runner.seedsPath)
	assert.True(t, runner.seed)
}

func TestWaitForDatabase(t *testing.T) {
	t.Run("ready after a failed ping", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()
		fastRetries(t, 3)

		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
		mock.ExpectPing()

		assert.NoError(t, NewMigrationRunner(db, false).WaitForDatabase())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()
		fastRetries(t, 2)

		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		err = NewMigrationRunner(db, false).WaitForDatabase()
		assert.ErrorContains(t, err, "database not ready after 2 attempts")
	})
}

func TestRunMigrations_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db, false)
	runner.migrationsPath = filepath.Join(t.TempDir(), "missing")

	assert.NoError(t, runner.RunMigrations())

	_, _, err = runner.GetMigrationStatus()
	assert.ErrorIs(t, err, errMigrationsNotFound)
}

func TestLoadSeeds(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		runner := NewMigrationRunner(db, false)
		runner.seedsPath = t.TempDir()
		writeSeed(t, runner.seedsPath, "001_leads.sql", "INSERT INTO leads VALUES (1);")

		assert.NoError(t, runner.LoadSeeds())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("directory not found", func(t *testing.T) {
		db, _, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		runner := NewMigrationRunner(db, true)
		runner.seedsPath = filepath.Join(t.TempDir(), "missing")

		assert.NoError(t, runner.LoadSeeds())
	})

	t.Run("failing file is skipped", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		runner := NewMigrationRunner(db, true)
		runner.seedsPath = t.TempDir()
		writeSeed(t, runner.seedsPath, "001_bad.sql", "INSERT INTO nonexistent_table VALUES (1);")
		writeSeed(t, runner.seedsPath, "002_leads.sql", "INSERT INTO leads (email) VALUES ('demo@avoqado.io');")

		mock.ExpectExec("INSERT INTO nonexistent_table").WillReturnError(errors.New("relation does not exist"))
		mock.ExpectExec("INSERT INTO leads").WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, runner.LoadSeeds())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unreadable file", func(t *testing.T) {
		db, _, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		runner := NewMigrationRunner(db, true)
		runner.seedsPath = t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(runner.seedsPath, "001_dir.sql"), 0o755))

		assert.ErrorContains(t, runner.LoadSeeds(), "failed to read seed file")
	})
}

func TestRunMigrationsIfEnabled(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()

		assert.NoError(t, RunMigrationsIfEnabled(db, &config.DatabaseConfig{AutoMigrate: false}))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database not ready", func(t *testing.T) {
		db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
		require.NoError(t, err)
		defer db.Close()
		fastRetries(t, 2)

		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))

		err = RunMigrationsIfEnabled(db, &config.DatabaseConfig{AutoMigrate: true})
		assert.ErrorContains(t, err, "database readiness check failed")
	})
}

func TestOpenMigrationDB_RequiresPostgres(t *testing.T) {
	_, err := OpenMigrationDB(&config.DatabaseConfig{Driver: config.DriverSQLite})
	assert.ErrorContains(t, err, "require the postgres driver")
}
