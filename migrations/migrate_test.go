// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"io/fs"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// goose talks to the database itself; with no expectations every query fails.
	err = Migrate(db, DialectPostgres)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, DialectSQLite)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestMigrate_UnsupportedDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	assert.ErrorIs(t, Migrate(db, "mysql"), ErrUnsupportedDialect)
}

func TestEmbeddedMigrations_EveryDialectHasUsersTable(t *testing.T) {
	for dialect, dir := range dialectDirs {
		t.Run(dialect, func(t *testing.T) {
			files, err := fs.Glob(embedMigrations, dir+"/*.sql")
			require.NoError(t, err)
			require.NotEmpty(t, files)

			body, err := fs.ReadFile(embedMigrations, files[0])
			require.NoError(t, err)
			assert.Contains(t, string(body), "-- +goose Up")
			assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS users")
			assert.Contains(t, string(body), "email")
		})
	}
}
