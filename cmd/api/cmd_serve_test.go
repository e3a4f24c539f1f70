package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webapi/internal/config"
)

func TestOpenStore_SQLiteRunsInitializerOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.db")
	cfg := config.Config{DBDriver: config.DriverSQLite, DBPath: path}
	log, hook := test.NewNullLogger()

	gdb, err := openStore(cfg, log)
	require.NoError(t, err)
	require.NoError(t, closeStore(gdb))
	assert.Equal(t, "store created", hook.LastEntry().Message)

	_, err = os.Stat(path)
	require.NoError(t, err)

	gdb, err = openStore(cfg, log)
	require.NoError(t, err)
	require.NoError(t, closeStore(gdb))
	assert.Equal(t, "store already exists", hook.LastEntry().Message)
}
