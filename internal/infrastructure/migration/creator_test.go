package migration

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMigration(t *testing.T) {
	dir := t.TempDir()

	mf, err := CreateMigration(dir, "Add Promotions Table")
	require.NoError(t, err)

	assert.Len(t, mf.Version, 14)
	assert.Contains(t, mf.UpPath, "_add_promotions_table.up.sql")
	assert.Contains(t, mf.DownPath, "_add_promotions_table.down.sql")

	up, err := os.ReadFile(mf.UpPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(up), "-- Migration: Add Promotions Table"))

	down, err := os.ReadFile(mf.DownPath)
	require.NoError(t, err)
	assert.Contains(t, string(down), "(rollback)")
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"add products table", "add_products_table"},
		{"Add-Products--Table", "add_products_table"},
		{"  trailing  ", "trailing"},
		{"MixedCase123", "mixedcase123"},
		{"dots.and/slashes", "dotsandslashes"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeName(tt.in), "input %q", tt.in)
	}
}

func TestListMigrations(t *testing.T) {
	t.Run("missing directory yields an empty list", func(t *testing.T) {
		list, err := ListMigrations("does/not/exist")
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("lists pairs by their up file", func(t *testing.T) {
		dir := t.TempDir()
		_, err := CreateMigration(dir, "first")
		require.NoError(t, err)

		list, err := ListMigrations(dir)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.True(t, strings.HasSuffix(list[0], "_first"))
	})
}
