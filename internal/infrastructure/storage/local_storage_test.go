package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vaulttube/internal/domain/dto"
)

func TestLocalWriteAndDelete(t *testing.T) {
	l := NewLocalStorage(filepath.Join(t.TempDir(), "uploads"))

	relPath, err := l.Write("thumbnail-1-2-medium.webp", []byte("payload"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/thumbnail-1-2-medium.webp", relPath)

	data, err := os.ReadFile(filepath.Join(l.BasePath, "thumbnail-1-2-medium.webp"))
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)

	require.NoError(t, l.Delete(relPath))
	_, err = os.Stat(filepath.Join(l.BasePath, "thumbnail-1-2-medium.webp"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalWriteVariants(t *testing.T) {
	l := NewLocalStorage(t.TempDir())

	artifacts := map[dto.VariantKey][]byte{
		{Size: "small", Format: "webp"}:  []byte("sw"),
		{Size: "small", Format: "avif"}:  []byte("sa"),
		{Size: "medium", Format: "webp"}: []byte("mw"),
		{Size: "medium", Format: "avif"}: []byte("ma"),
		{Size: "large", Format: "webp"}:  []byte("lw"),
		{Size: "large", Format: "avif"}:  []byte("la"),
	}

	set, err := l.WriteVariants("thumbnail-7-8", artifacts)
	require.NoError(t, err)

	assert.Equal(t, "/uploads/thumbnail-7-8-small.webp", set.Small.WebP)
	assert.Equal(t, "/uploads/thumbnail-7-8-small.avif", set.Small.Avif)
	assert.Equal(t, "/uploads/thumbnail-7-8-medium.webp", set.Medium.WebP)
	assert.Equal(t, "/uploads/thumbnail-7-8-medium.avif", set.Medium.Avif)
	assert.Equal(t, "/uploads/thumbnail-7-8-large.webp", set.Large.WebP)
	assert.Equal(t, "/uploads/thumbnail-7-8-large.avif", set.Large.Avif)
	assert.Equal(t, "/uploads/thumbnail-7-8-medium.webp", set.Primary())

	entries, err := os.ReadDir(l.BasePath)
	require.NoError(t, err)
	assert.Len(t, entries, 6)
}
