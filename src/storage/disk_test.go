package storage

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/Alan-oliveir/Instalike/src/models"
)

func newDiskStore(t *testing.T) *DiskStore {
	t.Helper()
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestDiskStorePutAndOpen(t *testing.T) {
	store := newDiskStore(t)
	ctx := context.Background()
	data := []byte("fake image bytes")

	name, err := store.Put(ctx, "Praia.PNG", data)
	require.NoError(t, err)
	assert.NotEqual(t, "Praia.PNG", name)
	assert.Regexp(t, `\.png$`, name)

	reader, err := store.Open(ctx, name)
	require.NoError(t, err)
	defer reader.Close()

	stored, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, data, stored)
}

func TestDiskStoreGeneratesDistinctNames(t *testing.T) {
	store := newDiskStore(t)
	ctx := context.Background()

	first, err := store.Put(ctx, "foto.jpg", []byte("first"))
	require.NoError(t, err)
	second, err := store.Put(ctx, "foto.jpg", []byte("second"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	reader, err := store.Open(ctx, first)
	require.NoError(t, err)
	defer reader.Close()

	content, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), content)
}

func TestDiskStoreOpenMissing(t *testing.T) {
	store := newDiskStore(t)

	_, err := store.Open(context.Background(), "does-not-exist.png")
	assert.True(t, errors.Is(err, m.ErrNotFound))
}

func TestDiskStoreRemove(t *testing.T) {
	store := newDiskStore(t)
	ctx := context.Background()

	name, err := store.Put(ctx, "foto.png", []byte("bytes"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(ctx, name))

	_, err = store.Open(ctx, name)
	assert.True(t, errors.Is(err, m.ErrNotFound))

	err = store.Remove(ctx, name)
	assert.True(t, errors.Is(err, m.ErrNotFound))
}
