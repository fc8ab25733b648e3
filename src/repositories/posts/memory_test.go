package posts

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/Alan-oliveir/Instalike/src/models"
)

func TestMemoryInsertAssignsIDAndCreationTime(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	first, err := repo.Insert(ctx, "a.png", "", "")
	require.NoError(t, err)
	second, err := repo.Insert(ctx, "b.png", "legenda", "alt")
	require.NoError(t, err)

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, first.CreatedAt.IsZero())
	assert.Equal(t, "legenda", second.Descricao)
	assert.Equal(t, "alt", second.Alt)
}

func TestMemoryGetAllKeepsInsertionOrder(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	var ids []string
	for _, name := range []string{"a.png", "b.png", "c.png"} {
		post, err := repo.Insert(ctx, name, "", "")
		require.NoError(t, err)
		ids = append(ids, post.ID)
	}

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, post := range all {
		assert.Equal(t, ids[i], post.ID)
	}
}

func TestMemoryGetByID(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	inserted, err := repo.Insert(ctx, "a.png", "", "")
	require.NoError(t, err)

	found, err := repo.GetByID(ctx, inserted.ID)
	require.NoError(t, err)
	assert.Equal(t, inserted.ID, found.ID)

	_, err = repo.GetByID(ctx, "unknown")
	assert.True(t, errors.Is(err, m.ErrNotFound))
}

func TestMemoryUpdateDescriptionOverwrites(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	inserted, err := repo.Insert(ctx, "a.png", "antiga", "")
	require.NoError(t, err)

	updated, err := repo.UpdateDescription(ctx, inserted.ID, "nova")
	require.NoError(t, err)
	assert.Equal(t, "nova", updated.Descricao)
	assert.Equal(t, inserted.ImgURL, updated.ImgURL)

	found, err := repo.GetByID(ctx, inserted.ID)
	require.NoError(t, err)
	assert.Equal(t, "nova", found.Descricao)
}

func TestMemoryUpdateDescriptionUnknownID(t *testing.T) {
	repo := NewMemoryRepository()

	_, err := repo.UpdateDescription(context.Background(), "unknown", "nova")
	assert.True(t, errors.Is(err, m.ErrNotFound))
}

func TestMemorySearchMatchesDescricaoAndAlt(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	praia, err := repo.Insert(ctx, "a.png", "Dia de Praia com sol", "")
	require.NoError(t, err)
	montanha, err := repo.Insert(ctx, "b.png", "", "trilha na montanha")
	require.NoError(t, err)
	_, err = repo.Insert(ctx, "c.png", "cidade à noite", "")
	require.NoError(t, err)

	results, err := repo.Search(ctx, "PRAIA")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, praia.ID, results[0].ID)

	results, err = repo.Search(ctx, "Montanha")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, montanha.ID, results[0].ID)

	results, err = repo.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, results, 3)
}
