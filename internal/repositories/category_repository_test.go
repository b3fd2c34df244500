package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/web-project/backend/internal/models"
)

func TestCreateCategoryThenGet(t *testing.T) {
	repo := NewJSONCategoryRepository(newTestStore(t))

	category, err := repo.CreateCategory(&models.CreateCategoryRequest{Name: "go", Description: "golang"})
	require.NoError(t, err)
	assert.Equal(t, 1, category.ID)

	got, err := repo.GetCategoryByID(category.ID)
	require.NoError(t, err)
	assert.Equal(t, "go", got.Name)
	assert.Equal(t, "golang", got.Description)
}

func TestCategoryIDsAreMonotonic(t *testing.T) {
	repo := NewJSONCategoryRepository(newTestStore(t))

	first, err := repo.CreateCategory(&models.CreateCategoryRequest{Name: "a"})
	require.NoError(t, err)
	require.NoError(t, repo.DeleteCategory(first.ID))

	second, err := repo.CreateCategory(&models.CreateCategoryRequest{Name: "b"})
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)
}

func TestCategoryNotFound(t *testing.T) {
	repo := NewJSONCategoryRepository(newTestStore(t))

	_, err := repo.GetCategoryByID(42)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.DeleteCategory(42), ErrNotFound)
}
