package store

import (
	"os"
	"path/filepath"
	"testing"

	"finbot/core/internal/logging"
	"finbot/core/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadCategoriesFromFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "categories.yaml", `categories:
  - id: groceries
    name: Groceries
    keywords:
      - rewe
      - edeka
  - id: other
    name: Other
`)

	store := NewCatalogStore(path, "", logging.NewMockLogger())
	catalog, err := store.LoadCategories()

	require.NoError(t, err)
	require.Len(t, catalog, 2)
	assert.Equal(t, "groceries", catalog[0].ID)
	assert.Equal(t, []string{"rewe", "edeka"}, catalog[0].Keywords)
	assert.Equal(t, "other", catalog[1].ID)
}

func TestLoadCategoriesMissingFile(t *testing.T) {
	store := NewCatalogStore(filepath.Join(t.TempDir(), "nope.yaml"), "", logging.NewMockLogger())
	catalog, err := store.LoadCategories()

	require.NoError(t, err)
	assert.Equal(t, DefaultCatalog(), catalog, "missing file falls back to the builtin catalog")
}

func TestLoadCategoriesEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "categories.yaml", "categories: []\n")

	store := NewCatalogStore(path, "", logging.NewMockLogger())
	catalog, err := store.LoadCategories()

	require.NoError(t, err)
	assert.Equal(t, DefaultCatalog(), catalog)
}

func TestLoadCategoriesInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "categories.yaml", "categories: [broken\n")

	store := NewCatalogStore(path, "", logging.NewMockLogger())
	_, err := store.LoadCategories()

	require.Error(t, err)
}

func TestLoadSubscriptionBrandsFromFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "subscriptions.yaml", `subscriptions:
  - keyword: audible
    name: Audible
    icon: "🎧"
`)

	store := NewCatalogStore("", path, logging.NewMockLogger())
	brands, err := store.LoadSubscriptionBrands()

	require.NoError(t, err)
	require.Len(t, brands, 1)
	assert.Equal(t, models.SubscriptionBrand{Keyword: "audible", Name: "Audible", Icon: "🎧"}, brands[0])
}

func TestLoadSubscriptionBrandsMissingFile(t *testing.T) {
	store := NewCatalogStore("", filepath.Join(t.TempDir(), "nope.yaml"), logging.NewMockLogger())
	brands, err := store.LoadSubscriptionBrands()

	require.NoError(t, err)
	assert.Equal(t, DefaultSubscriptionBrands(), brands)
}

func TestDefaultCatalogShape(t *testing.T) {
	catalog := DefaultCatalog()

	ids := make(map[string]bool, len(catalog))
	for _, category := range catalog {
		assert.NotEmpty(t, category.ID)
		assert.NotEmpty(t, category.Name)
		assert.False(t, ids[category.ID], "duplicate category id %q", category.ID)
		ids[category.ID] = true
	}

	assert.True(t, ids[models.DefaultCategoryID], "the default category must exist in the catalog")

	// "other" is the fallback and must never win a keyword match.
	last := catalog[len(catalog)-1]
	assert.Equal(t, models.CategoryOther, last.ID)
	assert.Empty(t, last.Keywords)
}
