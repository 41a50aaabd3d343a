package menu

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"kapehan/internal/logger"
	"kapehan/internal/models"
)

type fakeRepository struct {
	items []models.MenuItem
}

func (f *fakeRepository) List(ctx context.Context) ([]models.MenuItem, error) {
	return f.items, nil
}

func (f *fakeRepository) Get(ctx context.Context, id string) (models.MenuItem, error) {
	for _, item := range f.items {
		if strconv.Itoa(item.ID) == id || item.ItemID == id {
			return item, nil
		}
	}
	return models.MenuItem{}, ErrNotFound
}

func (f *fakeRepository) ListByCategory(ctx context.Context, category string) ([]models.MenuItem, error) {
	var matched []models.MenuItem
	for _, item := range f.items {
		if strings.EqualFold(item.Category, category) {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

func (f *fakeRepository) Insert(ctx context.Context, item models.MenuItem) error {
	f.items = append(f.items, item)
	return nil
}

func newTestHandler(items []models.MenuItem) *Handler {
	log := logger.New("menu-test")
	return NewHandler(NewService(&fakeRepository{items: items}, log), log)
}

func TestListItems(t *testing.T) {
	h := newTestHandler([]models.MenuItem{
		{ID: 1, ItemID: "ESP-001", Name: "Espresso", Category: "Espresso", DiscountedPrice: 120},
		{ID: 2, ItemID: "LAT-001", Name: "Cafe Latte", Category: "Lattes", DiscountedPrice: 150},
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var items []models.MenuItem
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&items))
	require.Len(t, items, 2)
	require.Equal(t, "Espresso", items[0].Name)
}

func TestGetItem(t *testing.T) {
	h := newTestHandler([]models.MenuItem{
		{ID: 1, ItemID: "ESP-001", Name: "Espresso", Category: "Espresso", DiscountedPrice: 120},
	})

	t.Run("by numeric id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/1", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("by item id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ESP-001", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/999", nil))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "Product not found")
	})
}

func TestListByCategory(t *testing.T) {
	h := newTestHandler([]models.MenuItem{
		{ID: 1, Name: "Espresso", Category: "Espresso", DiscountedPrice: 120},
		{ID: 2, Name: "Cafe Latte", Category: "Lattes", DiscountedPrice: 150},
	})

	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/category/lattes", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var items []models.MenuItem
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&items))
	require.Len(t, items, 1)
	require.Equal(t, "Cafe Latte", items[0].Name)
}

func TestSeed(t *testing.T) {
	repo := &fakeRepository{}
	require.NoError(t, Seed(context.Background(), repo))
	require.NotEmpty(t, repo.items)

	// Seeded markdowns must satisfy the price invariant.
	for _, item := range repo.items {
		require.GreaterOrEqual(t, item.DiscountedPrice, 0.0)
		if item.OriginalPrice != nil {
			require.Greater(t, *item.OriginalPrice, item.DiscountedPrice)
		}
	}
}
