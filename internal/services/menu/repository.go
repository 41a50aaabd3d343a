package menu

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"kapehan/internal/database"
	"kapehan/internal/models"
)

// ErrNotFound is returned when no menu item matches the requested id.
var ErrNotFound = errors.New("menu item not found")

// Repository is the storage contract the menu service depends on.
type Repository interface {
	List(ctx context.Context) ([]models.MenuItem, error)
	Get(ctx context.Context, id string) (models.MenuItem, error)
	ListByCategory(ctx context.Context, category string) ([]models.MenuItem, error)
	Insert(ctx context.Context, item models.MenuItem) error
}

// PostgresRepository stores menu items in the menu_items table.
type PostgresRepository struct {
	db *database.DB
}

// NewPostgresRepository creates a menu repository backed by PostgreSQL.
func NewPostgresRepository(db *database.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns every menu item ordered by category then name.
func (r *PostgresRepository) List(ctx context.Context) ([]models.MenuItem, error) {
	rows, err := r.db.Query(ctx, database.ListMenuItemsSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	return scanMenuItems(rows)
}

// Get returns the menu item whose numeric id or item_id matches.
func (r *PostgresRepository) Get(ctx context.Context, id string) (models.MenuItem, error) {
	row := r.db.QueryRow(ctx, database.GetMenuItemSQL, id)

	item, err := scanMenuItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.MenuItem{}, ErrNotFound
		}
		return models.MenuItem{}, fmt.Errorf("failed to query menu item: %w", err)
	}
	return item, nil
}

// ListByCategory returns items in the category, matched case-insensitively.
func (r *PostgresRepository) ListByCategory(ctx context.Context, category string) ([]models.MenuItem, error) {
	rows, err := r.db.Query(ctx, database.ListMenuItemsByCategorySQL, category)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu items by category: %w", err)
	}
	defer rows.Close()

	return scanMenuItems(rows)
}

// Insert adds a menu item; items with an already-seeded item_id are skipped.
func (r *PostgresRepository) Insert(ctx context.Context, item models.MenuItem) error {
	return r.db.Exec(ctx, database.InsertMenuItemSQL,
		item.ItemID, item.Name, item.Category, item.Description,
		item.OriginalPrice, item.DiscountedPrice, item.PrepTime, item.Status, item.Picture)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMenuItem(row rowScanner) (models.MenuItem, error) {
	var (
		item        models.MenuItem
		itemID      *string
		description *string
		prepTime    *string
		status      *string
		picture     *string
	)

	err := row.Scan(&item.ID, &itemID, &item.Name, &item.Category, &description,
		&item.OriginalPrice, &item.DiscountedPrice, &prepTime, &status, &picture)
	if err != nil {
		return models.MenuItem{}, err
	}

	if itemID != nil {
		item.ItemID = *itemID
	}
	if description != nil {
		item.Description = *description
	}
	if prepTime != nil {
		item.PrepTime = *prepTime
	}
	if status != nil {
		item.Status = *status
	}
	if picture != nil {
		item.Picture = *picture
	}

	return item, nil
}

func scanMenuItems(rows pgx.Rows) ([]models.MenuItem, error) {
	items := []models.MenuItem{}
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
