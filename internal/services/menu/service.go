package menu

import (
	"context"
	"fmt"

	"kapehan/internal/logger"
	"kapehan/internal/models"
)

// Service provides menu item lookups for the items API.
type Service struct {
	repo   Repository
	logger *logger.Logger
}

// NewService creates a new menu service
func NewService(repo Repository, log *logger.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: log,
	}
}

// ListItems returns the full menu.
func (s *Service) ListItems(ctx context.Context, requestID string) ([]models.MenuItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("db_query_failed", requestID, "Failed to list menu items", err)
		return nil, err
	}
	return items, nil
}

// GetItem returns a single menu item by numeric id or item_id.
func (s *Service) GetItem(ctx context.Context, id, requestID string) (models.MenuItem, error) {
	item, err := s.repo.Get(ctx, id)
	if err != nil {
		if err != ErrNotFound {
			s.logger.Error("db_query_failed", requestID, fmt.Sprintf("Failed to get menu item %s", id), err)
		}
		return models.MenuItem{}, err
	}
	return item, nil
}

// ListItemsByCategory returns the menu items in one category.
func (s *Service) ListItemsByCategory(ctx context.Context, category, requestID string) ([]models.MenuItem, error) {
	items, err := s.repo.ListByCategory(ctx, category)
	if err != nil {
		s.logger.Error("db_query_failed", requestID, fmt.Sprintf("Failed to list menu items for category %s", category), err)
		return nil, err
	}
	return items, nil
}
