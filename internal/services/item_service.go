package services

import (
	"context"

	"billing-backend/internal/models"
)

type ItemService struct {
	Repo ItemStore
}

func NewItemService(repo ItemStore) *ItemService {
	return &ItemService{Repo: repo}
}

func (s *ItemService) CreateItem(ctx context.Context, req *models.CreateItemRequest) (*models.Item, error) {
	item := &models.Item{
		Name:             req.Name,
		Price:            req.Price,
		SGST:             req.SGST,
		CGST:             req.CGST,
		PriceIncludesTax: req.PriceIncludesTax,
	}
	if err := s.Repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ItemService) GetItem(ctx context.Context, id int) (*models.Item, error) {
	return s.Repo.Get(ctx, id)
}

func (s *ItemService) ListItems(ctx context.Context) ([]*models.Item, error) {
	return s.Repo.List(ctx)
}

// UpdateItem edits the catalog entry. Lines on existing invoices keep
// their snapshotted price and rates.
func (s *ItemService) UpdateItem(ctx context.Context, id int, req *models.UpdateItemRequest) (*models.Item, error) {
	item, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Name = req.Name
	item.Price = req.Price
	item.SGST = req.SGST
	item.CGST = req.CGST
	item.PriceIncludesTax = req.PriceIncludesTax

	if err := s.Repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ItemService) DeleteItem(ctx context.Context, id int) error {
	return s.Repo.Delete(ctx, id)
}
