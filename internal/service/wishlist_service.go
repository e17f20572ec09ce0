package service

import (
	"context"
	"time"

	"github.com/andikahilmy/marketplace-service/internal/domain"
	"github.com/andikahilmy/marketplace-service/internal/dto"
	"github.com/andikahilmy/marketplace-service/internal/repository"
	"github.com/andikahilmy/marketplace-service/pkg/errs"
)

type WishlistServiceImpl struct {
	repo        repository.WishlistRepository
	productRepo repository.ProductRepository
}

func CreateWishlistService(repo repository.WishlistRepository, productRepo repository.ProductRepository) WishlistService {
	return &WishlistServiceImpl{repo: repo, productRepo: productRepo}
}

// HandleAction applies a toggle, add, or remove. Add on an existing
// member and remove on an absent one are no-ops reported through
// Changed=false; both still succeed.
func (s *WishlistServiceImpl) HandleAction(ctx context.Context, req dto.WishlistRequest) (responsePayload dto.WishlistActionResponse, err error) {
	responsePayload.ProductID = req.ProductID

	found, err := s.repo.IsWishlisted(ctx, req.UserID, req.ProductID)
	if err != nil {
		return
	}

	switch req.Action {
	case dto.WishlistActionToggle:
		if found {
			return s.remove(ctx, req, true)
		}
		return s.add(ctx, req, true)
	case dto.WishlistActionAdd:
		return s.add(ctx, req, !found)
	case dto.WishlistActionRemove:
		return s.remove(ctx, req, found)
	default:
		return responsePayload, errs.ErrValidation
	}
}

func (s *WishlistServiceImpl) GetWishlist(ctx context.Context, userID string) (responsePayload dto.WishlistResponse, err error) {
	items, err := s.repo.GetWishlistItems(ctx, userID)
	if err != nil {
		return
	}

	responsePayload.ProductIDs = make([]string, 0, len(items))
	for _, item := range items {
		responsePayload.ProductIDs = append(responsePayload.ProductIDs, item.ProductID)
	}

	return responsePayload, nil
}

func (s *WishlistServiceImpl) add(ctx context.Context, req dto.WishlistRequest, changed bool) (dto.WishlistActionResponse, error) {
	resp := dto.WishlistActionResponse{
		ProductID: req.ProductID,
		Action:    dto.WishlistResultAdded,
		Changed:   changed,
	}

	if !changed {
		return resp, nil
	}

	// only existing products can be wishlisted
	if _, err := s.productRepo.GetProductByID(ctx, req.ProductID); err != nil {
		return resp, err
	}

	err := s.repo.AddWishlistItem(ctx, domain.WishlistItem{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		CreatedAt: time.Now().UnixMilli(),
	})
	if err != nil {
		return resp, err
	}

	return resp, nil
}

func (s *WishlistServiceImpl) remove(ctx context.Context, req dto.WishlistRequest, changed bool) (dto.WishlistActionResponse, error) {
	resp := dto.WishlistActionResponse{
		ProductID: req.ProductID,
		Action:    dto.WishlistResultRemoved,
		Changed:   changed,
	}

	if !changed {
		return resp, nil
	}

	if err := s.repo.DeleteWishlistItem(ctx, req.UserID, req.ProductID); err != nil {
		return resp, err
	}

	return resp, nil
}
