package service

import (
	"context"
	"errors"

	"storerating/internal/app/apperr"
	"storerating/internal/app/auth"
	"storerating/internal/app/dto"
	"storerating/internal/app/rating"
	"storerating/internal/app/repository"
)

type UserService struct {
	stores  StoreRepository
	ratings RatingRepository
}

func NewUserService(stores StoreRepository, ratings RatingRepository) *UserService {
	return &UserService{stores: stores, ratings: ratings}
}

// ListStores returns every store with its ratings, average and the
// caller's own rating. Nothing is cached, so a rating submitted just
// before is always visible.
func (s *UserService) ListStores(ctx context.Context, id auth.Identity) ([]dto.UserStoreResponse, error) {
	stores, err := s.stores.ListStoresWithRatings(ctx)
	if err != nil {
		return nil, apperr.Internal("list stores", err)
	}

	out := make([]dto.UserStoreResponse, 0, len(stores))
	for i := range stores {
		st := &stores[i]
		entry := dto.UserStoreResponse{
			ID:            st.ID,
			Name:          st.Name,
			Address:       st.Address,
			AverageRating: averageOf(st),
			Ratings:       storeRatings(st.Ratings),
		}
		for _, r := range st.Ratings {
			if r.UserID == id.UserID {
				v := r.Value
				entry.YourRating = &v
				break
			}
		}
		out = append(out, entry)
	}
	return out, nil
}

// SubmitRating creates or replaces the caller's rating for a store.
func (s *UserService) SubmitRating(ctx context.Context, id auth.Identity, req dto.SubmitRatingRequest) (dto.RatingResponse, error) {
	storeID, ok := parseID(req.StoreID.String())
	if !ok || req.Value == "" {
		return dto.RatingResponse{}, apperr.Validation("Store ID and numeric rating value are required")
	}
	raw, err := req.Value.Float64()
	if err != nil {
		return dto.RatingResponse{}, apperr.Validation("Store ID and numeric rating value are required")
	}
	value, err := rating.ValidateValue(raw)
	if err != nil {
		return dto.RatingResponse{}, err
	}

	_, err = s.stores.GetStoreByID(ctx, storeID)
	if errors.Is(err, repository.ErrNotFound) {
		return dto.RatingResponse{}, apperr.Validation("Store not found")
	}
	if err != nil {
		return dto.RatingResponse{}, apperr.Internal("submit rating", err)
	}

	stored, err := s.ratings.UpsertRating(ctx, id.UserID, storeID, value)
	if err != nil {
		return dto.RatingResponse{}, apperr.Internal("submit rating", err)
	}
	return ratingResponse(stored), nil
}
