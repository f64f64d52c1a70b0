package service

import (
	"context"
	"errors"

	"storerating/internal/app/apperr"
	"storerating/internal/app/auth"
	"storerating/internal/app/ds"
	"storerating/internal/app/dto"
	"storerating/internal/app/repository"
	"storerating/internal/app/storage"

	"github.com/sirupsen/logrus"
)

const createStoreAction = "CREATE_STORE"

type OwnerService struct {
	stores StoreRepository
	images ImageStorage
}

// NewOwnerService builds the service. images may be nil, which disables
// store image upload.
func NewOwnerService(stores StoreRepository, images ImageStorage) *OwnerService {
	return &OwnerService{stores: stores, images: images}
}

func noStore() error {
	return apperr.NotFound("No store found for this owner").With("action", createStoreAction)
}

func (s *OwnerService) ownStore(ctx context.Context, id auth.Identity) (*ds.Store, error) {
	store, err := s.stores.GetStoreByOwner(ctx, id.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, noStore()
	}
	if err != nil {
		return nil, apperr.Internal("load owner store", err)
	}
	return store, nil
}

func (s *OwnerService) storeResponse(ctx context.Context, store *ds.Store) dto.StoreResponse {
	resp := storeResponse(store)
	if s.images == nil || store.ImageURL == nil {
		return resp
	}
	url, err := s.images.GetFileURL(ctx, *store.ImageURL)
	if err != nil {
		logrus.WithError(err).WithField("store_id", store.ID).Warn("presign store image")
		return resp
	}
	resp.ImageURL = &url
	return resp
}

// Dashboard lists the owner's store and its ratings, newest first.
func (s *OwnerService) Dashboard(ctx context.Context, id auth.Identity) (dto.OwnerDashboardResponse, error) {
	store, err := s.ownStore(ctx, id)
	if err != nil {
		return dto.OwnerDashboardResponse{}, err
	}

	ratings := make([]dto.OwnerRatingResponse, 0, len(store.Ratings))
	for _, r := range store.Ratings {
		author := dto.RatingAuthor{ID: r.UserID, Name: unknownUserName}
		if r.User != nil {
			author.Name = r.User.Name
			author.Email = r.User.Email
		}
		ratings = append(ratings, dto.OwnerRatingResponse{ID: r.ID, Value: r.Value, User: author})
	}

	return dto.OwnerDashboardResponse{
		Store:       s.storeResponse(ctx, store),
		RatingsData: ratings,
	}, nil
}

func (s *OwnerService) MyStore(ctx context.Context, id auth.Identity) (dto.MyStoreResponse, error) {
	store, err := s.ownStore(ctx, id)
	if err != nil {
		return dto.MyStoreResponse{}, err
	}
	return dto.MyStoreResponse{
		StoreResponse: s.storeResponse(ctx, store),
		Ratings:       storeRatings(store.Ratings),
	}, nil
}

// CreateStoreForSelf creates the caller's store. The owner is always the
// caller; the request cannot name another owner.
func (s *OwnerService) CreateStoreForSelf(ctx context.Context, id auth.Identity, req dto.CreateOwnStoreRequest) (dto.StoreResponse, error) {
	if anyBlank(req.Name, req.Email, req.Address) {
		return dto.StoreResponse{}, apperr.Validation("Store name, email, and address are required")
	}

	store := &ds.Store{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		OwnerID: id.UserID,
	}
	err := createStore(ctx, s.stores, store, storeConflicts{
		owner: apperr.Validation("You already have a store"),
		email: apperr.Validation("Email is already taken by another store"),
	})
	if err != nil {
		return dto.StoreResponse{}, err
	}

	logrus.WithFields(logrus.Fields{"store_id": store.ID, "owner_id": store.OwnerID}).Info("store created by owner")
	return storeResponse(store), nil
}

// UploadStoreImage stores a new image for the caller's store and removes
// the previous one.
func (s *OwnerService) UploadStoreImage(ctx context.Context, id auth.Identity, filename string, data []byte) (dto.StoreImageResponse, error) {
	if s.images == nil {
		return dto.StoreImageResponse{}, apperr.Unavailable("Image storage is not configured")
	}
	if len(data) == 0 {
		return dto.StoreImageResponse{}, apperr.Validation("Image file is required")
	}
	if _, err := storage.ImageContentType(filename); err != nil {
		return dto.StoreImageResponse{}, apperr.Validation("Only jpg, jpeg, png, gif and webp images are allowed")
	}

	store, err := s.ownStore(ctx, id)
	if err != nil {
		return dto.StoreImageResponse{}, err
	}

	name, err := s.images.UploadFile(ctx, data, filename)
	if err != nil {
		return dto.StoreImageResponse{}, apperr.Internal("upload store image", err)
	}
	if err := s.stores.UpdateStoreImage(ctx, store.ID, &name); err != nil {
		if delErr := s.images.DeleteFile(ctx, name); delErr != nil {
			logrus.WithError(delErr).Warn("remove orphaned store image")
		}
		return dto.StoreImageResponse{}, apperr.Internal("upload store image", err)
	}
	if store.ImageURL != nil && *store.ImageURL != name {
		if err := s.images.DeleteFile(ctx, *store.ImageURL); err != nil {
			logrus.WithError(err).WithField("object", *store.ImageURL).Warn("remove previous store image")
		}
	}

	url, err := s.images.GetFileURL(ctx, name)
	if err != nil {
		return dto.StoreImageResponse{}, apperr.Internal("presign store image", err)
	}
	return dto.StoreImageResponse{Message: "Store image uploaded successfully", ImageURL: url}, nil
}
