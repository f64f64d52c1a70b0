package service

import (
	"storerating/internal/app/ds"
	"storerating/internal/app/dto"
	"storerating/internal/app/rating"
)

const unknownUserName = "Unknown"

func userResponse(u *ds.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Address:   u.Address,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func averageOf(s *ds.Store) *string {
	return rating.Format(rating.Average(s.RatingValues()))
}

// storeResponse summarizes a store from its loaded ratings. ImageURL is
// left empty; only callers with storage access fill it in.
func storeResponse(s *ds.Store) dto.StoreResponse {
	return dto.StoreResponse{
		ID:            s.ID,
		Name:          s.Name,
		Email:         s.Email,
		Address:       s.Address,
		OwnerID:       s.OwnerID,
		AverageRating: averageOf(s),
		TotalRatings:  len(s.Ratings),
	}
}

func storeRatings(ratings []ds.Rating) []dto.StoreRatingResponse {
	out := make([]dto.StoreRatingResponse, 0, len(ratings))
	for _, r := range ratings {
		name := unknownUserName
		if r.User != nil {
			name = r.User.Name
		}
		out = append(out, dto.StoreRatingResponse{
			ID:       r.ID,
			Value:    r.Value,
			UserID:   r.UserID,
			UserName: name,
		})
	}
	return out
}

func ratingResponse(r *ds.Rating) dto.RatingResponse {
	return dto.RatingResponse{
		ID:        r.ID,
		Value:     r.Value,
		UserID:    r.UserID,
		StoreID:   r.StoreID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
