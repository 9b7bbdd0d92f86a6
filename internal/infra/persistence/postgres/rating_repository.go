package postgres

import (
	"context"

	"mealmarket/internal/domain/entity"
	domainerrors "mealmarket/internal/domain/errors"
	"mealmarket/internal/domain/repository"
	"mealmarket/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ratingRepository implements the repository.RatingRepository interface.
type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository is the constructor for ratingRepository.
func NewRatingRepository(db *gorm.DB) repository.RatingRepository {
	return &ratingRepository{
		db: db,
	}
}

// CreateRating persists a rating. The (offer_key, buyer_id) unique index rejects a second one.
func (repo *ratingRepository) CreateRating(ctx context.Context, rating *entity.Rating) error {
	if rating.ID == uuid.Nil {
		rating.ID = uuid.New()
	}

	ratingM := &model.RatingModel{
		ID:        rating.ID,
		SellerID:  rating.SellerID,
		OfferKey:  rating.OfferKey,
		BuyerID:   rating.BuyerID,
		Rating:    rating.Score,
		Comment:   rating.Comment,
		CreatedAt: rating.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(ratingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateRating
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create rating")
	}

	rating.CreatedAt = ratingM.CreatedAt

	return nil
}

// ExistsForOfferAndBuyer reports whether the buyer already rated the offer.
func (repo *ratingRepository) ExistsForOfferAndBuyer(ctx context.Context, offerKey, buyerID string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Where("offer_key = ? AND buyer_id = ?", offerKey, buyerID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check existing rating")
	}

	return count > 0, nil
}

type ratingBucket struct {
	Rating int
	Count  int64
}

// SummarizeSeller computes average, total and per-score distribution for a seller.
func (repo *ratingRepository) SummarizeSeller(ctx context.Context, sellerID uuid.UUID) (*entity.RatingSummary, error) {
	var buckets []ratingBucket

	if err := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Select("rating, COUNT(*) AS count").
		Where("seller_id = ?", sellerID).
		Group("rating").
		Scan(&buckets).Error; err != nil {
		return nil, errors.Wrap(err, "failed to summarize seller ratings")
	}

	summary := &entity.RatingSummary{
		SellerID:     sellerID,
		Distribution: make(map[int]int64, entity.MaxRatingScore),
	}
	for score := entity.MinRatingScore; score <= entity.MaxRatingScore; score++ {
		summary.Distribution[score] = 0
	}

	var sum int64
	for _, bucket := range buckets {
		summary.Distribution[bucket.Rating] = bucket.Count
		summary.Total += bucket.Count
		sum += int64(bucket.Rating) * bucket.Count
	}
	if summary.Total > 0 {
		summary.Average = float64(sum) / float64(summary.Total)
	}

	return summary, nil
}
