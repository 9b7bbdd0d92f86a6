package postgres

import (
	"context"
	"time"

	"mealmarket/internal/domain/entity"
	domainerrors "mealmarket/internal/domain/errors"
	"mealmarket/internal/domain/repository"
	"mealmarket/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const offerListingColumns = "o.*, s.username AS seller_name, s.phone AS seller_phone, " +
	"COALESCE(r.avg_rating, 0) AS avg_rating, COALESCE(r.rating_count, 0) AS rating_count"

// offerRepository implements the repository.OfferRepository interface.
type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository(db *gorm.DB) repository.OfferRepository {
	return &offerRepository{
		db: db,
	}
}

// CreateOffer persists a new offer.
func (repo *offerRepository) CreateOffer(ctx context.Context, offer *entity.Offer) error {
	offerM := fromOfferDomain(offer)

	if err := repo.db.WithContext(ctx).Create(offerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateOfferKey
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create offer")
	}

	offer.CreatedAt = offerM.CreatedAt
	offer.UpdatedAt = offerM.UpdatedAt

	return nil
}

// FindOfferByKey retrieves an offer with seller display data and rating aggregate.
func (repo *offerRepository) FindOfferByKey(ctx context.Context, key string) (*entity.Offer, error) {
	var rows []*model.OfferListingRow

	if err := repo.listing(ctx).
		Where("o.offer_key = ?", key).
		Limit(1).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find offer by key")
	}

	if len(rows) == 0 {
		return nil, repository.ErrOfferNotFound
	}

	return toOfferDomain(rows[0]), nil
}

// ListOffers retrieves offers in any of the given statuses, newest first.
func (repo *offerRepository) ListOffers(ctx context.Context, statuses []entity.OfferStatus) ([]*entity.Offer, error) {
	query := repo.listing(ctx)
	if len(statuses) > 0 {
		query = query.Where("o.status IN ?", statusStrings(statuses))
	}

	return repo.scanOffers(query.Order("o.created_at DESC").Order("o.offer_key DESC"), "failed to list offers")
}

// ListOffersBySeller retrieves every offer owned by a seller, newest first.
func (repo *offerRepository) ListOffersBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Offer, error) {
	query := repo.listing(ctx).
		Where("o.seller_id = ?", sellerID).
		Order("o.created_at DESC").
		Order("o.offer_key DESC")

	return repo.scanOffers(query, "failed to list offers by seller")
}

// ListReservationsBySeller retrieves a seller's reserved offers, most recent reservation first.
func (repo *offerRepository) ListReservationsBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.Offer, error) {
	query := repo.listing(ctx).
		Where("o.seller_id = ? AND o.status = ?", sellerID, string(entity.OfferStatusReserved)).
		Order("o.reserved_at DESC").
		Order("o.offer_key DESC")

	return repo.scanOffers(query, "failed to list reservations by seller")
}

// Transition applies mutation with a single status-guarded UPDATE.
func (repo *offerRepository) Transition(ctx context.Context, key string, guard repository.OfferGuard, mutation repository.OfferMutation) (int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Where("offer_key = ? AND status = ?", key, string(guard.Status))
	if guard.SellerID != uuid.Nil {
		query = query.Where("seller_id = ?", guard.SellerID)
	}
	if guard.BuyerID != "" {
		query = query.Where("buyer_id = ?", guard.BuyerID)
	}

	result := query.Updates(mutationColumns(mutation, time.Now().UTC()))
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to transition offer")
	}

	return result.RowsAffected, nil
}

// DeleteAvailableOffer hard-deletes an available offer owned by sellerID.
func (repo *offerRepository) DeleteAvailableOffer(ctx context.Context, key string, sellerID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("offer_key = ? AND seller_id = ? AND status = ?", key, sellerID, string(entity.OfferStatusAvailable)).
		Delete(&model.OfferModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete offer")
	}

	return result.RowsAffected, nil
}

// listing joins offers with the seller directory and the per-seller rating aggregate.
func (repo *offerRepository) listing(ctx context.Context) *gorm.DB {
	ratingAggregate := repo.db.
		Model(&model.RatingModel{}).
		Select("seller_id, CAST(AVG(rating) AS FLOAT) AS avg_rating, COUNT(*) AS rating_count").
		Group("seller_id")

	return repo.db.WithContext(ctx).
		Table("offers AS o").
		Select(offerListingColumns).
		Joins("LEFT JOIN sellers s ON s.id = o.seller_id").
		Joins("LEFT JOIN (?) AS r ON r.seller_id = o.seller_id", ratingAggregate)
}

func (repo *offerRepository) scanOffers(query *gorm.DB, failure string) ([]*entity.Offer, error) {
	var rows []*model.OfferListingRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, failure)
	}

	offers := make([]*entity.Offer, 0, len(rows))
	for _, row := range rows {
		offers = append(offers, toOfferDomain(row))
	}

	return offers, nil
}

func mutationColumns(mutation repository.OfferMutation, now time.Time) map[string]any {
	columns := map[string]any{
		"status":     string(mutation.Status),
		"updated_at": now,
	}

	switch {
	case mutation.Reservation != nil:
		columns["buyer_id"] = mutation.Reservation.BuyerID
		columns["buyer_name"] = mutation.Reservation.BuyerName
		columns["buyer_phone"] = mutation.Reservation.BuyerPhone
		columns["reserved_at"] = mutation.Reservation.ReservedAt
	case mutation.ClearReservation:
		columns["buyer_id"] = nil
		columns["buyer_name"] = nil
		columns["buyer_phone"] = nil
		columns["reserved_at"] = nil
	}

	if mutation.ConfirmedAt != nil {
		columns["confirmed_at"] = *mutation.ConfirmedAt
	}
	if mutation.RejectedAt != nil {
		columns["rejected_at"] = *mutation.RejectedAt
	}

	return columns
}

func statusStrings(statuses []entity.OfferStatus) []string {
	values := make([]string, 0, len(statuses))
	for _, status := range statuses {
		values = append(values, string(status))
	}

	return values
}

// --- Mapper Functions ---

// toOfferDomain converts a listing row to a domain Offer entity.
func toOfferDomain(data *model.OfferListingRow) *entity.Offer {
	if data == nil {
		return nil
	}

	offer := &entity.Offer{
		Key:         data.OfferKey,
		SellerID:    data.SellerID,
		MealType:    entity.MealType(data.MealType),
		Price:       data.Price,
		Details:     data.Details,
		Status:      entity.OfferStatus(data.Status),
		ConfirmedAt: data.ConfirmedAt,
		RejectedAt:  data.RejectedAt,
		SellerRating: entity.RatingAggregate{
			Average: data.AvgRating,
			Count:   data.RatingCount,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.SellerName != nil {
		offer.SellerName = *data.SellerName
	}
	if data.SellerPhone != nil {
		offer.SellerPhone = *data.SellerPhone
	}

	if data.BuyerID != nil {
		reservation := &entity.Reservation{BuyerID: *data.BuyerID}
		if data.BuyerName != nil {
			reservation.BuyerName = *data.BuyerName
		}
		if data.BuyerPhone != nil {
			reservation.BuyerPhone = *data.BuyerPhone
		}
		if data.ReservedAt != nil {
			reservation.ReservedAt = *data.ReservedAt
		}
		offer.Reservation = reservation
	}

	return offer
}

// fromOfferDomain converts a domain Offer entity to a GORM OfferModel.
func fromOfferDomain(data *entity.Offer) *model.OfferModel {
	if data == nil {
		return nil
	}

	offerM := &model.OfferModel{
		OfferKey:    data.Key,
		SellerID:    data.SellerID,
		MealType:    string(data.MealType),
		Price:       data.Price,
		Details:     data.Details,
		Status:      string(data.Status),
		ConfirmedAt: data.ConfirmedAt,
		RejectedAt:  data.RejectedAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	if data.Reservation != nil {
		offerM.BuyerID = &data.Reservation.BuyerID
		offerM.BuyerName = &data.Reservation.BuyerName
		offerM.BuyerPhone = &data.Reservation.BuyerPhone
		offerM.ReservedAt = &data.Reservation.ReservedAt
	}

	return offerM
}
