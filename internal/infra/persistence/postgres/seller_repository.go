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
	"gorm.io/gorm/clause"
)

// sellerRepository implements the repository.SellerRepository interface.
type sellerRepository struct {
	db *gorm.DB
}

// NewSellerRepository is the constructor for sellerRepository.
func NewSellerRepository(db *gorm.DB) repository.SellerRepository {
	return &sellerRepository{
		db: db,
	}
}

// FindSellerByID retrieves a seller by its unique ID.
func (repo *sellerRepository) FindSellerByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error) {
	var sellerM model.SellerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&sellerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSellerNotFound
		}

		return nil, errors.Wrap(err, "failed to find seller by ID")
	}

	return toSellerDomain(&sellerM), nil
}

// UpsertSeller inserts the seller or refreshes its profile columns.
func (repo *sellerRepository) UpsertSeller(ctx context.Context, seller *entity.Seller) error {
	if seller.ID == uuid.Nil {
		seller.ID = uuid.New()
	}
	sellerM := fromSellerDomain(seller)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"username", "email", "phone", "phone_verified", "updated_at"}),
		}).
		Create(sellerM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert seller")
	}

	seller.CreatedAt = sellerM.CreatedAt
	seller.UpdatedAt = sellerM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toSellerDomain(data *model.SellerModel) *entity.Seller {
	if data == nil {
		return nil
	}

	return &entity.Seller{
		ID:            data.ID,
		Username:      data.Username,
		Email:         data.Email,
		Phone:         data.Phone,
		PhoneVerified: data.PhoneVerified,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromSellerDomain(data *entity.Seller) *model.SellerModel {
	if data == nil {
		return nil
	}

	return &model.SellerModel{
		ID:            data.ID,
		Username:      data.Username,
		Email:         data.Email,
		Phone:         data.Phone,
		PhoneVerified: data.PhoneVerified,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
