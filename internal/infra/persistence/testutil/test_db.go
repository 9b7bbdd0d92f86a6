// Package testutil opens throwaway SQLite databases for repository and service tests.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"mealmarket/internal/domain/entity"
	"mealmarket/internal/infra/persistence/postgres"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestDBOption customises the behaviour of MustOpenTestDB.
type TestDBOption func(*testDBConfig)

type testDBConfig struct {
	autoMigrate bool
}

// WithAutoMigrate creates every table after opening the database.
func WithAutoMigrate() TestDBOption {
	return func(cfg *testDBConfig) {
		cfg.autoMigrate = true
	}
}

// MustOpenTestDB opens a private in-memory SQLite database named after the test.
// The connection is closed via t.Cleanup.
func MustOpenTestDB(t *testing.T, opts ...TestDBOption) *gorm.DB {
	t.Helper()

	cfg := testDBConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%s?mode=memory&cache=shared&_foreign_keys=1", name, uuid.NewString())

	db, err := postgres.OpenSQLiteDSN(dsn)
	require.NoError(t, err)

	if cfg.autoMigrate {
		require.NoError(t, postgres.AutoMigrate(db))
	}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

// MustCreateSeller stores a seller with a verified phone unless verified is false.
func MustCreateSeller(t *testing.T, db *gorm.DB, username string, verified bool) *entity.Seller {
	t.Helper()

	seller := &entity.Seller{
		ID:            uuid.New(),
		Username:      username,
		Email:         username + "@example.com",
		Phone:         "+15550000000",
		PhoneVerified: verified,
	}
	require.NoError(t, postgres.NewSellerRepository(db).UpsertSeller(context.Background(), seller))

	return seller
}

// MustCreateOffer stores an available offer for the seller.
func MustCreateOffer(t *testing.T, db *gorm.DB, sellerID uuid.UUID, mealType entity.MealType, price float64) *entity.Offer {
	t.Helper()

	now := time.Now().UTC()
	offer := &entity.Offer{
		Key:       entity.NewOfferKey(),
		SellerID:  sellerID,
		MealType:  mealType,
		Price:     price,
		Status:    entity.OfferStatusAvailable,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, postgres.NewOfferRepository(db).CreateOffer(context.Background(), offer))

	return offer
}
