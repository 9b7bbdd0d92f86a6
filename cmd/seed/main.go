// Command seed fills a development database with verified sellers and a few offers,
// and prints an access token per seller.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"mealmarket/config"
	"mealmarket/internal/domain/entity"
	"mealmarket/internal/domain/lifecycle"
	"mealmarket/internal/domain/repository"
	"mealmarket/internal/domain/service"
	"mealmarket/internal/infra/auth"
	logs "mealmarket/internal/infra/log"
	"mealmarket/internal/infra/persistence/postgres"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type seedSeller struct {
	username string
	phone    string
	offers   []seedOffer
}

type seedOffer struct {
	mealType entity.MealType
	price    float64
	details  string
}

var sellers = []seedSeller{
	{
		username: "alice",
		phone:    "0501111111",
		offers: []seedOffer{
			{mealType: entity.MealTypeLunch, price: 12, details: "Chicken with rice"},
			{mealType: entity.MealTypeDinner, price: 9.5, details: "Lentil soup and bread"},
		},
	},
	{
		username: "dan",
		phone:    "0502222222",
		offers: []seedOffer{
			{mealType: entity.MealTypeBreakfast, price: 6, details: "Shakshuka"},
		},
	},
}

type seedParams struct {
	fx.In

	Logger     *slog.Logger
	SellerRepo repository.SellerRepository
	OfferRepo  repository.OfferRepository
	TokenSvc   service.TokenService
}

func main() {
	var params seedParams
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewSellerRepository,
			postgres.NewOfferRepository,
			auth.NewJWTService,
		),
		fx.Invoke(func(p seedParams) { params = p }),
	)
	if err := app.Err(); err != nil {
		slog.Error("Failed to build seed app", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(ctx); err != nil {
		slog.Error("Failed to connect", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := app.Stop(context.Background()); err != nil {
			slog.Error("Failed to stop", slog.Any("error", err))
		}
	}()

	if err := seed(context.Background(), params); err != nil {
		params.Logger.Error("Seeding failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func seed(ctx context.Context, params seedParams) error {
	now := time.Now().UTC()

	for _, s := range sellers {
		seller := &entity.Seller{
			ID:            uuid.NewSHA1(uuid.NameSpaceOID, []byte("mealmarket-seed-"+s.username)),
			Username:      s.username,
			Email:         s.username + "@example.com",
			Phone:         s.phone,
			PhoneVerified: true,
		}
		if err := params.SellerRepo.UpsertSeller(ctx, seller); err != nil {
			return errors.Wrapf(err, "upsert seller %s", s.username)
		}

		for _, o := range s.offers {
			offer := &entity.Offer{
				Key:       entity.NewOfferKey(),
				SellerID:  seller.ID,
				MealType:  o.mealType,
				Price:     o.price,
				Details:   o.details,
				Status:    entity.OfferStatusAvailable,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := params.OfferRepo.CreateOffer(ctx, offer); err != nil {
				return errors.Wrapf(err, "create offer for %s", s.username)
			}
		}

		accessToken, _, err := params.TokenSvc.GenerateTokens(seller.ID, []string{entity.RoleSeller})
		if err != nil {
			return errors.Wrapf(err, "issue token for %s", s.username)
		}

		fmt.Printf("%s\t%s\t%s\n", s.username, seller.ID, accessToken)
	}

	return nil
}
