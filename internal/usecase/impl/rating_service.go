package impl

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"mealmarket/config"
	deliverycontext "mealmarket/internal/delivery/context"
	"mealmarket/internal/domain/entity"
	domainerrors "mealmarket/internal/domain/errors"
	"mealmarket/internal/domain/repository"
	"mealmarket/internal/domain/service"
	"mealmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxRatingCommentLength = 500

// ratingService implements the RatingUsecase interface.
type ratingService struct {
	txManager  repository.TransactionManager
	ratingRepo repository.RatingRepository
	notifier   *changeNotifier
	store      storeBound
	now        func() time.Time
	logger     *slog.Logger
}

// RatingServiceParams holds dependencies for RatingService, injected by Fx.
type RatingServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	RatingRepo    repository.RatingRepository
	Notifications usecase.NotificationUsecase
	Realtime      service.RealtimePublisher
	Config        *config.Config
	Logger        *slog.Logger
}

// NewRatingService is the constructor for ratingService.
func NewRatingService(params RatingServiceParams) usecase.RatingUsecase {
	return &ratingService{
		txManager:  params.TxManager,
		ratingRepo: params.RatingRepo,
		notifier: newChangeNotifier(
			params.Notifications,
			params.Realtime,
			params.Config.Marketplace.NotificationTimeout,
			params.Logger,
		),
		store:  newStoreBound(params.Config),
		now:    func() time.Time { return time.Now().UTC() },
		logger: params.Logger,
	}
}

func (srv *ratingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitRating resolves the seller from the offer and records the rating in one
// transaction. Only the buyer of a sold offer may rate it, once.
func (srv *ratingService) SubmitRating(ctx context.Context, input *usecase.SubmitRatingInput) (*entity.Rating, error) {
	if err := validateRatingInput(input); err != nil {
		return nil, err
	}

	rating := &entity.Rating{
		ID:        uuid.New(),
		OfferKey:  input.OfferKey,
		BuyerID:   strings.TrimSpace(input.BuyerID),
		Score:     input.Score,
		Comment:   strings.TrimSpace(input.Comment),
		CreatedAt: srv.now(),
	}

	storeCtx, cancel := srv.store.context(ctx)
	defer cancel()

	err := srv.txManager.Execute(storeCtx, func(factory repository.RepositoryFactory) error {
		offer, err := factory.NewOfferRepository().FindOfferByKey(storeCtx, input.OfferKey)
		if err != nil {
			if errors.Is(err, repository.ErrOfferNotFound) {
				return domainerrors.ErrOfferNotFound
			}

			return errors.Wrap(err, "failed to load offer")
		}
		if offer.Status != entity.OfferStatusSold || offer.BuyerID() != rating.BuyerID {
			return domainerrors.ErrRatingNotAllowed
		}
		rating.SellerID = offer.SellerID

		ratingRepo := factory.NewRatingRepository()
		exists, err := ratingRepo.ExistsForOfferAndBuyer(storeCtx, rating.OfferKey, rating.BuyerID)
		if err != nil {
			return errors.Wrap(err, "failed to check existing rating")
		}
		if exists {
			return domainerrors.ErrRatingDuplicate
		}

		if err := ratingRepo.CreateRating(storeCtx, rating); err != nil {
			if errors.Is(err, repository.ErrDuplicateRating) {
				return domainerrors.ErrRatingDuplicate
			}

			return errors.Wrap(err, "failed to create rating")
		}

		return nil
	})
	if err != nil {
		var appErr domainerrors.AppError
		if !errors.As(err, &appErr) || appErr.HTTPCode() >= http.StatusInternalServerError {
			srv.log(ctx).Error("Failed to submit rating", slog.String("offerKey", input.OfferKey), slog.Any("error", err))
		}

		return nil, err
	}

	summary, err := srv.ratingRepo.SummarizeSeller(storeCtx, rating.SellerID)
	if err != nil {
		srv.log(ctx).Warn("Failed to summarize seller ratings", slog.String("sellerID", rating.SellerID.String()), slog.Any("error", err))
		summary = nil
	}

	srv.log(ctx).Info("Rating submitted", slog.String("offerKey", rating.OfferKey), slog.Int("rating", rating.Score))
	notice := newRatingNotice(rating, summary)
	srv.notifier.deliver(ctx, notice, service.EventNewRating, notice.Payload)

	return rating, nil
}

// GetSellerSummary returns the seller's rating summary.
func (srv *ratingService) GetSellerSummary(ctx context.Context, sellerID uuid.UUID) (*entity.RatingSummary, error) {
	storeCtx, cancel := srv.store.context(ctx)
	defer cancel()

	summary, err := srv.ratingRepo.SummarizeSeller(storeCtx, sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize seller ratings")
	}

	return summary, nil
}

func validateRatingInput(input *usecase.SubmitRatingInput) error {
	switch {
	case input == nil:
		return domainerrors.ErrValidationFailed.WithDetails("rating is required")
	case strings.TrimSpace(input.OfferKey) == "":
		return domainerrors.ErrValidationFailed.WithDetails("offer_key is required")
	case strings.TrimSpace(input.BuyerID) == "":
		return domainerrors.ErrValidationFailed.WithDetails("buyer_id is required")
	case input.Score < entity.MinRatingScore || input.Score > entity.MaxRatingScore:
		return domainerrors.ErrValidationFailed.WithDetails("rating must be between 1 and 5")
	case utf8.RuneCountInString(input.Comment) > maxRatingCommentLength:
		return domainerrors.ErrValidationFailed.WithDetails("comment must be at most 500 characters")
	}

	return nil
}
