package impl

import (
	"context"
	"fmt"
	"log/slog"
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

const (
	// offerKeyAttempts bounds retries after a generated key collides.
	offerKeyAttempts = 3
	maxBuyerIDLength = 64
)

// offerService implements the OfferUsecase interface. Every transition is a single
// status-guarded update in the offer store; there is no in-process locking.
type offerService struct {
	offerRepo  repository.OfferRepository
	sellerRepo repository.SellerRepository
	qrCode     service.QRCodeService
	notifier   *changeNotifier
	store      storeBound
	now        func() time.Time
	logger     *slog.Logger
}

// OfferServiceParams holds dependencies for OfferService, injected by Fx.
type OfferServiceParams struct {
	fx.In

	OfferRepo     repository.OfferRepository
	SellerRepo    repository.SellerRepository
	Notifications usecase.NotificationUsecase
	Realtime      service.RealtimePublisher
	QRCode        service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewOfferService is the constructor for offerService.
func NewOfferService(params OfferServiceParams) usecase.OfferUsecase {
	return &offerService{
		offerRepo:  params.OfferRepo,
		sellerRepo: params.SellerRepo,
		qrCode:     params.QRCode,
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

func (srv *offerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *offerService) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return srv.store.context(ctx)
}

// CreateOffer validates the offer, stores it as available and announces it to every listener.
func (srv *offerService) CreateOffer(ctx context.Context, sellerID uuid.UUID, input *usecase.CreateOfferInput) (*entity.Offer, error) {
	if err := validateOfferInput(input); err != nil {
		return nil, err
	}

	storeCtx, cancel := srv.storeContext(ctx)
	defer cancel()

	seller, err := srv.sellerRepo.FindSellerByID(storeCtx, sellerID)
	if err != nil {
		if errors.Is(err, repository.ErrSellerNotFound) {
			return nil, domainerrors.ErrSellerNotFound
		}

		return nil, errors.Wrap(err, "failed to load seller")
	}
	if !seller.CanPublishOffers() {
		return nil, domainerrors.ErrPhoneNotVerified
	}

	now := srv.now()
	offer := &entity.Offer{
		SellerID:    seller.ID,
		SellerName:  seller.Username,
		SellerPhone: seller.Phone,
		MealType:    input.MealType,
		Price:       input.Price,
		Details:     strings.TrimSpace(input.Details),
		Status:      entity.OfferStatusAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	for attempt := 1; ; attempt++ {
		offer.Key = entity.NewOfferKey()
		err = srv.offerRepo.CreateOffer(storeCtx, offer)
		if !errors.Is(err, repository.ErrDuplicateOfferKey) || attempt == offerKeyAttempts {
			break
		}
	}
	if err != nil {
		srv.log(ctx).Error("Failed to create offer", slog.String("sellerID", sellerID.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create offer")
	}

	if stored, err := srv.offerRepo.FindOfferByKey(storeCtx, offer.Key); err == nil {
		offer = stored
	} else {
		srv.log(ctx).Warn("Failed to reload created offer", slog.String("offerKey", offer.Key), slog.Any("error", err))
	}

	srv.log(ctx).Info("Offer created", slog.String("offerKey", offer.Key), slog.String("sellerID", sellerID.String()))
	srv.notifier.broadcast(ctx, service.EventNewOffer, offer.Listing())

	return offer, nil
}

// GetOffer retrieves a single offer.
func (srv *offerService) GetOffer(ctx context.Context, key string) (*entity.Offer, error) {
	storeCtx, cancel := srv.storeContext(ctx)
	defer cancel()

	return srv.findOffer(storeCtx, key)
}

// ListActiveOffers lists offers in every state, newest first, with seller rating aggregates.
func (srv *offerService) ListActiveOffers(ctx context.Context) ([]*entity.Offer, error) {
	storeCtx, cancel := srv.storeContext(ctx)
	defer cancel()

	offers, err := srv.offerRepo.ListOffers(storeCtx, []entity.OfferStatus{
		entity.OfferStatusAvailable,
		entity.OfferStatusReserved,
		entity.OfferStatusSold,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list offers")
	}

	return offers, nil
}

// ListSellerOffers lists the seller's own offers.
func (srv *offerService) ListSellerOffers(ctx context.Context, sellerID uuid.UUID) ([]*entity.Offer, error) {
	storeCtx, cancel := srv.storeContext(ctx)
	defer cancel()

	offers, err := srv.offerRepo.ListOffersBySeller(storeCtx, sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list seller offers")
	}

	return offers, nil
}

// ListReservations lists the seller's reserved offers, most recent reservation first.
func (srv *offerService) ListReservations(ctx context.Context, sellerID uuid.UUID) ([]*entity.Offer, error) {
	storeCtx, cancel := srv.storeContext(ctx)
	defer cancel()

	offers, err := srv.offerRepo.ListReservationsBySeller(storeCtx, sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reservations")
	}

	return offers, nil
}

// ReserveOffer claims an available offer. Of any number of concurrent callers
// exactly one passes the available-guarded update; the rest get ErrOfferNotAvailable.
func (srv *offerService) ReserveOffer(ctx context.Context, key string, input *usecase.ReserveOfferInput) (*usecase.ReservationReceipt, error) {
	if err := validateReservationInput(input); err != nil {
		return nil, err
	}

	storeCtx, cancel := srv.storeContext(ctx)
	defer cancel()

	offer, err := srv.findOffer(storeCtx, key)
	if err != nil {
		return nil, err
	}
	if !offer.IsReservable() {
		return nil, domainerrors.ErrOfferNotAvailable
	}

	buyerID := strings.TrimSpace(input.BuyerID)
	if buyerID == "" {
		buyerID = entity.NewBuyerID()
	}

	now := srv.now()
	mutation := repository.OfferMutation{
		Status: entity.OfferStatusReserved,
		Reservation: &entity.Reservation{
			BuyerID:    buyerID,
			BuyerName:  strings.TrimSpace(input.BuyerName),
			BuyerPhone: input.BuyerPhone,
			ReservedAt: now,
		},
	}

	rows, err := srv.offerRepo.Transition(storeCtx, key, repository.OfferGuard{Status: entity.OfferStatusAvailable}, mutation)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reserve offer")
	}
	if rows == 0 {
		srv.log(ctx).Info("Reservation lost the race", slog.String("offerKey", key))

		return nil, domainerrors.ErrOfferNotAvailable
	}
	mutation.Apply(offer, now)

	srv.log(ctx).Info("Offer reserved", slog.String("offerKey", key), slog.String("buyerID", buyerID))
	srv.notifier.deliver(ctx, newReservationNotice(offer), service.EventNewReservation, reservationPayload(offer))

	return &usecase.ReservationReceipt{
		OfferKey:   offer.Key,
		BuyerID:    buyerID,
		Status:     offer.Status,
		ReservedAt: now,
	}, nil
}

// ConfirmReservation moves a reserved offer owned by sellerID to sold.
func (srv *offerService) ConfirmReservation(ctx context.Context, key string, sellerID uuid.UUID) (*entity.Offer, error) {
	offer, buyerID, err := srv.decide(ctx, key, sellerID, func(now time.Time) repository.OfferMutation {
		return repository.OfferMutation{Status: entity.OfferStatusSold, ConfirmedAt: &now}
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Reservation confirmed", slog.String("offerKey", key), slog.String("buyerID", buyerID))
	notice := reservationConfirmedNotice(offer, buyerID)
	srv.notifier.deliver(ctx, notice, service.EventReservationConfirmed, notice.Payload)

	return offer, nil
}

// RejectReservation returns a reserved offer owned by sellerID to available and clears the reservation.
func (srv *offerService) RejectReservation(ctx context.Context, key string, sellerID uuid.UUID) (*entity.Offer, error) {
	offer, buyerID, err := srv.decide(ctx, key, sellerID, func(now time.Time) repository.OfferMutation {
		return repository.OfferMutation{Status: entity.OfferStatusAvailable, ClearReservation: true, RejectedAt: &now}
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Reservation rejected", slog.String("offerKey", key), slog.String("buyerID", buyerID))
	notice := reservationRejectedNotice(offer, buyerID)
	srv.notifier.deliver(ctx, notice, service.EventReservationRejected, notice.Payload)

	return offer, nil
}

// decide applies a seller decision to a reserved offer. Missing, foreign and
// non-reserved offers are indistinguishable to the caller.
func (srv *offerService) decide(
	ctx context.Context,
	key string,
	sellerID uuid.UUID,
	mutationAt func(now time.Time) repository.OfferMutation,
) (*entity.Offer, string, error) {
	storeCtx, cancel := srv.storeContext(ctx)
	defer cancel()

	offer, err := srv.findOffer(storeCtx, key)
	if err != nil {
		return nil, "", err
	}
	if !offer.IsOwnedBy(sellerID) || offer.Status != entity.OfferStatusReserved {
		return nil, "", domainerrors.ErrOfferNotFound
	}

	buyerID := offer.BuyerID()
	now := srv.now()
	mutation := mutationAt(now)

	rows, err := srv.offerRepo.Transition(storeCtx, key, repository.OfferGuard{
		Status:   entity.OfferStatusReserved,
		SellerID: sellerID,
		BuyerID:  buyerID,
	}, mutation)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to apply seller decision")
	}
	if rows == 0 {
		return nil, "", domainerrors.ErrOfferStateChanged
	}
	mutation.Apply(offer, now)

	return offer, buyerID, nil
}

// RemoveOffer hard-deletes an available offer owned by sellerID and invalidates listings.
func (srv *offerService) RemoveOffer(ctx context.Context, key string, sellerID uuid.UUID) error {
	storeCtx, cancel := srv.storeContext(ctx)
	defer cancel()

	rows, err := srv.offerRepo.DeleteAvailableOffer(storeCtx, key, sellerID)
	if err != nil {
		return errors.Wrap(err, "failed to remove offer")
	}

	if rows == 0 {
		offer, err := srv.findOffer(storeCtx, key)
		if err != nil {
			return err
		}
		if !offer.IsOwnedBy(sellerID) {
			return domainerrors.ErrOfferNotFound
		}

		return domainerrors.ErrOfferNotRemovable
	}

	srv.log(ctx).Info("Offer removed", slog.String("offerKey", key))
	srv.notifier.broadcast(ctx, service.EventOfferRemoved, map[string]any{"offer_key": key})

	return nil
}

// GenerateOfferQR renders the share code of an existing offer.
func (srv *offerService) GenerateOfferQR(ctx context.Context, key string) ([]byte, error) {
	storeCtx, cancel := srv.storeContext(ctx)
	defer cancel()

	if _, err := srv.findOffer(storeCtx, key); err != nil {
		return nil, err
	}

	png, err := srv.qrCode.GenerateOfferQR(key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate offer QR code")
	}

	return png, nil
}

func (srv *offerService) findOffer(ctx context.Context, key string) (*entity.Offer, error) {
	offer, err := srv.offerRepo.FindOfferByKey(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return nil, domainerrors.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to load offer")
	}

	return offer, nil
}

func validateOfferInput(input *usecase.CreateOfferInput) error {
	switch {
	case input == nil:
		return domainerrors.ErrValidationFailed.WithDetails("offer is required")
	case !input.MealType.Valid():
		return domainerrors.ErrValidationFailed.WithDetails("meal_type must be breakfast, lunch or dinner")
	case input.Price < entity.MinOfferPrice || input.Price > entity.MaxOfferPrice:
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("price must be between %.1f and %.0f", entity.MinOfferPrice, entity.MaxOfferPrice))
	case utf8.RuneCountInString(strings.TrimSpace(input.Details)) > entity.MaxDetailsLength:
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("details must be at most %d characters", entity.MaxDetailsLength))
	}

	return nil
}

func validateReservationInput(input *usecase.ReserveOfferInput) error {
	switch {
	case input == nil:
		return domainerrors.ErrValidationFailed.WithDetails("reservation is required")
	case !entity.ValidBuyerName(input.BuyerName):
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("buyer_name must be %d-%d characters", entity.MinBuyerNameLen, entity.MaxBuyerNameLen))
	case !entity.ValidLocalPhone(input.BuyerPhone):
		return domainerrors.ErrValidationFailed.WithDetails("buyer_phone must be 10 digits starting with 05")
	}

	buyerID := strings.TrimSpace(input.BuyerID)
	if buyerID != "" && (!strings.HasPrefix(buyerID, entity.BuyerIDPrefix) || len(buyerID) > maxBuyerIDLength) {
		return domainerrors.ErrValidationFailed.WithDetails("buyer_id is not a valid buyer identity")
	}

	return nil
}
