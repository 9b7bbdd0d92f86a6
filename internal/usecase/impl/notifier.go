package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "mealmarket/internal/delivery/context"
	"mealmarket/internal/domain/entity"
	"mealmarket/internal/domain/service"
	"mealmarket/internal/usecase"
)

const defaultNotificationTimeout = 5 * time.Second

// changeNotifier delivers the side effects of a committed state change: the
// durable notification first, then the realtime event to the recipient's room.
// Neither step can fail the change that triggered it.
type changeNotifier struct {
	notifications usecase.NotificationUsecase
	realtime      service.RealtimePublisher
	timeout       time.Duration
	logger        *slog.Logger
}

func newChangeNotifier(
	notifications usecase.NotificationUsecase,
	realtime service.RealtimePublisher,
	timeout time.Duration,
	logger *slog.Logger,
) *changeNotifier {
	if timeout <= 0 {
		timeout = defaultNotificationTimeout
	}

	return &changeNotifier{
		notifications: notifications,
		realtime:      realtime,
		timeout:       timeout,
		logger:        logger,
	}
}

// deliver records input and pushes event to the recipient's room.
// The record outlives the caller's context so an abandoned request still leaves the row behind.
func (n *changeNotifier) deliver(ctx context.Context, input *usecase.NotificationInput, event string, payload any) {
	recordCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.timeout)
	defer cancel()

	if _, err := n.notifications.Record(recordCtx, input); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, n.logger).Error("Failed to record notification",
			slog.String("type", string(input.Type)),
			slog.String("recipient", input.Recipient.Room()),
			slog.Any("error", err),
		)
	}

	n.realtime.Publish(ctx, input.Recipient.Room(), event, payload)
}

// broadcast pushes a listing invalidation event to every connection.
func (n *changeNotifier) broadcast(ctx context.Context, event string, payload any) {
	n.realtime.BroadcastAll(ctx, event, payload)
}

func newReservationNotice(offer *entity.Offer) *usecase.NotificationInput {
	reservation := offer.Reservation

	return &usecase.NotificationInput{
		Type:      entity.NotificationNewReservation,
		Recipient: entity.SellerRecipient(offer.SellerID),
		Title:     "New reservation request",
		Message:   fmt.Sprintf("%s reserved your %s offer", reservation.BuyerName, offer.MealType),
		Payload:   reservationPayload(offer),
	}
}

func reservationConfirmedNotice(offer *entity.Offer, buyerID string) *usecase.NotificationInput {
	return &usecase.NotificationInput{
		Type:      entity.NotificationReservationConfirmed,
		Recipient: entity.BuyerRecipient(buyerID),
		Title:     "Reservation confirmed",
		Message:   fmt.Sprintf("%s confirmed your %s reservation", offer.SellerName, offer.MealType),
		Payload:   sellerDecisionPayload(offer, true),
	}
}

func reservationRejectedNotice(offer *entity.Offer, buyerID string) *usecase.NotificationInput {
	return &usecase.NotificationInput{
		Type:      entity.NotificationReservationRejected,
		Recipient: entity.BuyerRecipient(buyerID),
		Title:     "Reservation rejected",
		Message:   fmt.Sprintf("%s declined your %s reservation", offer.SellerName, offer.MealType),
		Payload:   sellerDecisionPayload(offer, false),
	}
}

func newRatingNotice(rating *entity.Rating, summary *entity.RatingSummary) *usecase.NotificationInput {
	return &usecase.NotificationInput{
		Type:      entity.NotificationNewRating,
		Recipient: entity.SellerRecipient(rating.SellerID),
		Title:     "New rating",
		Message:   fmt.Sprintf("A buyer rated you %d out of %d", rating.Score, entity.MaxRatingScore),
		Payload:   ratingPayload(rating, summary),
	}
}

func reservationPayload(offer *entity.Offer) map[string]any {
	reservation := offer.Reservation

	return map[string]any{
		"offer_key":   offer.Key,
		"buyer_id":    reservation.BuyerID,
		"buyer_name":  reservation.BuyerName,
		"buyer_phone": reservation.BuyerPhone,
		"meal_type":   string(offer.MealType),
		"price":       offer.Price,
		"reserved_at": reservation.ReservedAt,
	}
}

// sellerDecisionPayload shares the seller's phone only once the sale is confirmed.
func sellerDecisionPayload(offer *entity.Offer, confirmed bool) map[string]any {
	payload := map[string]any{
		"offer_key":   offer.Key,
		"seller_name": offer.SellerName,
		"meal_type":   string(offer.MealType),
		"price":       offer.Price,
	}
	if confirmed {
		payload["seller_phone"] = offer.SellerPhone
	}

	return payload
}

func ratingPayload(rating *entity.Rating, summary *entity.RatingSummary) map[string]any {
	payload := map[string]any{
		"rating_id": rating.ID.String(),
		"offer_key": rating.OfferKey,
		"rating":    rating.Score,
		"comment":   rating.Comment,
	}
	if summary != nil {
		payload["average"] = summary.Average
		payload["total"] = summary.Total
	}

	return payload
}
