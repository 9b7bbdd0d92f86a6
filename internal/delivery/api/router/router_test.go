package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"mealmarket/config"
	"mealmarket/internal/delivery/api/middleware"
	"mealmarket/internal/delivery/api/response"
	"mealmarket/internal/delivery/api/router/handler"
	"mealmarket/internal/delivery/api/validator"
	"mealmarket/internal/domain/entity"
	domainerrors "mealmarket/internal/domain/errors"
	"mealmarket/internal/domain/service"
	mockSvc "mealmarket/internal/mocks/service"
	mockUsecase "mealmarket/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const sellerToken = "seller-token"

type routerFixture struct {
	e        *echo.Echo
	offerUC  *mockUsecase.MockOfferUsecase
	sellerID uuid.UUID
}

func newRouterFixture(t *testing.T) *routerFixture {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sellerID := uuid.New()

	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateAccessToken(sellerToken).
		Return(&service.Claims{SellerID: sellerID, Roles: []string{entity.RoleSeller}}, nil).Maybe()
	tokenSvc.EXPECT().ValidateAccessToken("buyer-token").
		Return(&service.Claims{SellerID: uuid.New()}, nil).Maybe()
	tokenSvc.EXPECT().ValidateAccessToken(mock.Anything).
		Return(nil, errors.New("token is malformed")).Maybe()

	offerUC := mockUsecase.NewMockOfferUsecase(t)
	auth := middleware.NewAuthMiddleware(tokenSvc)
	cfg := &config.Config{}

	r := NewRouter(RouterParams{
		OfferHandler:        handler.NewOfferHandler(handler.OfferHandlerParams{OfferUC: offerUC, Logger: logger}),
		NotificationHandler: handler.NewNotificationHandler(handler.NotificationHandlerParams{NotificationUC: mockUsecase.NewMockNotificationUsecase(t), Logger: logger}),
		RatingHandler:       handler.NewRatingHandler(handler.RatingHandlerParams{RatingUC: mockUsecase.NewMockRatingUsecase(t), Logger: logger}),
		DeviceHandler:       handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: mockUsecase.NewMockDeviceUsecase(t), Logger: logger}),
		RealtimeHandler:     handler.NewRealtimeHandler(handler.RealtimeHandlerParams{AuthMiddleware: auth, Logger: logger}),
		HealthHandler:       handler.NewHealthHandler(handler.HealthHandlerParams{}),
		AuthMiddleware:      auth,
		Config:              cfg,
	})

	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger, cfg).HandleHTTPError
	e.Validator = validator.New()
	r.RegisterRoutes(e)

	return &routerFixture{e: e, offerUC: offerUC, sellerID: sellerID}
}

func (f *routerFixture) do(method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope), rec.Body.String())
	require.NotNil(t, envelope.Error, rec.Body.String())

	return envelope.Error.Code
}

func TestRouter_ReservationsIsNotAnOfferKey(t *testing.T) {
	f := newRouterFixture(t)
	reserved := &entity.Offer{
		Key:         "offer_abc",
		SellerID:    f.sellerID,
		MealType:    entity.MealTypeDinner,
		Price:       8,
		Status:      entity.OfferStatusReserved,
		Reservation: &entity.Reservation{BuyerID: "buyer_bob", BuyerName: "Bob", BuyerPhone: "0501234567"},
	}
	f.offerUC.EXPECT().ListReservations(mock.Anything, f.sellerID).Return([]*entity.Offer{reserved}, nil)

	rec := f.do(http.MethodGet, "/offers/reservations", sellerToken)

	require.Equal(t, http.StatusOK, rec.Code)
	// the seller's own view carries the buyer contact data
	assert.Contains(t, rec.Body.String(), "0501234567")
}

func TestRouter_SellerRoutesRequireSeller(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		token  string
		status int
		code   string
	}{
		{name: "reservations without token", method: http.MethodGet, target: "/offers/reservations", status: http.StatusUnauthorized, code: "UNAUTHENTICATED"},
		{name: "delete with bad token", method: http.MethodDelete, target: "/offers/offer_abc", token: "garbage", status: http.StatusUnauthorized, code: "UNAUTHENTICATED"},
		{name: "confirm without seller role", method: http.MethodPost, target: "/offers/offer_abc/confirm", token: "buyer-token", status: http.StatusForbidden, code: "FORBIDDEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRouterFixture(t)

			rec := f.do(tt.method, tt.target, tt.token)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, errorCode(t, rec))
		})
	}
}

func TestRouter_DeleteOffer(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "available offer", status: http.StatusOK},
		{name: "reserved offer", err: domainerrors.ErrOfferNotRemovable, status: http.StatusConflict, code: "OFFER_NOT_REMOVABLE"},
		{name: "foreign offer", err: domainerrors.ErrOfferNotFound, status: http.StatusNotFound, code: "OFFER_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRouterFixture(t)
			f.offerUC.EXPECT().RemoveOffer(mock.Anything, "offer_abc", f.sellerID).Return(tt.err)

			rec := f.do(http.MethodDelete, "/offers/offer_abc", sellerToken)

			require.Equal(t, tt.status, rec.Code)
			if tt.code != "" {
				assert.Equal(t, tt.code, errorCode(t, rec))
			}
		})
	}
}

func TestRouter_DecisionOnForeignOfferIsNotFound(t *testing.T) {
	tests := []struct {
		name   string
		target string
		expect func(f *routerFixture)
	}{
		{
			name:   "confirm",
			target: "/offers/offer_abc/confirm",
			expect: func(f *routerFixture) {
				f.offerUC.EXPECT().ConfirmReservation(mock.Anything, "offer_abc", f.sellerID).Return(nil, domainerrors.ErrOfferNotFound)
			},
		},
		{
			name:   "reject",
			target: "/offers/offer_abc/reject",
			expect: func(f *routerFixture) {
				f.offerUC.EXPECT().RejectReservation(mock.Anything, "offer_abc", f.sellerID).Return(nil, domainerrors.ErrOfferNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRouterFixture(t)
			tt.expect(f)

			rec := f.do(http.MethodPost, tt.target, sellerToken)

			require.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, "OFFER_NOT_FOUND", errorCode(t, rec))
		})
	}
}

func TestRouter_RejectReturnsOfferToMarket(t *testing.T) {
	f := newRouterFixture(t)
	f.offerUC.EXPECT().RejectReservation(mock.Anything, "offer_abc", f.sellerID).
		Return(&entity.Offer{Key: "offer_abc", SellerID: f.sellerID, Status: entity.OfferStatusAvailable}, nil)

	rec := f.do(http.MethodPost, "/offers/offer_abc/reject", sellerToken)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"available"`)
}
