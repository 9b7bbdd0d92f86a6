package handler

import (
	"net/http"
	"testing"

	"mealmarket/internal/domain/entity"
	domainerrors "mealmarket/internal/domain/errors"
	mockUsecase "mealmarket/internal/mocks/usecase"
	"mealmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRatingTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockRatingUsecase) {
	ratingUC := mockUsecase.NewMockRatingUsecase(t)
	h := NewRatingHandler(RatingHandlerParams{RatingUC: ratingUC, Logger: discardLogger()})

	e := newTestEcho()
	e.POST("/ratings", h.SubmitRating)
	e.GET("/ratings/sellers/:sellerId", h.GetSellerSummary)

	return e, ratingUC
}

func TestRatingHandler_SubmitRating(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		setup        func(ratingUC *mockUsecase.MockRatingUsecase)
		expectedCode int
	}{
		{
			name: "accepted",
			body: `{"offer_key":"offer_k","buyer_id":"buyer_bob","rating":5,"comment":"great"}`,
			setup: func(ratingUC *mockUsecase.MockRatingUsecase) {
				ratingUC.EXPECT().
					SubmitRating(mock.Anything, &usecase.SubmitRatingInput{OfferKey: "offer_k", BuyerID: "buyer_bob", Score: 5, Comment: "great"}).
					Return(&entity.Rating{ID: uuid.New()}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "second rating",
			body: `{"offer_key":"offer_k","buyer_id":"buyer_bob","rating":4}`,
			setup: func(ratingUC *mockUsecase.MockRatingUsecase) {
				ratingUC.EXPECT().SubmitRating(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrRatingDuplicate)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "score out of range",
			body:         `{"offer_key":"offer_k","buyer_id":"buyer_bob","rating":6}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "buyer id without prefix",
			body:         `{"offer_key":"offer_k","buyer_id":"bob","rating":3}`,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ratingUC := newRatingTestServer(t)
			if tt.setup != nil {
				tt.setup(ratingUC)
			}

			rec := doRequest(t, e, http.MethodPost, "/ratings", tt.body)

			assert.Equal(t, tt.expectedCode, rec.Code, rec.Body.String())
		})
	}
}

func TestRatingHandler_GetSellerSummary(t *testing.T) {
	e, ratingUC := newRatingTestServer(t)
	sellerID := uuid.New()

	ratingUC.EXPECT().GetSellerSummary(mock.Anything, sellerID).
		Return(&entity.RatingSummary{SellerID: sellerID, Average: 4.5, Total: 2}, nil)

	rec := doRequest(t, e, http.MethodGet, "/ratings/sellers/"+sellerID.String(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":2`)
}
