package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffer_ListingHidesContactData(t *testing.T) {
	now := time.Now().UTC()
	offer := &Offer{
		Key:         NewOfferKey(),
		SellerID:    uuid.New(),
		SellerName:  "alice",
		SellerPhone: "0501234567",
		MealType:    MealTypeDinner,
		Price:       9.5,
		Status:      OfferStatusReserved,
		Reservation: &Reservation{BuyerID: "buyer_bob", BuyerName: "Bob", BuyerPhone: "0507654321", ReservedAt: now},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	listing := offer.Listing()
	assert.Equal(t, offer.Key, listing.Key)
	assert.Equal(t, OfferStatusReserved, listing.Status)

	raw, err := json.Marshal(listing)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "0501234567")
	assert.NotContains(t, string(raw), "0507654321")
	assert.NotContains(t, string(raw), "buyer_bob")
}

func TestOffer_Consistent(t *testing.T) {
	tests := []struct {
		name     string
		offer    Offer
		expected bool
	}{
		{name: "available without reservation", offer: Offer{Status: OfferStatusAvailable}, expected: true},
		{name: "reserved with reservation", offer: Offer{Status: OfferStatusReserved, Reservation: &Reservation{}}, expected: true},
		{name: "sold without reservation", offer: Offer{Status: OfferStatusSold}, expected: false},
		{name: "available with reservation", offer: Offer{Status: OfferStatusAvailable, Reservation: &Reservation{}}, expected: false},
		{name: "unknown status", offer: Offer{Status: "expired"}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.offer.Consistent())
		})
	}
}
