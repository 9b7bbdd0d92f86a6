package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRecipient_Room(t *testing.T) {
	sellerID := uuid.New()

	tests := []struct {
		name      string
		recipient Recipient
		expected  string
	}{
		{name: "seller", recipient: SellerRecipient(sellerID), expected: "seller_" + sellerID.String()},
		{name: "issued buyer id", recipient: BuyerRecipient("buyer_anna"), expected: "buyer_anna"},
		{name: "bare buyer id", recipient: BuyerRecipient("anna"), expected: "buyer_anna"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.recipient.Room())
		})
	}
}

func TestNewBuyerID_RoomHasSinglePrefix(t *testing.T) {
	buyerID := NewBuyerID()

	assert.Equal(t, buyerID, BuyerRecipient(buyerID).Room())
}
