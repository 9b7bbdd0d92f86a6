package qrcode

import (
	"testing"

	"mealmarket/config"
	"mealmarket/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(level string, size int) *qrcodeService {
	return NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{
		Size:                 size,
		ErrorCorrectionLevel: level,
		BaseURL:              "https://meals.example.com/offers",
	}}).(*qrcodeService)
}

func TestNewQRCodeService_Defaults(t *testing.T) {
	svc := NewQRCodeService(&config.Config{}).(*qrcodeService)

	assert.Equal(t, defaultSize, svc.size)
	assert.Equal(t, defaultBaseURL, svc.baseURL)
}

func TestQRCodeService_GenerateOfferQR(t *testing.T) {
	for _, level := range []string{"L", "M", "Q", "H", "invalid"} {
		t.Run(level, func(t *testing.T) {
			svc := newTestService(level, 128)

			png, err := svc.GenerateOfferQR(entity.NewOfferKey())
			require.NoError(t, err)

			// PNG magic number
			require.Greater(t, len(png), 4)
			assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, png[:4])
		})
	}
}

func TestQRCodeService_GenerateOfferQR_RejectsForeignKey(t *testing.T) {
	svc := newTestService("M", 128)

	_, err := svc.GenerateOfferQR("merchant_1")

	assert.Error(t, err)
}

func TestQRCodeService_ParseOfferQR(t *testing.T) {
	svc := newTestService("M", 128)
	key := entity.NewOfferKey()

	tests := []struct {
		name    string
		content string
		want    string
		wantErr bool
	}{
		{name: "share url", content: svc.shareURL(key), want: key},
		{name: "share url with trailing slash", content: svc.shareURL(key) + "/", want: key},
		{name: "bare key", content: "  " + key + " ", want: key},
		{name: "other site", content: "https://evil.example.com/offers/" + key, wantErr: true},
		{name: "not an offer", content: "https://meals.example.com/offers/seller_1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ParseOfferQR(tt.content)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
