package qrcode

import (
	"fmt"
	"net/url"
	"strings"

	"mealmarket/config"
	"mealmarket/internal/domain/entity"
	"mealmarket/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	defaultBaseURL = "http://localhost:8080/offers/"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, levelName, baseURL := defaultSize, "M", defaultBaseURL
	if qr := cfg.QRCode; qr != nil {
		if qr.Size > 0 {
			size = qr.Size
		}
		if qr.ErrorCorrectionLevel != "" {
			levelName = qr.ErrorCorrectionLevel
		}
		if qr.BaseURL != "" {
			baseURL = qr.BaseURL
		}
	}

	var level qrcode.RecoveryLevel
	switch strings.ToUpper(levelName) {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// GenerateOfferQR encodes the offer's share URL as a PNG
func (s *qrcodeService) GenerateOfferQR(offerKey string) ([]byte, error) {
	if !strings.HasPrefix(offerKey, entity.OfferKeyPrefix) {
		return nil, fmt.Errorf("invalid offer key: %q", offerKey)
	}

	qrCode, err := qrcode.New(s.shareURL(offerKey), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseOfferQR accepts either a share URL under the configured base or a bare offer key
func (s *qrcodeService) ParseOfferQR(content string) (string, error) {
	content = strings.TrimSpace(content)

	key := content
	if rest, ok := strings.CutPrefix(content, s.baseURL); ok {
		unescaped, err := url.PathUnescape(strings.Trim(rest, "/"))
		if err != nil {
			return "", fmt.Errorf("failed to decode share URL: %w", err)
		}
		key = unescaped
	}

	if !strings.HasPrefix(key, entity.OfferKeyPrefix) || strings.ContainsAny(key, "/?#") {
		return "", fmt.Errorf("not an offer share code: %q", content)
	}

	return key, nil
}

func (s *qrcodeService) shareURL(offerKey string) string {
	return s.baseURL + url.PathEscape(offerKey)
}
