package qrcode

import (
	"net/url"
	"strings"

	"petkeeper/config"
	"petkeeper/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize      = 256
	defaultInviteURL = "https://petkeeper.app/join"
	familyCodeParam  = "familyCode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	inviteURL            *url.URL
}

// NewQRCodeService creates the family invite QR service from configuration
func NewQRCodeService(cfg *config.Config) (service.QRCodeService, error) {
	size, level, baseURL := defaultSize, "M", defaultInviteURL
	if qr := cfg.QRCode; qr != nil {
		if qr.Size > 0 {
			size = qr.Size
		}
		if qr.ErrorCorrectionLevel != "" {
			level = qr.ErrorCorrectionLevel
		}
		if qr.BaseURL != "" {
			baseURL = qr.BaseURL
		}
	}

	return newQRCodeService(size, level, baseURL)
}

func newQRCodeService(size int, errorCorrectionLevel, baseURL string) (*qrcodeService, error) {
	inviteURL, err := url.Parse(baseURL)
	if err != nil || inviteURL.Scheme == "" || inviteURL.Host == "" {
		return nil, errors.Errorf("invalid invite base url %q", baseURL)
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(errorCorrectionLevel),
		inviteURL:            inviteURL,
	}, nil
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// inviteLink builds <baseUrl>?familyCode=<code>, keeping any query already on the base.
func (s *qrcodeService) inviteLink(familyCode string) string {
	link := *s.inviteURL
	query := link.Query()
	query.Set(familyCodeParam, familyCode)
	link.RawQuery = query.Encode()

	return link.String()
}

// GenerateFamilyInviteQR renders the join link for familyCode as a PNG
func (s *qrcodeService) GenerateFamilyInviteQR(familyCode string) ([]byte, error) {
	if strings.TrimSpace(familyCode) == "" {
		return nil, errors.New("family code must not be empty")
	}

	qrCode, err := qrcode.New(s.inviteLink(familyCode), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseFamilyInviteQR returns the family code of a scanned join link
func (s *qrcodeService) ParseFamilyInviteQR(qrData string) (string, error) {
	link, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return "", errors.Wrap(err, "failed to parse invite link")
	}

	if link.Host != s.inviteURL.Host || link.Path != s.inviteURL.Path {
		return "", errors.Errorf("not a family invite link: %s", qrData)
	}

	familyCode := link.Query().Get(familyCodeParam)
	if familyCode == "" {
		return "", errors.New("invite link has no family code")
	}

	return familyCode, nil
}
