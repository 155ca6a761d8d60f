package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image/png"

	"billing-backend/internal/models"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

const totpIssuer = "Billing"

type TOTPService struct {
	Repo UserStore
}

func NewTOTPService(repo UserStore) *TOTPService {
	return &TOTPService{Repo: repo}
}

// GenerateSetup creates a new TOTP secret and QR code for a user. The
// secret is stored but 2FA stays disabled until the first code is
// verified through VerifyAndEnable.
func (s *TOTPService) GenerateSetup(ctx context.Context, user *models.User) (*models.TOTPSetupResponse, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: user.Email,
		Period:      30,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return nil, err
	}

	if err := s.Repo.SetTOTP(ctx, user.ID, key.Secret(), false); err != nil {
		return nil, err
	}

	qrImage, err := key.Image(200, 200)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, qrImage); err != nil {
		return nil, err
	}
	qrBase64 := base64.StdEncoding.EncodeToString(buf.Bytes())

	return &models.TOTPSetupResponse{
		Secret:      key.Secret(),
		QRCode:      "data:image/png;base64," + qrBase64,
		Issuer:      totpIssuer,
		AccountName: user.Email,
	}, nil
}

// VerifyAndEnable verifies a TOTP code and enables 2FA for the user
func (s *TOTPService) VerifyAndEnable(ctx context.Context, userID int, code string) error {
	user, err := s.Repo.Get(ctx, userID)
	if err != nil {
		return err
	}

	if user.TOTPSecret == "" {
		return errors.New("no 2FA setup in progress")
	}

	if !totp.Validate(code, user.TOTPSecret) {
		return errors.New("invalid verification code")
	}

	return s.Repo.SetTOTP(ctx, userID, user.TOTPSecret, true)
}

// Disable turns off 2FA after verifying a current code.
func (s *TOTPService) Disable(ctx context.Context, userID int, code string) error {
	user, err := s.Repo.Get(ctx, userID)
	if err != nil {
		return err
	}

	if !user.TOTPEnabled {
		return errors.New("2FA is not enabled")
	}

	if !totp.Validate(code, user.TOTPSecret) {
		return errors.New("invalid verification code")
	}

	return s.Repo.SetTOTP(ctx, userID, "", false)
}
