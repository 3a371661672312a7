package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"employee_voting_system/internal/db/models"
	"employee_voting_system/internal/db/repositories"
	"employee_voting_system/internal/shared"
)

const (
	otpDigits = 6
	otpTTL    = 5 * time.Minute
)

type otpService struct {
	userRepository repositories.UserRepository
}

type OTPService interface {
	Issue(user *models.User, now time.Time) (string, error)
	Verify(user *models.User, code string, now time.Time) error
}

func NewOTPService(userRepository repositories.UserRepository) OTPService {
	return &otpService{userRepository: userRepository}
}

// Issue generates a fresh code, persists it on the user and returns it
// for delivery. A reissue overwrites any previous code.
func (s *otpService) Issue(user *models.User, now time.Time) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", err
	}

	user.OTP = code
	user.OTPExpiresAt = now.Add(otpTTL)
	user.UpdatedAt = now

	if _, err := s.userRepository.Update(user); err != nil {
		return "", err
	}

	return code, nil
}

// Verify checks the submitted code against the stored one and clears it
// on success so a code can be redeemed once.
func (s *otpService) Verify(user *models.User, code string, now time.Time) error {
	if user.OTP == "" || user.OTP != code || !user.OTPExpiresAt.After(now) {
		return shared.ErrInvalidOTP
	}

	user.OTP = ""
	user.OTPExpiresAt = time.Time{}
	user.LastLogin = now
	user.UpdatedAt = now

	_, err := s.userRepository.Update(user)
	return err
}

func generateCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < otpDigits; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%0*d", otpDigits, n), nil
}
