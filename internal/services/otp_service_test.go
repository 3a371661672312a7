package services

import (
	"errors"
	"testing"
	"time"

	"employee_voting_system/internal/db/models"
	mock_repositories "employee_voting_system/internal/db/repositories/mocks"
	"employee_voting_system/internal/shared"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var otpNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestIssue_StoresCodeWithExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mock_repositories.NewMockUserRepository(ctrl)
	user := &models.User{ID: 1, Email: "alice@example.com"}

	userRepo.EXPECT().Update(user).Return(user, nil)

	service := NewOTPService(userRepo)

	code, err := service.Issue(user, otpNow)
	assert.NoError(t, err)
	assert.Len(t, code, 6)
	assert.Equal(t, code, user.OTP)
	assert.Equal(t, otpNow.Add(5*time.Minute), user.OTPExpiresAt)
}

func TestIssue_ReissueOverwritesPreviousCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mock_repositories.NewMockUserRepository(ctrl)
	user := &models.User{ID: 1, OTP: "111111", OTPExpiresAt: otpNow.Add(time.Minute)}

	userRepo.EXPECT().Update(user).Return(user, nil)

	service := NewOTPService(userRepo)

	code, err := service.Issue(user, otpNow)
	assert.NoError(t, err)
	assert.Equal(t, code, user.OTP)
}

func TestIssue_UpdateFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mock_repositories.NewMockUserRepository(ctrl)
	user := &models.User{ID: 1}

	databaseErr := errors.New("database error")
	userRepo.EXPECT().Update(user).Return(nil, databaseErr)

	service := NewOTPService(userRepo)

	_, err := service.Issue(user, otpNow)
	assert.ErrorIs(t, err, databaseErr)
}

func TestVerify_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mock_repositories.NewMockUserRepository(ctrl)
	user := &models.User{ID: 1, OTP: "123456", OTPExpiresAt: otpNow.Add(time.Minute)}

	userRepo.EXPECT().Update(user).Return(user, nil)

	service := NewOTPService(userRepo)

	err := service.Verify(user, "123456", otpNow)
	assert.NoError(t, err)
	assert.Empty(t, user.OTP)
	assert.Equal(t, otpNow, user.LastLogin)
}

func TestVerify_WrongCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mock_repositories.NewMockUserRepository(ctrl)
	user := &models.User{ID: 1, OTP: "123456", OTPExpiresAt: otpNow.Add(time.Minute)}

	service := NewOTPService(userRepo)

	err := service.Verify(user, "654321", otpNow)
	assert.ErrorIs(t, err, shared.ErrInvalidOTP)
	assert.Equal(t, "123456", user.OTP)
}

func TestVerify_ExpiredCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mock_repositories.NewMockUserRepository(ctrl)
	user := &models.User{ID: 1, OTP: "123456", OTPExpiresAt: otpNow.Add(-time.Second)}

	service := NewOTPService(userRepo)

	err := service.Verify(user, "123456", otpNow)
	assert.ErrorIs(t, err, shared.ErrInvalidOTP)
}

func TestVerify_ExpiryInstantIsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mock_repositories.NewMockUserRepository(ctrl)
	user := &models.User{ID: 1, OTP: "123456", OTPExpiresAt: otpNow}

	service := NewOTPService(userRepo)

	err := service.Verify(user, "123456", otpNow)
	assert.ErrorIs(t, err, shared.ErrInvalidOTP)
}

func TestVerify_NoCodeIssued(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mock_repositories.NewMockUserRepository(ctrl)
	user := &models.User{ID: 1}

	service := NewOTPService(userRepo)

	err := service.Verify(user, "", otpNow)
	assert.ErrorIs(t, err, shared.ErrInvalidOTP)
}
