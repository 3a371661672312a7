package httpapi

import (
	"net/http"
	"time"

	"employee_voting_system/configs"
	"employee_voting_system/internal/db/models"
	"employee_voting_system/internal/db/repositories"
	"employee_voting_system/internal/notify"
	"employee_voting_system/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	config         configs.HTTP
	userRepository repositories.UserRepository
	signupService  services.SignupService
	otpService     services.OTPService
	notifier       notify.Notifier
	logger         *zap.SugaredLogger
}

func NewAuthHandler(
	config configs.HTTP,
	userRepository repositories.UserRepository,
	signupService services.SignupService,
	otpService services.OTPService,
	notifier notify.Notifier,
	logger *zap.SugaredLogger,
) *AuthHandler {
	return &AuthHandler{
		config:         config,
		userRepository: userRepository,
		signupService:  signupService,
		otpService:     otpService,
		notifier:       notifier,
		logger:         logger,
	}
}

type signupRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	RefName    string `json:"ref_name"`
	EmployeeID string `json:"employee_id"`
	BirthDate  string `json:"birth_date"`
}

// Signup handles POST /api/auth/signup. The account only becomes usable
// after an admin approves the request.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "birth date must be a valid date (YYYY-MM-DD)"})
		return
	}

	request, err := h.signupService.Submit(&models.PendingUser{
		Name:       req.Name,
		Email:      req.Email,
		RefName:    req.RefName,
		EmployeeID: req.EmployeeID,
		BirthDate:  birthDate,
	}, time.Now().UTC())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Signup request submitted successfully. Please wait for admin approval.",
		"request": gin.H{
			"id":           request.ID,
			"employee_id":  request.EmployeeID,
			"status":       request.Status,
			"submitted_at": request.CreatedAt,
		},
	})
}

type sendOTPRequest struct {
	Email string `json:"email"`
}

// SendOTP handles POST /api/auth/send-otp. The response is the same
// whether or not the email exists, so the endpoint cannot be used to
// probe accounts.
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req sendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email is required"})
		return
	}

	user, err := h.userRepository.GetOneByEmail(req.Email)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if user != nil && user.IsActive {
		code, err := h.otpService.Issue(user, time.Now().UTC())
		if err != nil {
			respondError(c, h.logger, err)
			return
		}

		if err := h.notifier.OTPIssued(user.Email, code); err != nil {
			h.logger.Errorw("failed to deliver otp", "error", err, "user_id", user.ID)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "If the account exists, a verification code has been sent."})
}

type signinRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// Signin handles POST /api/auth/signin: verifies the one-time code and
// issues the session token.
func (h *AuthHandler) Signin(c *gin.Context) {
	var req signinRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.OTP == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email and otp are required"})
		return
	}

	user, err := h.userRepository.GetOneByEmail(req.Email)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid email or otp"})
		return
	}
	if !user.IsActive {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "user account is not active"})
		return
	}

	if err := h.otpService.Verify(user, req.OTP, time.Now().UTC()); err != nil {
		respondError(c, h.logger, err)
		return
	}

	token, err := GenerateToken(user, []byte(h.config.JWTSecret), h.config.TokenTTL)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(authCookieName, token, int(h.config.TokenTTL.Seconds()), "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"message": "Signin successful",
		"token":   token,
		"user": gin.H{
			"id":          user.ID,
			"name":        user.Name,
			"employee_id": user.EmployeeID,
			"email":       user.Email,
		},
		"expires_at": time.Now().Add(h.config.TokenTTL).UTC(),
	})
}

// Signout handles POST /api/auth/signout by expiring the auth cookie.
// Bearer tokens stay valid until their expiry; only the cookie session
// is dropped.
func (h *AuthHandler) Signout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(authCookieName, "", -1, "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{"message": "Signed out successfully"})
}
