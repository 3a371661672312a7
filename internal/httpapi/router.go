package httpapi

import (
	"employee_voting_system/configs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires the portal's HTTP surface: public auth endpoints,
// the authenticated voter surface and the admin dashboard.
func NewRouter(
	config configs.HTTP,
	authHandler *AuthHandler,
	userHandler *UserHandler,
	adminHandler *AdminHandler,
	logger *zap.SugaredLogger,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(logger))
	router.Use(RateLimit(config.RateLimitPerMin, config.RateLimitBurst))

	corsConfig := cors.DefaultConfig()
	if config.FrontendURL == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = []string{config.FrontendURL}
		corsConfig.AllowCredentials = true
	}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	secret := []byte(config.JWTSecret)

	auth := router.Group("/api/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/send-otp", authHandler.SendOTP)
		auth.POST("/signin", authHandler.Signin)
		auth.POST("/signout", authHandler.Signout)
	}

	user := router.Group("/api/user", RequireAuth(secret))
	{
		user.GET("/polls/active", userHandler.ActivePolls)
		user.GET("/polls/upcoming", userHandler.UpcomingPolls)
		user.POST("/polls/:pollID/candidates/:candidateID/vote", userHandler.CastVote)
		user.GET("/voted", userHandler.VotedHistory)
		user.PUT("/profile", userHandler.EditProfile)
	}

	admin := router.Group("/api/admin", RequireAuth(secret), RequireAdmin())
	{
		admin.GET("/requests", adminHandler.SignupRequests)
		admin.POST("/requests/:requestID/approve", adminHandler.ApproveRequest)
		admin.POST("/requests/:requestID/reject", adminHandler.RejectRequest)
		admin.POST("/polls", adminHandler.CreatePoll)
		admin.GET("/polls/ended", adminHandler.EndedPolls)
		admin.GET("/dashboard", adminHandler.Dashboard)
		admin.GET("/users", adminHandler.Users)
		admin.POST("/users", adminHandler.CreateUser)
		admin.GET("/users/names", adminHandler.UserNames)
		admin.PUT("/users/:userID", adminHandler.EditUser)
		admin.PATCH("/users/:userID/activation", adminHandler.ToggleUserActivation)
		admin.DELETE("/users/:userID", adminHandler.DeleteUser)
	}

	return router
}
