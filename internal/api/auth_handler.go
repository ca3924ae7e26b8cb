package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/roomly/booking-backend/internal/auth"
	"github.com/roomly/booking-backend/internal/identity"
	"github.com/roomly/booking-backend/internal/pkg/response"
	"github.com/roomly/booking-backend/internal/user"
)

type AuthHandler struct {
	userService user.Service
	jwtManager  *auth.JWTManager
	holder      *identity.Holder
	logger      *zap.Logger
}

func NewAuthHandler(
	userService user.Service,
	jwtManager *auth.JWTManager,
	holder *identity.Holder,
	logger *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		jwtManager:  jwtManager,
		holder:      holder,
		logger:      logger,
	}
}

//
// POST /v1/auth/register
//

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	ctx := c.Request.Context()

	u, err := h.userService.Register(ctx, user.RegisterRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{
		User: NewUserResponse(u),
	})
}

//
// POST /v1/auth/login
//

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	ctx := c.Request.Context()

	u, err := h.userService.Login(ctx, req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	token, err := h.jwtManager.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	// Sign-in event: the holder resolves the profile exactly once per
	// identity change. Failure here must not fail the login itself.
	if h.holder != nil {
		if err := h.holder.Resolve(ctx, u.ID); err != nil {
			h.logger.Warn("identity resolve failed", zap.String("uid", u.ID), zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, LoginResponse{
		AccessToken: token,
		User:        NewUserResponse(u),
	})
}

//
// POST /v1/auth/logout
//

func (h *AuthHandler) Logout(c *gin.Context) {
	// Tokens are stateless; logout only signals the sign-out event to
	// identity observers.
	if h.holder != nil {
		h.holder.Clear()
	}
	c.Status(http.StatusNoContent)
}

//
// GET /v1/me
//

func (h *AuthHandler) Me(c *gin.Context) {
	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	ctx := c.Request.Context()

	u, err := h.userService.GetByID(ctx, userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, MeResponse{
		User: NewUserResponse(u),
	})
}
