package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"

	"users-service/internal/usecase/user"
	"users-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	uc  user.Usecase
	log *zap.Logger
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(uc user.Usecase, log *zap.Logger) *UserHandler {
	return &UserHandler{
		uc:  uc,
		log: log,
	}
}

// CreateUserRequest represents the HTTP request body for creating a user.
// Fields are not validated: any JSON value is accepted and stringified,
// absent or null fields arrive as empty strings.
type CreateUserRequest struct {
	Name  any `json:"name"`
	Email any `json:"email"`
}

// UserResponse represents the HTTP response for user data
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	log := logger.WithContext(c.Request.Context(), h.log)

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Warn("Unparseable create user body", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_body",
			Message: "Request body must be a JSON object",
		})
		return
	}

	resp, err := h.uc.CreateUser(c.Request.Context(), user.CreateUserRequest{
		Name:  stringify(req.Name),
		Email: stringify(req.Email),
	})
	if err != nil {
		log.Error("CreateUser failed", zap.Error(err))
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toResponse(*resp))
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.uc.ListUsers(c.Request.Context())
	if err != nil {
		logger.WithContext(c.Request.Context(), h.log).Error("ListUsers failed", zap.Error(err))
		h.handleError(c, err)
		return
	}

	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = toResponse(u)
	}

	c.JSON(http.StatusOK, out)
}

// handleError records err on the context and answers with a generic server error.
// Storage failures are not mapped to specific statuses.
func (h *UserHandler) handleError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred",
	})
}

// stringify renders a decoded JSON value as the string that gets stored.
func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		// plain digits below 1e21, exponent form above
		if math.Abs(val) < 1e21 {
			return strconv.FormatFloat(val, 'f', -1, 64)
		}
		return strconv.FormatFloat(val, 'g', -1, 64)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(b)
	}
}

func toResponse(u user.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}
