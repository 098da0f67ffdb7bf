package handlers

import (
	"errors"
	"net/http"

	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/models"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	UserService user.UserService
}

func NewUserHandler(userService user.UserService) *UserHandler {
	return &UserHandler{UserService: userService}
}

// UpsertUserHandler handles PUT /user/:email.
func (h *UserHandler) UpsertUserHandler(c *gin.Context) {
	var req models.UserUpsertRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid user payload", err.Error())
			return
		}
	}

	resp, err := h.UserService.UpsertUser(c.Request.Context(), c.Param("email"), req)
	if err != nil {
		if errors.Is(err, user.ErrInvalidEmail) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid email", err.Error())
			return
		}
		getLogger(c).Error("Failed to upsert user", zap.String("email", c.Param("email")), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save user", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetAllUsersHandler handles GET /users.
func (h *UserHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := h.UserService.GetAllUsers(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch users", err.Error())
		return
	}
	c.JSON(http.StatusOK, users)
}

// CheckAdminHandler handles GET /admin/:email.
func (h *UserHandler) CheckAdminHandler(c *gin.Context) {
	isAdmin, err := h.UserService.IsAdmin(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to check role", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": isAdmin})
}

// MakeAdminHandler handles PUT /user/admin/:email.
func (h *UserHandler) MakeAdminHandler(c *gin.Context) {
	email := c.Param("email")
	if err := h.UserService.MakeAdmin(c.Request.Context(), email); err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "User not found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update role", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"email": email, "role": models.RoleAdmin})
}
