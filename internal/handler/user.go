package handler

import (
	"net/http"

	"estatehub/internal/model"
	"estatehub/internal/service"
	"estatehub/pkg/util"

	"github.com/gin-gonic/gin"
)

// UserHandler handles account HTTP requests
type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// emailParam normalizes the :email route parameter, writing a 400 itself
// when the value is not an address.
func emailParam(c *gin.Context) (string, bool) {
	email, err := util.NormalizeEmail(c.Param("email"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("invalid email", err.Error()))
		return "", false
	}
	return email, true
}

// List handles GET /users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Get handles GET /users/:email
func (h *UserHandler) Get(c *gin.Context) {
	email, ok := emailParam(c)
	if !ok {
		return
	}
	user, err := h.users.GetByEmail(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetRole handles GET /users/:email/role
func (h *UserHandler) GetRole(c *gin.Context) {
	email, ok := emailParam(c)
	if !ok {
		return
	}
	role, err := h.users.GetRole(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": role})
}

// RecordLogin handles POST /users
func (h *UserHandler) RecordLogin(c *gin.Context) {
	var user model.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}
	email, err := util.NormalizeEmail(user.Email)
	if err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("invalid email", err.Error()))
		return
	}
	user.Email = email

	saved, created, err := h.users.RecordLogin(c.Request.Context(), &user)
	if err != nil {
		respondError(c, err)
		return
	}
	if created {
		c.JSON(http.StatusCreated, model.NewSuccessResponse("New User created", saved))
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("User log in updated", saved))
}

// SetRole handles PUT /users/:email/role
func (h *UserHandler) SetRole(c *gin.Context) {
	email, ok := emailParam(c)
	if !ok {
		return
	}
	var req model.RoleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}
	if err := h.users.SetRole(c.Request.Context(), email, req.Role); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Role updated", nil))
}

// MarkFraud handles PUT /users/:email/fraud
func (h *UserHandler) MarkFraud(c *gin.Context) {
	email, ok := emailParam(c)
	if !ok {
		return
	}
	removed, err := h.users.MarkFraud(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Marked as fraud and properties removed",
		gin.H{"propertiesRemoved": removed}))
}

// Update handles PUT /users/:email
func (h *UserHandler) Update(c *gin.Context) {
	email, ok := emailParam(c)
	if !ok {
		return
	}
	var req model.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}
	if err := h.users.UpdateProfile(c.Request.Context(), email, req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("User updated", nil))
}

// Delete handles DELETE /users/:email
func (h *UserHandler) Delete(c *gin.Context) {
	email, ok := emailParam(c)
	if !ok {
		return
	}
	if err := h.users.Delete(c.Request.Context(), email); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("User deleted", nil))
}
