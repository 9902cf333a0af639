package handler

import (
	"net/http"

	"estatehub/internal/model"
	"estatehub/internal/service"

	"github.com/gin-gonic/gin"
)

// WishlistHandler handles saved-property HTTP requests
type WishlistHandler struct {
	wishlist *service.WishlistService
}

func NewWishlistHandler(wishlist *service.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlist: wishlist}
}

// List handles GET /wishlist?email=
func (h *WishlistHandler) List(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("email query parameter is required", ""))
		return
	}
	entries, err := h.wishlist.ListByUser(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Get handles GET /wishlist/:id
func (h *WishlistHandler) Get(c *gin.Context) {
	entry, err := h.wishlist.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// Add handles POST /wishlist
func (h *WishlistHandler) Add(c *gin.Context) {
	var entry model.WishlistEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}
	created, err := h.wishlist.Add(c.Request.Context(), &entry)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Remove handles DELETE /wishlist/:id
func (h *WishlistHandler) Remove(c *gin.Context) {
	if err := h.wishlist.Remove(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Wishlist entry removed", nil))
}
