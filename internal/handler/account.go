package handler

import (
	"net/http"

	"estatehub/internal/auth"
	"estatehub/internal/model"

	"github.com/gin-gonic/gin"
)

// AccountHandler manages identity-provider accounts
type AccountHandler struct {
	verifier auth.Verifier
}

func NewAccountHandler(verifier auth.Verifier) *AccountHandler {
	return &AccountHandler{verifier: verifier}
}

// DeleteIdentity handles DELETE /firebase-users/:uid
func (h *AccountHandler) DeleteIdentity(c *gin.Context) {
	uid := c.Param("uid")
	if uid == "" {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("uid is required", ""))
		return
	}
	if err := h.verifier.DeleteAccount(c.Request.Context(), uid); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Identity account deleted", nil))
}
