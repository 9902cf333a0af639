package handler

import (
	"net/http"

	"estatehub/internal/model"
	"estatehub/internal/repository"
	"estatehub/internal/service"

	"github.com/gin-gonic/gin"
)

// PropertyHandler handles listing HTTP requests
type PropertyHandler struct {
	properties *service.PropertyService
}

func NewPropertyHandler(properties *service.PropertyService) *PropertyHandler {
	return &PropertyHandler{properties: properties}
}

// List handles GET /properties
func (h *PropertyHandler) List(c *gin.Context) {
	q := repository.PropertySearch{
		Search:  c.Query("search"),
		SortBy:  c.Query("sortBy"),
		SortDir: c.Query("sort"),
	}
	properties, err := h.properties.List(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, properties)
}

// Advertised handles GET /advertised-properties
func (h *PropertyHandler) Advertised(c *gin.Context) {
	properties, err := h.properties.Advertised(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, properties)
}

// Get handles GET /properties/:id
func (h *PropertyHandler) Get(c *gin.Context) {
	property, err := h.properties.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, property)
}

// ByAgent handles GET /properties/agent/:email
func (h *PropertyHandler) ByAgent(c *gin.Context) {
	email, ok := emailParam(c)
	if !ok {
		return
	}
	properties, err := h.properties.ByAgent(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, properties)
}

// Create handles POST /properties
func (h *PropertyHandler) Create(c *gin.Context) {
	var property model.Property
	if err := c.ShouldBindJSON(&property); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}
	if property.AgentEmail == "" {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("agent_email is required", ""))
		return
	}
	created, err := h.properties.Create(c.Request.Context(), &property)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update handles PATCH /properties/:id
func (h *PropertyHandler) Update(c *gin.Context) {
	var req model.PropertyUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}
	if err := h.properties.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Property updated", nil))
}

// SetStatus handles PATCH /properties/update/:id. The filter is the path id.
func (h *PropertyHandler) SetStatus(c *gin.Context) {
	var req model.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}
	if err := h.properties.SetStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Status updated", nil))
}

// Verify handles PATCH /properties/verify/:id
func (h *PropertyHandler) Verify(c *gin.Context) {
	if err := h.properties.Verify(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Property verified", nil))
}

// Reject handles PATCH /properties/reject/:id
func (h *PropertyHandler) Reject(c *gin.Context) {
	if err := h.properties.Reject(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Property rejected", nil))
}

// Advertise handles PATCH /advertise-property/:id
func (h *PropertyHandler) Advertise(c *gin.Context) {
	if err := h.properties.Advertise(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Property advertised", nil))
}

// Delete handles DELETE /properties/:id
func (h *PropertyHandler) Delete(c *gin.Context) {
	if err := h.properties.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Property deleted", nil))
}
