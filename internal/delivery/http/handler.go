package http

import (
	"net/http"

	"github.com/cafevirtuel/backend/internal/domain"
	"github.com/cafevirtuel/backend/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

const serviceVersion = "1.0.0"

// Handler holds dependencies for HTTP handlers
type Handler struct {
	customizer *usecase.CustomizerService
	logger     *zap.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(customizer *usecase.CustomizerService, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		customizer: customizer,
		logger:     logger,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "cafevirtuel-backend",
		"version": serviceVersion,
	})
}

// productSummary is one entry of the product listing
type productSummary struct {
	Family string `json:"family"`
	Name   string `json:"name"`
}

// optionResponse is an option with its price ready for display
type optionResponse struct {
	ID          string                  `json:"id"`
	DisplayName string                  `json:"displayName"`
	Price       string                  `json:"price"`
	Display     string                  `json:"display"`
	Visual      domain.VisualAttributes `json:"visual"`
}

type groupResponse struct {
	Name      string               `json:"name"`
	Label     string               `json:"label"`
	Mode      domain.SelectionMode `json:"mode"`
	DefaultID string               `json:"defaultId,omitempty"`
	Options   []optionResponse     `json:"options"`
}

type productResponse struct {
	Family   string          `json:"family"`
	Name     string          `json:"name"`
	Currency string          `json:"currency"`
	Groups   []groupResponse `json:"groups"`
}

// ListProducts returns the configurable product families
func (h *Handler) ListProducts(c *gin.Context) {
	products := h.customizer.Products()

	out := make([]productSummary, 0, len(products))
	for _, p := range products {
		out = append(out, productSummary{Family: p.Family, Name: p.Name})
	}

	c.JSON(http.StatusOK, gin.H{"products": out})
}

// GetProduct returns one family's option tables with formatted prices
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.customizer.Product(c.Param("family"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	currency := h.customizer.Currency()
	resp := productResponse{
		Family:   product.Family,
		Name:     product.Name,
		Currency: currency,
		Groups:   make([]groupResponse, 0, len(product.Groups)),
	}
	for _, g := range product.Groups {
		group := groupResponse{
			Name:      g.Name,
			Label:     g.Label,
			Mode:      g.Mode,
			DefaultID: g.DefaultID,
			Options:   make([]optionResponse, 0, len(g.Options)),
		}
		for _, opt := range g.Options {
			group.Options = append(group.Options, toOptionResponse(currency, opt))
		}
		resp.Groups = append(resp.Groups, group)
	}

	c.JSON(http.StatusOK, resp)
}

// ListGroupOptions returns one group's options with formatted prices
func (h *Handler) ListGroupOptions(c *gin.Context) {
	options, err := h.customizer.GroupOptions(c.Param("family"), c.Param("group"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	currency := h.customizer.Currency()
	out := make([]optionResponse, 0, len(options))
	for _, opt := range options {
		out = append(out, toOptionResponse(currency, opt))
	}

	c.JSON(http.StatusOK, gin.H{"options": out})
}

// GetOption returns a single option of a group
func (h *Handler) GetOption(c *gin.Context) {
	opt, err := h.customizer.Option(c.Param("family"), c.Param("group"), c.Param("option"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOptionResponse(h.customizer.Currency(), opt))
}

func toOptionResponse(currency string, opt domain.Option) optionResponse {
	return optionResponse{
		ID:          opt.ID,
		DisplayName: opt.DisplayName,
		Price:       usecase.FormatPrice(opt.UnitPrice),
		Display:     usecase.FormatMoney(currency, opt.UnitPrice),
		Visual:      opt.Visual,
	}
}

// OpenSessionRequest opens a customizer screen for a family
type OpenSessionRequest struct {
	Family string `json:"family" binding:"required"`
}

// SelectSingleRequest chooses the option of a single-select group
type SelectSingleRequest struct {
	OptionID string `json:"optionId" binding:"required"`
}

// ToggleMultipleRequest includes or excludes an option of a multiple-select group
type ToggleMultipleRequest struct {
	OptionID string `json:"optionId" binding:"required"`
	Included *bool  `json:"included" binding:"required"`
}

// OpenSession creates a selection with every group on its default
func (h *Handler) OpenSession(c *gin.Context) {
	var req OpenSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, err, &req)
		return
	}

	view, err := h.customizer.OpenSession(c.Request.Context(), req.Family)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// GetSession returns a screen's selection and total
func (h *Handler) GetSession(c *gin.Context) {
	view, err := h.customizer.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// SelectSingle handles a single-choice event
func (h *Handler) SelectSingle(c *gin.Context) {
	var req SelectSingleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, err, &req)
		return
	}

	view, err := h.customizer.SelectSingle(c.Request.Context(), c.Param("id"), c.Param("group"), req.OptionID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// ToggleMultiple handles a multi-choice event
func (h *Handler) ToggleMultiple(c *gin.Context) {
	var req ToggleMultipleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondBindError(c, err, &req)
		return
	}

	view, err := h.customizer.ToggleMultiple(c.Request.Context(), c.Param("id"), c.Param("group"), req.OptionID, *req.Included)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// GetPrice returns the itemised price of a screen
func (h *Handler) GetPrice(c *gin.Context) {
	quote, err := h.customizer.Price(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

// GetScene returns the scene description of a screen, as JSON or as a
// protobuf Struct when the client asks for application/x-protobuf
func (h *Handler) GetScene(c *gin.Context) {
	scene, err := h.customizer.Scene(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	switch c.NegotiateFormat(binding.MIMEJSON, binding.MIMEPROTOBUF) {
	case binding.MIMEPROTOBUF:
		msg, err := sceneToStruct(scene)
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.ProtoBuf(http.StatusOK, msg)
	default:
		c.JSON(http.StatusOK, scene)
	}
}

// CloseSession discards a screen's selection
func (h *Handler) CloseSession(c *gin.Context) {
	if err := h.customizer.CloseSession(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
