package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-link-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-link-service/internal/app"
)

// QuoteHandler handles quote-related HTTP endpoints.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// ListQuotes handles GET /quotes.
// Returns every stored quote in insertion order; an empty store yields [].
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes := h.service.ListQuotes(c.Request.Context())

	c.JSON(http.StatusOK, dto.NewQuoteListResponse(quotes))
}

// GetRandomQuote handles GET /quote.
// Returns 404 when no quotes are stored.
func (h *QuoteHandler) GetRandomQuote(c *gin.Context) {
	quote, err := h.service.GetRandomQuote(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// GetQuoteByID handles GET /quotes/:id.
func (h *QuoteHandler) GetQuoteByID(c *gin.Context) {
	quote, err := h.service.GetQuoteByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// CreateQuote handles POST /quotes.
// Both text and speaker must be present in the body; empty strings are allowed.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req dto.CreateQuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleError(c, err)
		return
	}

	quote := h.service.AddQuote(c.Request.Context(), *req.Text, *req.Speaker)

	c.JSON(http.StatusCreated, dto.NewQuoteResponse(quote))
}

// RegisterQuoteRoutes registers quote routes on the given router group.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	rg.GET("/quotes", h.ListQuotes)
	rg.POST("/quotes", h.CreateQuote)
	rg.GET("/quotes/:id", h.GetQuoteByID)
	rg.GET("/quote", h.GetRandomQuote)
}
