package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/mindnotes/internal/adapters/http/dto"
	"github.com/jsamuelsen/mindnotes/internal/app"
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

// ListQuotes handles GET /api/v1/quotes.
//
// @Summary List quotes
// @Tags quotes
// @Produce json
// @Success 200 {object} dto.QuoteListResponse
// @Router /api/v1/quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.service.ListQuotes(c.Request.Context())
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteListResponse(quotes))
}

// QuoteOfTheDay handles GET /api/v1/quotes/today.
// The same quote is returned all day; an empty collection yields the
// placeholder text with placeholder=true.
//
// @Summary Get the quote of the day
// @Tags quotes
// @Produce json
// @Success 200 {object} dto.QuoteOfTheDayResponse
// @Router /api/v1/quotes/today [get]
func (h *QuoteHandler) QuoteOfTheDay(c *gin.Context) {
	text, err := h.service.QuoteOfTheDay(c.Request.Context())
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteOfTheDayResponse(text))
}

// AddQuote handles POST /api/v1/quotes.
//
// @Summary Add a quote
// @Tags quotes
// @Accept json
// @Produce json
// @Param body body dto.AddQuoteRequest true "Quote text"
// @Success 201 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/quotes [post]
func (h *QuoteHandler) AddQuote(c *gin.Context) {
	var req dto.AddQuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindError(c, err)
		return
	}

	quote, err := h.service.AddQuote(c.Request.Context(), req.Text)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.QuoteResponse{Text: quote.Content})
}

// DeleteQuote handles DELETE /api/v1/quotes. The first quote whose text
// equals the body text exactly is removed.
//
// @Summary Delete a quote by text
// @Tags quotes
// @Accept json
// @Param body body dto.DeleteQuoteRequest true "Exact quote text"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/quotes [delete]
func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	var req dto.DeleteQuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindError(c, err)
		return
	}

	if err := h.service.DeleteQuote(c.Request.Context(), req.Text); err != nil {
		dto.WriteError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RegisterQuoteRoutes registers quote routes on the given router group.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	quotes := rg.Group("/quotes")
	quotes.GET("", h.ListQuotes)
	quotes.GET("/today", h.QuoteOfTheDay)
	quotes.POST("", h.AddQuote)
	quotes.DELETE("", h.DeleteQuote)
}
