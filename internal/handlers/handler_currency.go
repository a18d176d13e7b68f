package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	portssvc "github.com/tradetrack/tradetrack_backend/internal/core/ports/services"
	"github.com/tradetrack/tradetrack_backend/internal/dto"
	"github.com/tradetrack/tradetrack_backend/internal/middleware"
)

// currencyHandler handles HTTP requests for exchange rate lookups.
type currencyHandler struct {
	currencyService portssvc.CurrencyConverterSvc
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencyConverterSvc) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers the public exchange rate routes.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencyConverterSvc) {
	h := newCurrencyHandler(currencyService)

	currency := rg.Group("/currency")
	{
		currency.GET("/rate/:from/:to", h.getRate)
	}
}

func isCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func (h *currencyHandler) getRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from := strings.ToUpper(c.Param("from"))
	to := strings.ToUpper(c.Param("to"))

	if !isCurrencyCode(from) || !isCurrencyCode(to) {
		logger.Warn("Invalid currency code in rate lookup", slog.String("from", from), slog.String("to", to))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency codes must be 3 letters"})
		return
	}

	rate := h.currencyService.GetRate(c.Request.Context(), from, to)

	c.JSON(http.StatusOK, dto.RateResponse{
		Rate: rate,
		From: from,
		To:   to,
	})
}
