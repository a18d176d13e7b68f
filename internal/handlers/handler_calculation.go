package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/tradetrack/tradetrack_backend/internal/apperrors"
	"github.com/tradetrack/tradetrack_backend/internal/core/domain"
	portssvc "github.com/tradetrack/tradetrack_backend/internal/core/ports/services"
	"github.com/tradetrack/tradetrack_backend/internal/dto"
	"github.com/tradetrack/tradetrack_backend/internal/middleware"
)

// defaultMaintenanceMarginPct applies when a liquidation request omits the
// maintenance margin.
var defaultMaintenanceMarginPct = decimal.NewFromFloat(0.5)

// calculationHandler handles HTTP requests for the trading calculators.
type calculationHandler struct {
	calculationService portssvc.CalculationSvc
}

// newCalculationHandler creates a new calculationHandler.
func newCalculationHandler(cs portssvc.CalculationSvc) *calculationHandler {
	return &calculationHandler{
		calculationService: cs,
	}
}

// registerCalculationRoutes registers the public calculator routes.
func registerCalculationRoutes(rg *gin.RouterGroup, calculationService portssvc.CalculationSvc) {
	h := newCalculationHandler(calculationService)

	calculators := rg.Group("/calculate")
	{
		calculators.POST("/position-size", h.calculatePositionSize)
		calculators.POST("/profit-loss", h.calculateProfitLoss)
		calculators.POST("/risk-reward", h.calculateRiskReward)
		calculators.POST("/liquidation-price", h.calculateLiquidationPrice)
	}
}

func (h *calculationHandler) calculatePositionSize(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PositionSizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CalculatePositionSize", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.calculationService.CalculatePositionSize(req.AccountSize, req.RiskPercentage, req.EntryPrice, req.StopLoss, req.Leverage)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error calculating position size", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to calculate position size", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate position size"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *calculationHandler) calculateProfitLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ProfitLossRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CalculateProfitLoss", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.calculationService.CalculateProfitLoss(req.EntryPrice, req.ExitPrice, req.PositionSize, domain.TradeDirection(req.Direction), req.Leverage)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error calculating profit/loss", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to calculate profit/loss", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate profit/loss"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *calculationHandler) calculateRiskReward(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RiskRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CalculateRiskReward", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.calculationService.CalculateRiskReward(req.EntryPrice, req.StopLoss, req.TakeProfit, domain.TradeDirection(req.Direction))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error calculating risk/reward", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to calculate risk/reward", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate risk/reward"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.RiskRewardResponse{
		Ratio:            result.Ratio,
		RiskPips:         result.RiskPips,
		RewardPips:       result.RewardPips,
		BreakevenWinRate: result.BreakevenWinRate,
	})
}

func (h *calculationHandler) calculateLiquidationPrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LiquidationPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CalculateLiquidationPrice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	maintenanceMargin := req.MaintenanceMarginPct
	if maintenanceMargin.IsZero() {
		maintenanceMargin = defaultMaintenanceMarginPct
	}

	price, err := h.calculationService.CalculateLiquidationPrice(req.EntryPrice, req.Leverage, domain.TradeDirection(req.Direction), maintenanceMargin)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error calculating liquidation price", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to calculate liquidation price", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate liquidation price"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.LiquidationPriceResponse{LiquidationPrice: price})
}
