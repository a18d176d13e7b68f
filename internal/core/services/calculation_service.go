package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tradetrack/tradetrack_backend/internal/apperrors"
	"github.com/tradetrack/tradetrack_backend/internal/core/domain"
	portssvc "github.com/tradetrack/tradetrack_backend/internal/core/ports/services"
)

var (
	// standardLotSize is the fixed forex lot of 100,000 base-currency units.
	standardLotSize = decimal.NewFromInt(100000)

	hundred          = decimal.NewFromInt(100)
	pipSizeThreshold = decimal.NewFromInt(10)
	pipSizeJPY       = decimal.NewFromFloat(0.01)
	pipSizeDefault   = decimal.NewFromFloat(0.0001)
)

// calculationService implements the pure trading calculators. All arithmetic
// is decimal; rounding happens only on the final outputs (2 decimals, pips 1).
type calculationService struct{}

// NewCalculationService creates a new CalculationSvc.
func NewCalculationService() portssvc.CalculationSvc {
	return &calculationService{}
}

var _ portssvc.CalculationSvc = (*calculationService)(nil)

// pipSizeFor selects the pip size for a quoted price. Quote values above 10
// are treated as JPY-style pairs (1 pip = 0.01). A domain approximation
// carried over for compatibility, not a general FX rule.
func pipSizeFor(price decimal.Decimal) decimal.Decimal {
	if price.GreaterThan(pipSizeThreshold) {
		return pipSizeJPY
	}
	return pipSizeDefault
}

func (s *calculationService) CalculatePositionSize(accountSize, riskPercentage, entryPrice, stopLoss decimal.Decimal, leverage int) (*domain.PositionSizeResult, error) {
	if leverage == 0 {
		leverage = 1
	}
	if leverage < 1 {
		return nil, fmt.Errorf("%w: leverage must be at least 1", apperrors.ErrValidation)
	}
	if accountSize.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: account size must be positive", apperrors.ErrValidation)
	}
	if riskPercentage.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: risk percentage must be positive", apperrors.ErrValidation)
	}
	if entryPrice.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: entry price must be positive", apperrors.ErrValidation)
	}
	if stopLoss.Equal(entryPrice) {
		return nil, fmt.Errorf("%w: stop loss cannot equal entry price", apperrors.ErrValidation)
	}

	riskAmount := accountSize.Mul(riskPercentage).Div(hundred)

	pipSize := pipSizeFor(entryPrice)
	pips := entryPrice.Sub(stopLoss).Abs().Div(pipSize)

	// Pip value of one standard lot in the quote currency.
	pipValuePerLot := pipSize.Div(entryPrice).Mul(standardLotSize)

	positionSizeLots := riskAmount.Div(pips.Mul(pipValuePerLot))
	lev := decimal.NewFromInt(int64(leverage))
	leveragedSize := positionSizeLots.Mul(lev)

	marginRequired := leveragedSize.Mul(standardLotSize).Mul(entryPrice).Div(lev)
	pipValue := leveragedSize.Mul(pipValuePerLot).Mul(standardLotSize)

	return &domain.PositionSizeResult{
		PositionSize:   leveragedSize.Round(2),
		RiskAmount:     riskAmount.Round(2),
		PipValue:       pipValue.Round(2),
		Pips:           pips.Round(1),
		LeverageUsed:   leverage,
		MarginRequired: marginRequired.Round(2),
	}, nil
}

func (s *calculationService) CalculateProfitLoss(entryPrice, exitPrice, positionSize decimal.Decimal, direction domain.TradeDirection, leverage int) (*domain.ProfitLossResult, error) {
	if leverage == 0 {
		leverage = 1
	}
	if leverage < 1 {
		return nil, fmt.Errorf("%w: leverage must be at least 1", apperrors.ErrValidation)
	}
	if entryPrice.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: entry price must be positive", apperrors.ErrValidation)
	}
	if positionSize.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: position size must be positive", apperrors.ErrValidation)
	}
	if !direction.Valid() {
		return nil, fmt.Errorf("%w: direction must be long or short", apperrors.ErrValidation)
	}

	var priceDiff decimal.Decimal
	if direction == domain.Long {
		priceDiff = exitPrice.Sub(entryPrice)
	} else {
		priceDiff = entryPrice.Sub(exitPrice)
	}

	pipSize := pipSizeFor(entryPrice)
	pips := priceDiff.Div(pipSize)

	lev := decimal.NewFromInt(int64(leverage))
	positionValue := positionSize.Mul(standardLotSize)
	profitLoss := priceDiff.Div(entryPrice).Mul(positionValue).Mul(lev)

	marginUsed := positionSize.Mul(standardLotSize).Mul(entryPrice).Div(lev)
	percentage := profitLoss.Div(marginUsed).Mul(hundred)

	return &domain.ProfitLossResult{
		ProfitLoss: profitLoss.Round(2),
		Pips:       pips.Round(1),
		Percentage: percentage.Round(2),
	}, nil
}

func (s *calculationService) CalculateRiskReward(entryPrice, stopLoss, takeProfit decimal.Decimal, direction domain.TradeDirection) (*domain.RiskRewardResult, error) {
	if !direction.Valid() {
		return nil, fmt.Errorf("%w: direction must be long or short", apperrors.ErrValidation)
	}

	pipSize := pipSizeFor(entryPrice)

	var riskPips, rewardPips decimal.Decimal
	if direction == domain.Long {
		riskPips = entryPrice.Sub(stopLoss).Div(pipSize)
		rewardPips = takeProfit.Sub(entryPrice).Div(pipSize)
	} else {
		riskPips = stopLoss.Sub(entryPrice).Div(pipSize)
		rewardPips = entryPrice.Sub(takeProfit).Div(pipSize)
	}

	if riskPips.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: stop loss must be on the losing side of the entry price", apperrors.ErrValidation)
	}
	if rewardPips.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: take profit must be on the winning side of the entry price", apperrors.ErrValidation)
	}

	// The breakeven win rate comes from the exact ratio. The rounded pips
	// can collapse to zero for sub-pip distances and must not be divided.
	ratio := rewardPips.Div(riskPips)
	breakeven, err := s.CalculateBreakevenWinRate(ratio)
	if err != nil {
		return nil, err
	}

	return &domain.RiskRewardResult{
		Ratio:            "1:" + ratio.StringFixed(2),
		RiskPips:         riskPips.Round(1),
		RewardPips:       rewardPips.Round(1),
		BreakevenWinRate: breakeven,
	}, nil
}

func (s *calculationService) CalculateBreakevenWinRate(riskRewardRatio decimal.Decimal) (decimal.Decimal, error) {
	if riskRewardRatio.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: risk reward ratio must be positive", apperrors.ErrValidation)
	}
	one := decimal.NewFromInt(1)
	return hundred.Div(one.Add(riskRewardRatio)).Round(2), nil
}

// CalculateLiquidationPrice estimates where a leveraged position is closed
// out. Single-factor model: real liquidation depends on exchange-specific
// parameters.
func (s *calculationService) CalculateLiquidationPrice(entryPrice decimal.Decimal, leverage int, direction domain.TradeDirection, maintenanceMarginPct decimal.Decimal) (decimal.Decimal, error) {
	if leverage < 1 {
		return decimal.Zero, fmt.Errorf("%w: leverage must be at least 1", apperrors.ErrValidation)
	}
	if entryPrice.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: entry price must be positive", apperrors.ErrValidation)
	}
	if !direction.Valid() {
		return decimal.Zero, fmt.Errorf("%w: direction must be long or short", apperrors.ErrValidation)
	}

	lev := decimal.NewFromInt(int64(leverage))
	liqPct := hundred.Sub(maintenanceMarginPct).Div(lev).Div(hundred)

	one := decimal.NewFromInt(1)
	if direction == domain.Long {
		return entryPrice.Mul(one.Sub(liqPct)), nil
	}
	return entryPrice.Mul(one.Add(liqPct)), nil
}
