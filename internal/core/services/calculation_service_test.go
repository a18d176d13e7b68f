package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/tradetrack/tradetrack_backend/internal/apperrors"
	"github.com/tradetrack/tradetrack_backend/internal/core/domain"
	portssvc "github.com/tradetrack/tradetrack_backend/internal/core/ports/services"
	"github.com/tradetrack/tradetrack_backend/internal/core/services"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type CalculationServiceTestSuite struct {
	suite.Suite
	service portssvc.CalculationSvc
}

func (suite *CalculationServiceTestSuite) SetupTest() {
	suite.service = services.NewCalculationService()
}

// --- Position sizing ---

func (suite *CalculationServiceTestSuite) TestCalculatePositionSize_EURUSD() {
	result, err := suite.service.CalculatePositionSize(dec("2000"), dec("2"), dec("1.0845"), dec("1.0820"), 1)

	suite.Require().NoError(err)
	suite.True(result.RiskAmount.Equal(dec("40")), "risk amount: %s", result.RiskAmount)
	suite.True(result.Pips.Equal(dec("25")), "pips: %s", result.Pips)
	suite.True(result.PositionSize.Equal(dec("0.17")), "position size: %s", result.PositionSize)
	suite.True(result.PipValue.Equal(dec("160000")), "pip value: %s", result.PipValue)
	suite.True(result.MarginRequired.Equal(dec("18818.24")), "margin: %s", result.MarginRequired)
	suite.Equal(1, result.LeverageUsed)
}

func (suite *CalculationServiceTestSuite) TestCalculatePositionSize_JPYPipSize() {
	// Quote above 10 switches the pip size to 0.01.
	result, err := suite.service.CalculatePositionSize(dec("2000"), dec("2"), dec("155.50"), dec("155.00"), 1)

	suite.Require().NoError(err)
	suite.True(result.Pips.Equal(dec("50")), "pips: %s", result.Pips)
}

func (suite *CalculationServiceTestSuite) TestCalculatePositionSize_LeverageScalesSizeNotMargin() {
	unlevered, err := suite.service.CalculatePositionSize(dec("2000"), dec("2"), dec("1.0845"), dec("1.0820"), 1)
	suite.Require().NoError(err)

	levered, err := suite.service.CalculatePositionSize(dec("2000"), dec("2"), dec("1.0845"), dec("1.0820"), 10)
	suite.Require().NoError(err)

	// Ten times the exposure at the same margin outlay.
	suite.True(levered.MarginRequired.Equal(unlevered.MarginRequired), "margin: %s vs %s", levered.MarginRequired, unlevered.MarginRequired)
	suite.True(levered.PositionSize.GreaterThan(unlevered.PositionSize))
	suite.Equal(10, levered.LeverageUsed)
}

func (suite *CalculationServiceTestSuite) TestCalculatePositionSize_ZeroLeverageDefaultsToOne() {
	result, err := suite.service.CalculatePositionSize(dec("2000"), dec("2"), dec("1.0845"), dec("1.0820"), 0)

	suite.Require().NoError(err)
	suite.Equal(1, result.LeverageUsed)
}

func (suite *CalculationServiceTestSuite) TestCalculatePositionSize_InvalidInputs() {
	cases := []struct {
		name                                        string
		accountSize, riskPct, entryPrice, stopLoss  string
		leverage                                    int
	}{
		{"zero account size", "0", "2", "1.0845", "1.0820", 1},
		{"negative risk", "2000", "-1", "1.0845", "1.0820", 1},
		{"zero entry price", "2000", "2", "0", "1.0820", 1},
		{"stop equals entry", "2000", "2", "1.0845", "1.0845", 1},
		{"negative leverage", "2000", "2", "1.0845", "1.0820", -5},
	}
	for _, tc := range cases {
		_, err := suite.service.CalculatePositionSize(dec(tc.accountSize), dec(tc.riskPct), dec(tc.entryPrice), dec(tc.stopLoss), tc.leverage)
		suite.ErrorIs(err, apperrors.ErrValidation, tc.name)
	}
}

// --- Profit / loss ---

func (suite *CalculationServiceTestSuite) TestCalculateProfitLoss_LongWin() {
	result, err := suite.service.CalculateProfitLoss(dec("1.0845"), dec("1.0945"), dec("1"), domain.Long, 1)

	suite.Require().NoError(err)
	suite.True(result.ProfitLoss.Equal(dec("922.08")), "pnl: %s", result.ProfitLoss)
	suite.True(result.Pips.Equal(dec("100")), "pips: %s", result.Pips)
	suite.True(result.Percentage.Equal(dec("0.85")), "pct: %s", result.Percentage)
}

func (suite *CalculationServiceTestSuite) TestCalculateProfitLoss_DirectionMirrors() {
	long, err := suite.service.CalculateProfitLoss(dec("1.0845"), dec("1.0820"), dec("1"), domain.Long, 1)
	suite.Require().NoError(err)

	short, err := suite.service.CalculateProfitLoss(dec("1.0845"), dec("1.0820"), dec("1"), domain.Short, 1)
	suite.Require().NoError(err)

	suite.True(long.ProfitLoss.IsNegative())
	suite.True(short.ProfitLoss.Equal(long.ProfitLoss.Neg()), "short: %s long: %s", short.ProfitLoss, long.ProfitLoss)
	suite.True(short.Pips.Equal(long.Pips.Neg()))
}

func (suite *CalculationServiceTestSuite) TestCalculateProfitLoss_LeverageAmplifiesReturn() {
	levered, err := suite.service.CalculateProfitLoss(dec("1.0845"), dec("1.0945"), dec("1"), domain.Long, 10)
	suite.Require().NoError(err)

	unlevered, err := suite.service.CalculateProfitLoss(dec("1.0845"), dec("1.0945"), dec("1"), domain.Long, 1)
	suite.Require().NoError(err)

	suite.True(levered.ProfitLoss.GreaterThan(unlevered.ProfitLoss))
	suite.True(levered.Percentage.GreaterThan(unlevered.Percentage))
}

func (suite *CalculationServiceTestSuite) TestCalculateProfitLoss_InvalidDirection() {
	_, err := suite.service.CalculateProfitLoss(dec("1.0845"), dec("1.0945"), dec("1"), domain.TradeDirection("sideways"), 1)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CalculationServiceTestSuite) TestCalculateProfitLoss_ZeroLeverageDefaultsToOne() {
	defaulted, err := suite.service.CalculateProfitLoss(dec("1.0845"), dec("1.0945"), dec("1"), domain.Long, 0)
	suite.Require().NoError(err)

	explicit, err := suite.service.CalculateProfitLoss(dec("1.0845"), dec("1.0945"), dec("1"), domain.Long, 1)
	suite.Require().NoError(err)

	suite.True(defaulted.ProfitLoss.Equal(explicit.ProfitLoss))
	suite.True(defaulted.Percentage.Equal(explicit.Percentage))
}

func (suite *CalculationServiceTestSuite) TestCalculateProfitLoss_NonPositivePositionSize() {
	// A zero size would zero the margin and blow up the return-on-margin
	// division; it must be rejected up front.
	_, err := suite.service.CalculateProfitLoss(dec("1.0845"), dec("1.0945"), dec("0"), domain.Long, 1)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.CalculateProfitLoss(dec("1.0845"), dec("1.0945"), dec("-1"), domain.Long, 1)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- Risk / reward ---

func (suite *CalculationServiceTestSuite) TestCalculateRiskReward_Long() {
	result, err := suite.service.CalculateRiskReward(dec("1.0845"), dec("1.0820"), dec("1.0895"), domain.Long)

	suite.Require().NoError(err)
	suite.Equal("1:2.00", result.Ratio)
	suite.True(result.RiskPips.Equal(dec("25")), "risk pips: %s", result.RiskPips)
	suite.True(result.RewardPips.Equal(dec("50")), "reward pips: %s", result.RewardPips)
	suite.True(result.BreakevenWinRate.Equal(dec("33.33")), "breakeven: %s", result.BreakevenWinRate)
}

func (suite *CalculationServiceTestSuite) TestCalculateRiskReward_SubPipDistances() {
	// Risk and reward distances below a tenth of a pip round to 0.0 in the
	// displayed pips; the ratio and breakeven still come from the exact values.
	result, err := suite.service.CalculateRiskReward(dec("1.0845001"), dec("1.0845"), dec("1.0845003"), domain.Long)

	suite.Require().NoError(err)
	suite.Equal("1:2.00", result.Ratio)
	suite.True(result.RiskPips.IsZero(), "risk pips: %s", result.RiskPips)
	suite.True(result.RewardPips.IsZero(), "reward pips: %s", result.RewardPips)
	suite.True(result.BreakevenWinRate.Equal(dec("33.33")), "breakeven: %s", result.BreakevenWinRate)
}

func (suite *CalculationServiceTestSuite) TestCalculateRiskReward_TargetsOnWrongSide() {
	// Long with the stop above entry.
	_, err := suite.service.CalculateRiskReward(dec("1.0845"), dec("1.0895"), dec("1.0945"), domain.Long)
	suite.ErrorIs(err, apperrors.ErrValidation)

	// Long with the take profit below entry.
	_, err = suite.service.CalculateRiskReward(dec("1.0845"), dec("1.0820"), dec("1.0800"), domain.Long)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CalculationServiceTestSuite) TestCalculateRiskReward_Short() {
	result, err := suite.service.CalculateRiskReward(dec("1.0845"), dec("1.0895"), dec("1.0745"), domain.Short)

	suite.Require().NoError(err)
	suite.Equal("1:2.00", result.Ratio)
}

func (suite *CalculationServiceTestSuite) TestCalculateRiskReward_StopAtEntry() {
	_, err := suite.service.CalculateRiskReward(dec("1.0845"), dec("1.0845"), dec("1.0895"), domain.Long)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- Breakeven win rate ---

func (suite *CalculationServiceTestSuite) TestCalculateBreakevenWinRate() {
	rate, err := suite.service.CalculateBreakevenWinRate(dec("2"))
	suite.Require().NoError(err)
	suite.True(rate.Equal(dec("33.33")), "rate: %s", rate)

	rate, err = suite.service.CalculateBreakevenWinRate(dec("1"))
	suite.Require().NoError(err)
	suite.True(rate.Equal(dec("50")), "rate: %s", rate)
}

func (suite *CalculationServiceTestSuite) TestCalculateBreakevenWinRate_NonPositiveRatio() {
	_, err := suite.service.CalculateBreakevenWinRate(dec("0"))
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- Liquidation price ---

func (suite *CalculationServiceTestSuite) TestCalculateLiquidationPrice() {
	long, err := suite.service.CalculateLiquidationPrice(dec("100"), 10, domain.Long, dec("0.5"))
	suite.Require().NoError(err)
	suite.True(long.Equal(dec("90.05")), "long: %s", long)

	short, err := suite.service.CalculateLiquidationPrice(dec("100"), 10, domain.Short, dec("0.5"))
	suite.Require().NoError(err)
	suite.True(short.Equal(dec("109.95")), "short: %s", short)
}

func (suite *CalculationServiceTestSuite) TestCalculateLiquidationPrice_InvalidLeverage() {
	_, err := suite.service.CalculateLiquidationPrice(dec("100"), 0, domain.Long, decimal.Zero)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestCalculationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CalculationServiceTestSuite))
}
