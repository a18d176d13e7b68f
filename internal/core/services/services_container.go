package services

import (
	portsprov "github.com/tradetrack/tradetrack_backend/internal/core/ports/providers"
	portsrepo "github.com/tradetrack/tradetrack_backend/internal/core/ports/repositories"
	portssvc "github.com/tradetrack/tradetrack_backend/internal/core/ports/services"
	"github.com/tradetrack/tradetrack_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, rateProvider portsprov.RateProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Calculation = NewCalculationService()
	container.Currency = NewCurrencyService(repos.RateRepo, rateProvider, WithRateCacheTTL(cfg.RateCacheTTL))
	container.Account = NewAccountService(repos.AccountRepo)
	container.Trade = NewTradeService(repos.TradeRepo, container.Account, container.Calculation)
	container.Transfer = NewTransferService(repos.TransferRepo, container.Account, container.Currency)
	container.Analytics = NewAnalyticsService(repos.AccountRepo, repos.TradeRepo, container.Currency)

	return container
}
