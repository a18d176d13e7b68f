package repositories

// RepositoryProvider groups the repository implementations handed to the
// service layer at startup.
type RepositoryProvider struct {
	AccountRepo  AccountRepositoryFacade
	TradeRepo    TradeRepositoryFacade
	RateRepo     CurrencyRateRepositoryFacade
	TransferRepo TransferRepositoryFacade
}
