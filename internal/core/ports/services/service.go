package services

// ServiceContainer groups the service implementations handed to the HTTP
// layer at startup.
type ServiceContainer struct {
	Calculation CalculationSvc
	Currency    CurrencyConverterSvc
	Account     AccountSvcFacade
	Trade       TradeSvcFacade
	Transfer    TransferSvcFacade
	Analytics   AnalyticsSvcFacade
}
