package country

// Registry is the read-only catalog of country configurations, built once at
// process start and injected wherever needed.
type Registry interface {
	FindByCode(code string) (Config, error)
	FindAll() []Config
	Currency(code string) (string, error)
	StatutoryBenefits(code string) ([]BenefitRule, error)
}
