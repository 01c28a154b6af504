package country

import (
	"github.com/talenthq/payroll-backend-go/internal/domain/country"
)

// registry is an immutable in-process catalog; built once at startup, never
// mutated afterwards.
type registry struct {
	byCode  map[string]country.Config
	ordered []country.Config
}

func NewRegistry(configs []country.Config) country.Registry {
	byCode := make(map[string]country.Config, len(configs))
	ordered := make([]country.Config, 0, len(configs))
	for _, cfg := range configs {
		if _, exists := byCode[cfg.Code]; exists {
			continue
		}
		byCode[cfg.Code] = cfg
		ordered = append(ordered, cfg)
	}
	return &registry{byCode: byCode, ordered: ordered}
}

func (r *registry) FindByCode(code string) (country.Config, error) {
	cfg, ok := r.byCode[code]
	if !ok {
		return country.Config{}, country.ErrCountryNotFound
	}
	return cfg, nil
}

func (r *registry) FindAll() []country.Config {
	result := make([]country.Config, len(r.ordered))
	copy(result, r.ordered)
	return result
}

func (r *registry) Currency(code string) (string, error) {
	cfg, err := r.FindByCode(code)
	if err != nil {
		return "", err
	}
	return cfg.Currency, nil
}

func (r *registry) StatutoryBenefits(code string) ([]country.BenefitRule, error) {
	cfg, err := r.FindByCode(code)
	if err != nil {
		return nil, err
	}
	return cfg.StatutoryBenefits, nil
}
