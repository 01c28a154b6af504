package country

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domain "github.com/talenthq/payroll-backend-go/internal/domain/country"
	"github.com/talenthq/payroll-backend-go/internal/fixtures"
)

func TestRegistry_FindByCode(t *testing.T) {
	registry := NewRegistry(fixtures.GetDefaultCountryConfigs())

	cfg, err := registry.FindByCode("IN")
	require.NoError(t, err)
	assert.Equal(t, "INR", cfg.Currency)
	assert.Len(t, cfg.TaxRules, 2)
	assert.Len(t, cfg.StatutoryBenefits, 1)

	// Repeated lookups return the same config
	again, err := registry.FindByCode("IN")
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestRegistry_UnknownCodeNotFound(t *testing.T) {
	registry := NewRegistry(fixtures.GetDefaultCountryConfigs())

	_, err := registry.FindByCode("FR")
	assert.ErrorIs(t, err, domain.ErrCountryNotFound)

	_, err = registry.Currency("FR")
	assert.ErrorIs(t, err, domain.ErrCountryNotFound)

	_, err = registry.StatutoryBenefits("FR")
	assert.ErrorIs(t, err, domain.ErrCountryNotFound)
}

func TestRegistry_FindAllStableOrder(t *testing.T) {
	registry := NewRegistry(fixtures.GetDefaultCountryConfigs())

	first := registry.FindAll()
	second := registry.FindAll()
	require.Equal(t, first, second)
	require.Len(t, first, 2)
	assert.Equal(t, "IN", first[0].Code)
	assert.Equal(t, "US", first[1].Code)
}

func TestRegistry_Currency(t *testing.T) {
	registry := NewRegistry(fixtures.GetDefaultCountryConfigs())

	currency, err := registry.Currency("US")
	require.NoError(t, err)
	assert.Equal(t, "USD", currency)
}
