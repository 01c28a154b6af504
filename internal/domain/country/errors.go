package country

import "errors"

var ErrCountryNotFound = errors.New("country configuration not found")
