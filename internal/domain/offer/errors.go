package offer

import "errors"

var (
	ErrOfferNotFound         = errors.New("offer not found")
	ErrOfferNotAccepted      = errors.New("offer has not been accepted")
	ErrOfferExpired          = errors.New("offer has expired")
	ErrInvalidStatusChange   = errors.New("invalid offer status transition")
	ErrContractNotFound      = errors.New("contract not found")
	ErrContractAlreadyExists = errors.New("contract already generated for this offer")
)
