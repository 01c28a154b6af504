package offer

import (
	"context"
	"time"
)

type OfferRepository interface {
	Create(ctx context.Context, newOffer Offer) (Offer, error)
	GetByID(ctx context.Context, id string, companyID string) (Offer, error)
	ListByCompanyID(ctx context.Context, companyID string) ([]Offer, error)
	UpdateStatus(ctx context.Context, id string, companyID string, from, to Status) error
	// ExpireBefore marks draft/sent offers whose validity ended before cutoff
	// as expired, across all companies. Used by the scheduled sweep.
	ExpireBefore(ctx context.Context, cutoff time.Time) (int64, error)

	CreateContract(ctx context.Context, newContract Contract) (Contract, error)
	GetContractByOfferID(ctx context.Context, offerID string, companyID string) (Contract, error)
}
