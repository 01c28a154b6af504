package offer

import "context"

type OfferService interface {
	Create(ctx context.Context, req CreateOfferRequest) (OfferResponse, error)
	Get(ctx context.Context, id string) (OfferResponse, error)
	List(ctx context.Context) ([]OfferResponse, error)
	Send(ctx context.Context, id string) error
	Accept(ctx context.Context, id string) error
	GenerateContract(ctx context.Context, offerID string) (ContractResponse, error)
	GetContract(ctx context.Context, offerID string) (ContractResponse, error)

	// ExpireOffers sweeps offers past their validity date. Called on a schedule.
	ExpireOffers(ctx context.Context) (int64, error)
}
