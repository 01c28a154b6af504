package offer

import (
	"context"
	"fmt"
	"time"

	"github.com/talenthq/payroll-backend-go/internal/domain/audit"
	"github.com/talenthq/payroll-backend-go/internal/domain/authz"
	"github.com/talenthq/payroll-backend-go/internal/domain/country"
	"github.com/talenthq/payroll-backend-go/internal/domain/offer"
	"github.com/talenthq/payroll-backend-go/internal/domain/user"
	"github.com/talenthq/payroll-backend-go/internal/pkg/validator"
	calculationService "github.com/talenthq/payroll-backend-go/internal/service/calculation"
)

var hiringRoles = []user.Role{user.RoleCompanyOwner, user.RoleHRAdmin}

var offerReadRoles = []user.Role{user.RoleCompanyOwner, user.RoleHRAdmin, user.RoleAuditor}

type OfferServiceImpl struct {
	offerRepo offer.OfferRepository
	countries country.Registry
	auditSink audit.Sink
}

func NewOfferService(offerRepo offer.OfferRepository, countries country.Registry, auditSink audit.Sink) offer.OfferService {
	return &OfferServiceImpl{
		offerRepo: offerRepo,
		countries: countries,
		auditSink: auditSink,
	}
}

// Create builds an offer in draft status with a compensation preview computed
// from the candidate's country configuration.
func (s *OfferServiceImpl) Create(ctx context.Context, req offer.CreateOfferRequest) (offer.OfferResponse, error) {
	if err := req.Validate(); err != nil {
		return offer.OfferResponse{}, err
	}

	actor, err := authz.ActorFromContext(ctx)
	if err != nil {
		return offer.OfferResponse{}, err
	}
	if err := authz.AllowRoles(actor, hiringRoles...); err != nil {
		return offer.OfferResponse{}, err
	}
	if actor.CompanyID == "" {
		return offer.OfferResponse{}, user.ErrCompanyIDRequired
	}

	cfg, err := s.countries.FindByCode(req.CountryCode)
	if err != nil {
		return offer.OfferResponse{}, err
	}

	validUntil, _ := validator.IsValidDate(req.ValidUntil)
	result := calculationService.NetSalary(req.GrossSalary, cfg)

	newOffer := offer.Offer{
		CompanyID:      actor.CompanyID,
		CandidateName:  req.CandidateName,
		CandidateEmail: req.CandidateEmail,
		Position:       req.Position,
		CountryCode:    req.CountryCode,
		GrossSalary:    req.GrossSalary,
		Currency:       cfg.Currency,
		Status:         offer.StatusDraft,
		ValidUntil:     validUntil,
		Compensation: offer.CompensationPreview{
			NetSalary:          result.NetSalary,
			TotalDeductions:    result.TotalDeductions,
			TotalContributions: result.TotalContributions,
			Details:            result.Details,
		},
	}

	created, err := s.offerRepo.Create(ctx, newOffer)
	if err != nil {
		return offer.OfferResponse{}, fmt.Errorf("failed to create offer: %w", err)
	}

	s.auditSink.Record(ctx, audit.Event{
		ActorID:    actor.UserID,
		CompanyID:  actor.CompanyID,
		Action:     audit.ActionCreateOffer,
		Resource:   "offer",
		ResourceID: created.ID,
		Payload:    audit.Payload{OfferID: created.ID},
	})

	return mapToOfferResponse(created), nil
}

func (s *OfferServiceImpl) Get(ctx context.Context, id string) (offer.OfferResponse, error) {
	actor, err := authz.ActorFromContext(ctx)
	if err != nil {
		return offer.OfferResponse{}, err
	}
	if err := authz.AllowRoles(actor, offerReadRoles...); err != nil {
		return offer.OfferResponse{}, err
	}

	found, err := s.offerRepo.GetByID(ctx, id, actor.CompanyID)
	if err != nil {
		return offer.OfferResponse{}, err
	}
	if err := authz.AllowCompany(actor, found.CompanyID); err != nil {
		return offer.OfferResponse{}, err
	}

	return mapToOfferResponse(found), nil
}

func (s *OfferServiceImpl) List(ctx context.Context) ([]offer.OfferResponse, error) {
	actor, err := authz.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := authz.AllowRoles(actor, offerReadRoles...); err != nil {
		return nil, err
	}
	if actor.CompanyID == "" {
		return nil, user.ErrCompanyIDRequired
	}

	offers, err := s.offerRepo.ListByCompanyID(ctx, actor.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}

	responses := make([]offer.OfferResponse, 0, len(offers))
	for _, o := range offers {
		responses = append(responses, mapToOfferResponse(o))
	}
	return responses, nil
}

// Send moves a draft offer to sent. Any other starting status is rejected.
func (s *OfferServiceImpl) Send(ctx context.Context, id string) error {
	return s.transition(ctx, id, offer.StatusDraft, offer.StatusSent)
}

// Accept moves a sent offer to accepted. Expired offers cannot be accepted.
func (s *OfferServiceImpl) Accept(ctx context.Context, id string) error {
	actor, err := authz.ActorFromContext(ctx)
	if err != nil {
		return err
	}
	if err := authz.AllowRoles(actor, hiringRoles...); err != nil {
		return err
	}

	found, err := s.offerRepo.GetByID(ctx, id, actor.CompanyID)
	if err != nil {
		return err
	}
	if err := authz.AllowCompany(actor, found.CompanyID); err != nil {
		return err
	}
	if found.Status == offer.StatusExpired || time.Now().After(found.ValidUntil) {
		return offer.ErrOfferExpired
	}
	if found.Status != offer.StatusSent {
		return offer.ErrInvalidStatusChange
	}

	return s.offerRepo.UpdateStatus(ctx, id, found.CompanyID, offer.StatusSent, offer.StatusAccepted)
}

// GenerateContract creates the contract for an accepted offer, reusing the
// compensation snapshot taken at offer creation. One contract per offer.
func (s *OfferServiceImpl) GenerateContract(ctx context.Context, offerID string) (offer.ContractResponse, error) {
	actor, err := authz.ActorFromContext(ctx)
	if err != nil {
		return offer.ContractResponse{}, err
	}
	if err := authz.AllowRoles(actor, hiringRoles...); err != nil {
		return offer.ContractResponse{}, err
	}

	found, err := s.offerRepo.GetByID(ctx, offerID, actor.CompanyID)
	if err != nil {
		return offer.ContractResponse{}, err
	}
	if err := authz.AllowCompany(actor, found.CompanyID); err != nil {
		return offer.ContractResponse{}, err
	}
	if found.Status != offer.StatusAccepted {
		return offer.ContractResponse{}, offer.ErrOfferNotAccepted
	}

	newContract := offer.Contract{
		CompanyID:    found.CompanyID,
		OfferID:      found.ID,
		EmployeeName: found.CandidateName,
		Position:     found.Position,
		CountryCode:  found.CountryCode,
		GrossSalary:  found.GrossSalary,
		Currency:     found.Currency,
		Compensation: found.Compensation,
	}

	created, err := s.offerRepo.CreateContract(ctx, newContract)
	if err != nil {
		return offer.ContractResponse{}, err
	}

	s.auditSink.Record(ctx, audit.Event{
		ActorID:    actor.UserID,
		CompanyID:  found.CompanyID,
		Action:     audit.ActionGenerateContract,
		Resource:   "contract",
		ResourceID: created.ID,
		Payload:    audit.Payload{OfferID: found.ID},
	})

	return mapToContractResponse(created), nil
}

func (s *OfferServiceImpl) GetContract(ctx context.Context, offerID string) (offer.ContractResponse, error) {
	actor, err := authz.ActorFromContext(ctx)
	if err != nil {
		return offer.ContractResponse{}, err
	}
	if err := authz.AllowRoles(actor, offerReadRoles...); err != nil {
		return offer.ContractResponse{}, err
	}

	found, err := s.offerRepo.GetContractByOfferID(ctx, offerID, actor.CompanyID)
	if err != nil {
		return offer.ContractResponse{}, err
	}
	if err := authz.AllowCompany(actor, found.CompanyID); err != nil {
		return offer.ContractResponse{}, err
	}

	return mapToContractResponse(found), nil
}

// ExpireOffers marks draft and sent offers past their validity date as
// expired, across all companies. Runs without an actor.
func (s *OfferServiceImpl) ExpireOffers(ctx context.Context) (int64, error) {
	return s.offerRepo.ExpireBefore(ctx, time.Now())
}

func (s *OfferServiceImpl) transition(ctx context.Context, id string, from, to offer.Status) error {
	actor, err := authz.ActorFromContext(ctx)
	if err != nil {
		return err
	}
	if err := authz.AllowRoles(actor, hiringRoles...); err != nil {
		return err
	}

	found, err := s.offerRepo.GetByID(ctx, id, actor.CompanyID)
	if err != nil {
		return err
	}
	if err := authz.AllowCompany(actor, found.CompanyID); err != nil {
		return err
	}
	if found.Status != from {
		return offer.ErrInvalidStatusChange
	}

	return s.offerRepo.UpdateStatus(ctx, id, found.CompanyID, from, to)
}

// ========== HELPERS ==========

func mapToOfferResponse(o offer.Offer) offer.OfferResponse {
	return offer.OfferResponse{
		ID:             o.ID,
		CompanyID:      o.CompanyID,
		CandidateName:  o.CandidateName,
		CandidateEmail: o.CandidateEmail,
		Position:       o.Position,
		CountryCode:    o.CountryCode,
		GrossSalary:    o.GrossSalary,
		Currency:       o.Currency,
		Status:         string(o.Status),
		ValidUntil:     o.ValidUntil.Format("2006-01-02"),
		Compensation:   o.Compensation,
		CreatedAt:      o.CreatedAt.Format(time.RFC3339),
	}
}

func mapToContractResponse(c offer.Contract) offer.ContractResponse {
	return offer.ContractResponse{
		ID:           c.ID,
		OfferID:      c.OfferID,
		EmployeeName: c.EmployeeName,
		Position:     c.Position,
		CountryCode:  c.CountryCode,
		GrossSalary:  c.GrossSalary,
		Currency:     c.Currency,
		Compensation: c.Compensation,
		CreatedAt:    c.CreatedAt.Format(time.RFC3339),
	}
}
