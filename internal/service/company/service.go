package company

import (
	"context"
	"fmt"
	"time"

	"github.com/talenthq/payroll-backend-go/internal/domain/authz"
	"github.com/talenthq/payroll-backend-go/internal/domain/company"
)

type CompanyServiceImpl struct {
	companyRepo company.CompanyRepository
}

func NewCompanyService(companyRepo company.CompanyRepository) company.CompanyService {
	return &CompanyServiceImpl{companyRepo: companyRepo}
}

// Create provisions a company without an owner. Platform operator only; the
// normal path is registration, which creates company and owner together.
func (s *CompanyServiceImpl) Create(ctx context.Context, req company.CreateCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	actor, err := authz.ActorFromContext(ctx)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	if err := authz.AllowRoles(actor); err != nil {
		return company.CompanyResponse{}, err
	}

	created, err := s.companyRepo.Create(ctx, company.Company{
		Name:     req.Name,
		Username: req.Username,
		Address:  req.Address,
	})
	if err != nil {
		return company.CompanyResponse{}, err
	}

	return mapToCompanyResponse(created), nil
}

func (s *CompanyServiceImpl) GetByID(ctx context.Context, id string) (company.CompanyResponse, error) {
	actor, err := authz.ActorFromContext(ctx)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	if err := authz.AllowCompany(actor, id); err != nil {
		return company.CompanyResponse{}, err
	}

	found, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	return mapToCompanyResponse(found), nil
}

// List returns every company on the platform. Platform operator only.
func (s *CompanyServiceImpl) List(ctx context.Context) ([]company.CompanyResponse, error) {
	actor, err := authz.ActorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := authz.AllowRoles(actor); err != nil {
		return nil, err
	}

	companies, err := s.companyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	responses := make([]company.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		responses = append(responses, mapToCompanyResponse(c))
	}
	return responses, nil
}

// ========== HELPERS ==========

func mapToCompanyResponse(c company.Company) company.CompanyResponse {
	return company.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Username:  c.Username,
		Address:   c.Address,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
