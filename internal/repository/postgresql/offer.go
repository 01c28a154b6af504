package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/talenthq/payroll-backend-go/internal/domain/offer"
	"github.com/talenthq/payroll-backend-go/internal/pkg/database"
)

type offerRepository struct {
	db *database.DB
}

func NewOfferRepository(db *database.DB) offer.OfferRepository {
	return &offerRepository{db: db}
}

const offerColumns = `
	id, company_id, candidate_name, candidate_email, position, country_code,
	gross_salary, currency, status, valid_until, compensation, created_at, updated_at
`

func scanOffer(row pgx.Row) (offer.Offer, error) {
	var o offer.Offer
	var compensationJSON []byte
	err := row.Scan(
		&o.ID, &o.CompanyID, &o.CandidateName, &o.CandidateEmail, &o.Position, &o.CountryCode,
		&o.GrossSalary, &o.Currency, &o.Status, &o.ValidUntil, &compensationJSON,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return offer.Offer{}, err
	}
	if err := json.Unmarshal(compensationJSON, &o.Compensation); err != nil {
		return offer.Offer{}, fmt.Errorf("failed to unmarshal offer compensation: %w", err)
	}
	return o, nil
}

func (r *offerRepository) Create(ctx context.Context, newOffer offer.Offer) (offer.Offer, error) {
	q := GetQuerier(ctx, r.db)

	compensationJSON, err := json.Marshal(newOffer.Compensation)
	if err != nil {
		return offer.Offer{}, fmt.Errorf("failed to marshal offer compensation: %w", err)
	}

	query := `
		INSERT INTO offers (
			company_id, candidate_name, candidate_email, position, country_code,
			gross_salary, currency, status, valid_until, compensation
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + offerColumns

	o, err := scanOffer(q.QueryRow(ctx, query,
		newOffer.CompanyID, newOffer.CandidateName, newOffer.CandidateEmail,
		newOffer.Position, newOffer.CountryCode, newOffer.GrossSalary,
		newOffer.Currency, newOffer.Status, newOffer.ValidUntil, compensationJSON,
	))
	if err != nil {
		return offer.Offer{}, fmt.Errorf("failed to create offer: %w", err)
	}

	return o, nil
}

// GetByID scopes the lookup to companyID. An empty companyID (platform
// operator) skips the scope.
func (r *offerRepository) GetByID(ctx context.Context, id string, companyID string) (offer.Offer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + offerColumns + `
		FROM offers
		WHERE id = $1 AND ($2 = '' OR company_id = $2)
	`

	o, err := scanOffer(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return offer.Offer{}, offer.ErrOfferNotFound
		}
		return offer.Offer{}, fmt.Errorf("failed to get offer: %w", err)
	}

	return o, nil
}

func (r *offerRepository) ListByCompanyID(ctx context.Context, companyID string) ([]offer.Offer, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + offerColumns + `
		FROM offers
		WHERE company_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	defer rows.Close()

	var offers []offer.Offer
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan offer: %w", err)
		}
		offers = append(offers, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read offers: %w", err)
	}

	return offers, nil
}

// UpdateStatus applies the transition only when the stored status still equals
// from, making concurrent transitions race-safe.
func (r *offerRepository) UpdateStatus(ctx context.Context, id string, companyID string, from, to offer.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE offers
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND company_id = $3 AND status = $4
	`

	tag, err := q.Exec(ctx, query, to, id, companyID, from)
	if err != nil {
		return fmt.Errorf("failed to update offer status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return offer.ErrInvalidStatusChange
	}

	return nil
}

func (r *offerRepository) ExpireBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE offers
		SET status = 'expired', updated_at = NOW()
		WHERE status IN ('draft', 'sent') AND valid_until < $1
	`

	tag, err := q.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to expire offers: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *offerRepository) CreateContract(ctx context.Context, newContract offer.Contract) (offer.Contract, error) {
	q := GetQuerier(ctx, r.db)

	compensationJSON, err := json.Marshal(newContract.Compensation)
	if err != nil {
		return offer.Contract{}, fmt.Errorf("failed to marshal contract compensation: %w", err)
	}

	query := `
		INSERT INTO contracts (
			company_id, offer_id, employee_name, position, country_code,
			gross_salary, currency, compensation
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	created := newContract
	err = q.QueryRow(ctx, query,
		newContract.CompanyID, newContract.OfferID, newContract.EmployeeName,
		newContract.Position, newContract.CountryCode, newContract.GrossSalary,
		newContract.Currency, compensationJSON,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "uk_contracts_offer_id") {
			return offer.Contract{}, offer.ErrContractAlreadyExists
		}
		return offer.Contract{}, fmt.Errorf("failed to create contract: %w", err)
	}

	return created, nil
}

func (r *offerRepository) GetContractByOfferID(ctx context.Context, offerID string, companyID string) (offer.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, offer_id, employee_name, position, country_code,
			   gross_salary, currency, compensation, signed_at, created_at
		FROM contracts
		WHERE offer_id = $1 AND ($2 = '' OR company_id = $2)
	`

	var c offer.Contract
	var compensationJSON []byte
	err := q.QueryRow(ctx, query, offerID, companyID).Scan(
		&c.ID, &c.CompanyID, &c.OfferID, &c.EmployeeName, &c.Position, &c.CountryCode,
		&c.GrossSalary, &c.Currency, &compensationJSON, &c.SignedAt, &c.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return offer.Contract{}, offer.ErrContractNotFound
		}
		return offer.Contract{}, fmt.Errorf("failed to get contract: %w", err)
	}
	if err := json.Unmarshal(compensationJSON, &c.Compensation); err != nil {
		return offer.Contract{}, fmt.Errorf("failed to unmarshal contract compensation: %w", err)
	}

	return c, nil
}
