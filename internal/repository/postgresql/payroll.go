package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/talenthq/payroll-backend-go/internal/domain/payroll"
	"github.com/talenthq/payroll-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

// UpsertProcessing inserts the period row in processing status. On conflict it
// resets a non-completed row; the conditional update returns no row for a
// completed period, which maps to ErrPayrollAlreadyCompleted. The conflict
// path takes a row lock, so concurrent runs for the same period serialize.
func (r *payrollRepository) UpsertProcessing(ctx context.Context, companyID string, month, year int) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payrolls (company_id, period_month, period_year, status)
		VALUES ($1, $2, $3, 'processing')
		ON CONFLICT (company_id, period_month, period_year) DO UPDATE
		SET status = 'processing', updated_at = NOW()
		WHERE payrolls.status <> 'completed'
		RETURNING id, company_id, period_month, period_year, status, created_at, updated_at
	`

	var p payroll.Payroll
	err := q.QueryRow(ctx, query, companyID, month, year).Scan(
		&p.ID, &p.CompanyID, &p.PeriodMonth, &p.PeriodYear, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payroll{}, payroll.ErrPayrollAlreadyCompleted
		}
		return payroll.Payroll{}, fmt.Errorf("failed to upsert payroll: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) MarkCompleted(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payrolls
		SET status = 'completed', updated_at = NOW()
		WHERE id = $1 AND company_id = $2 AND status = 'processing'
	`

	tag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to mark payroll completed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}

	return nil
}

func (r *payrollRepository) CreateItem(ctx context.Context, item payroll.PayrollItem) (payroll.PayrollItem, error) {
	q := GetQuerier(ctx, r.db)

	detailsJSON, err := json.Marshal(item.Details)
	if err != nil {
		return payroll.PayrollItem{}, fmt.Errorf("failed to marshal payroll item details: %w", err)
	}

	query := `
		INSERT INTO payroll_items (
			payroll_id, employee_id, gross_salary, net_salary,
			total_deductions, total_contributions, currency, details
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	created := item
	err = q.QueryRow(ctx, query,
		item.PayrollID, item.EmployeeID, item.GrossSalary, item.NetSalary,
		item.TotalDeductions, item.TotalContributions, item.Currency, detailsJSON,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return payroll.PayrollItem{}, fmt.Errorf("failed to create payroll item: %w", err)
	}

	return created, nil
}

func (r *payrollRepository) DeleteItemsByPayrollID(ctx context.Context, payrollID string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM payroll_items
		WHERE payroll_id = $1
		  AND payroll_id IN (SELECT id FROM payrolls WHERE id = $1 AND company_id = $2)
	`

	if _, err := q.Exec(ctx, query, payrollID, companyID); err != nil {
		return fmt.Errorf("failed to delete payroll items: %w", err)
	}

	return nil
}

func (r *payrollRepository) GetByPeriod(ctx context.Context, companyID string, month, year int) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, period_month, period_year, status, created_at, updated_at
		FROM payrolls
		WHERE company_id = $1 AND period_month = $2 AND period_year = $3
	`

	var p payroll.Payroll
	err := q.QueryRow(ctx, query, companyID, month, year).Scan(
		&p.ID, &p.CompanyID, &p.PeriodMonth, &p.PeriodYear, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll: %w", err)
	}

	itemsQuery := `
		SELECT pi.id, pi.payroll_id, pi.employee_id, pi.gross_salary, pi.net_salary,
			   pi.total_deductions, pi.total_contributions, pi.currency, pi.details,
			   pi.created_at, e.full_name, e.country_code
		FROM payroll_items pi
		JOIN employees e ON e.id = pi.employee_id
		WHERE pi.payroll_id = $1
		ORDER BY e.full_name, pi.employee_id
	`

	rows, err := q.Query(ctx, itemsQuery, p.ID)
	if err != nil {
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item payroll.PayrollItem
		var detailsJSON []byte
		err := rows.Scan(
			&item.ID, &item.PayrollID, &item.EmployeeID, &item.GrossSalary, &item.NetSalary,
			&item.TotalDeductions, &item.TotalContributions, &item.Currency, &detailsJSON,
			&item.CreatedAt, &item.EmployeeName, &item.EmployeeCountry,
		)
		if err != nil {
			return payroll.Payroll{}, fmt.Errorf("failed to scan payroll item: %w", err)
		}
		if err := json.Unmarshal(detailsJSON, &item.Details); err != nil {
			return payroll.Payroll{}, fmt.Errorf("failed to unmarshal payroll item details: %w", err)
		}
		p.Items = append(p.Items, item)
	}
	if err := rows.Err(); err != nil {
		return payroll.Payroll{}, fmt.Errorf("failed to read payroll items: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) ListByCompanyID(ctx context.Context, companyID string) ([]payroll.PayrollSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.period_month, p.period_year, p.status,
			   COUNT(pi.id),
			   COALESCE(SUM(pi.gross_salary), 0),
			   COALESCE(SUM(pi.net_salary), 0)
		FROM payrolls p
		LEFT JOIN payroll_items pi ON pi.payroll_id = p.id
		WHERE p.company_id = $1
		GROUP BY p.id, p.period_month, p.period_year, p.status
		ORDER BY p.period_year DESC, p.period_month DESC
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payrolls: %w", err)
	}
	defer rows.Close()

	var summaries []payroll.PayrollSummary
	for rows.Next() {
		var s payroll.PayrollSummary
		err := rows.Scan(
			&s.ID, &s.PeriodMonth, &s.PeriodYear, &s.Status,
			&s.EmployeeCount, &s.TotalGrossSalary, &s.TotalNetSalary,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read payroll summaries: %w", err)
	}

	return summaries, nil
}
