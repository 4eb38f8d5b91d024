package transaction

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"lscmis/internal/center/models"
	"lscmis/internal/platform/postgres"
	id "lscmis/pkg/domain"
	"lscmis/pkg/platform/sentinel"
	txcontext "lscmis/pkg/platform/tx"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *PostgresStore) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

const transactionColumns = `id, center_id, service_item_id, start_date, end_date, beneficiary_name,
	beneficiary_address, beneficiary_phone, amount_collected, created_at`

func (s *PostgresStore) Create(ctx context.Context, t *models.Transaction) error {
	var end sql.NullTime
	if t.EndDate != nil {
		end = sql.NullTime{Time: *t.EndDate, Valid: true}
	}
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO service_transactions (`+transactionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		uuid.UUID(t.ID), uuid.UUID(t.CenterID), uuid.UUID(t.ServiceItemID),
		t.StartDate, end, t.BeneficiaryName, t.BeneficiaryAddress, t.BeneficiaryPhone,
		t.AmountCollected, t.CreatedAt,
	)
	if err != nil {
		if postgres.IsForeignKeyViolation(err) {
			return fmt.Errorf("insert transaction: unknown center or item: %w", sentinel.ErrNotFound)
		}
		if postgres.IsUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByCenter(ctx context.Context, centerID id.CenterID, filter models.TransactionFilter) ([]*models.Transaction, error) {
	from := sql.NullTime{Time: filter.From, Valid: !filter.From.IsZero()}
	to := sql.NullTime{Time: filter.To, Valid: !filter.To.IsZero()}
	rows, err := s.execer(ctx).QueryContext(ctx, `
		SELECT `+transactionColumns+` FROM service_transactions
		WHERE center_id = $1
		  AND ($2::date IS NULL OR start_date >= $2::date)
		  AND ($3::date IS NULL OR start_date <= $3::date)
		ORDER BY start_date DESC, created_at DESC`,
		uuid.UUID(centerID), from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var out []*models.Transaction
	for rows.Next() {
		var (
			t                    models.Transaction
			txID, center, itemID uuid.UUID
			end                  sql.NullTime
		)
		err := rows.Scan(&txID, &center, &itemID, &t.StartDate, &end, &t.BeneficiaryName,
			&t.BeneficiaryAddress, &t.BeneficiaryPhone, &t.AmountCollected, &t.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		t.ID = id.TransactionID(txID)
		t.CenterID = id.CenterID(center)
		t.ServiceItemID = id.ServiceItemID(itemID)
		if end.Valid {
			t.EndDate = &end.Time
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}

// Delete is scoped to the owning center; a foreign center's row does not match.
func (s *PostgresStore) Delete(ctx context.Context, centerID id.CenterID, txID id.TransactionID) error {
	res, err := s.execer(ctx).ExecContext(ctx,
		`DELETE FROM service_transactions WHERE id = $1 AND center_id = $2`,
		uuid.UUID(txID), uuid.UUID(centerID),
	)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete transaction rows affected: %w", err)
	}
	if rows == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) CountByItem(ctx context.Context, itemID id.ServiceItemID) (int, error) {
	var n int
	err := s.execer(ctx).QueryRowContext(ctx,
		`SELECT COUNT(*) FROM service_transactions WHERE service_item_id = $1`, uuid.UUID(itemID),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return n, nil
}
