package association

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

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

// InsertMany writes the batch in one statement, so it lands entirely or not at all.
func (s *PostgresStore) InsertMany(ctx context.Context, rows []models.Association) error {
	if len(rows) == 0 {
		return nil
	}
	centers := make([]string, 0, len(rows))
	items := make([]string, 0, len(rows))
	available := make([]bool, 0, len(rows))
	for _, r := range rows {
		centers = append(centers, r.CenterID.String())
		items = append(items, r.ServiceItemID.String())
		available = append(available, r.IsAvailable)
	}
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO center_services (center_id, service_item_id, is_available)
		SELECT * FROM unnest($1::uuid[], $2::uuid[], $3::boolean[])`,
		pq.Array(centers), pq.Array(items), pq.Array(available),
	)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		if postgres.IsForeignKeyViolation(err) {
			return fmt.Errorf("insert associations: unknown center or item: %w", sentinel.ErrNotFound)
		}
		return fmt.Errorf("insert associations: %w", err)
	}
	return nil
}

func (s *PostgresStore) DeleteByCenter(ctx context.Context, centerID id.CenterID) error {
	if _, err := s.execer(ctx).ExecContext(ctx, `DELETE FROM center_services WHERE center_id = $1`, uuid.UUID(centerID)); err != nil {
		return fmt.Errorf("delete associations: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByCenter(ctx context.Context, centerID id.CenterID) ([]models.Association, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, `
		SELECT center_id, service_item_id, is_available
		FROM center_services WHERE center_id = $1`, uuid.UUID(centerID))
	if err != nil {
		return nil, fmt.Errorf("list associations: %w", err)
	}
	defer rows.Close()

	var out []models.Association
	for rows.Next() {
		var (
			a              models.Association
			center, itemID uuid.UUID
		)
		if err := rows.Scan(&center, &itemID, &a.IsAvailable); err != nil {
			return nil, fmt.Errorf("scan association: %w", err)
		}
		a.CenterID = id.CenterID(center)
		a.ServiceItemID = id.ServiceItemID(itemID)
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *PostgresStore) CountByItem(ctx context.Context, itemID id.ServiceItemID) (int, error) {
	var n int
	err := s.execer(ctx).QueryRowContext(ctx,
		`SELECT COUNT(*) FROM center_services WHERE service_item_id = $1`, uuid.UUID(itemID),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count associations: %w", err)
	}
	return n, nil
}

func (s *PostgresStore) IsOffered(ctx context.Context, centerID id.CenterID, itemID id.ServiceItemID) (bool, error) {
	var offered bool
	err := s.execer(ctx).QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM center_services
			WHERE center_id = $1 AND service_item_id = $2 AND is_available
		)`, uuid.UUID(centerID), uuid.UUID(itemID),
	).Scan(&offered)
	if err != nil {
		return false, fmt.Errorf("check association: %w", err)
	}
	return offered, nil
}
