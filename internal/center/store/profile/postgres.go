package profile

import (
	"context"
	"database/sql"
	"errors"
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

const profileColumns = `user_id, role, district_id, block_id, center_id, created_at`

func (s *PostgresStore) Create(ctx context.Context, p *models.Profile) error {
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO profiles (`+profileColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.UUID(p.UserID),
		string(p.Role),
		nullUUID(uuid.UUID(p.Scope.DistrictID)),
		nullUUID(uuid.UUID(p.Scope.BlockID)),
		nullUUID(uuid.UUID(p.Scope.CenterID)),
		p.CreatedAt,
	)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByUserID(ctx context.Context, userID id.UserID) (*models.Profile, error) {
	row := s.execer(ctx).QueryRowContext(ctx, `SELECT `+profileColumns+` FROM profiles WHERE user_id = $1`, uuid.UUID(userID))
	return scanProfile(row)
}

func (s *PostgresStore) Delete(ctx context.Context, userID id.UserID) error {
	res, err := s.execer(ctx).ExecContext(ctx, `DELETE FROM profiles WHERE user_id = $1`, uuid.UUID(userID))
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete profile rows affected: %w", err)
	}
	if rows == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) ListByRoles(ctx context.Context, roles ...models.Role) ([]*models.Profile, error) {
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, string(r))
	}
	rows, err := s.execer(ctx).QueryContext(ctx, `
		SELECT `+profileColumns+` FROM profiles
		WHERE role = ANY($1)
		ORDER BY created_at`, pq.Array(names))
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var out []*models.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *PostgresStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.execer(ctx).QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count profiles: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*models.Profile, error) {
	var (
		p                             models.Profile
		userID                        uuid.UUID
		role                          string
		districtID, blockID, centerID uuid.NullUUID
	)
	if err := row.Scan(&userID, &role, &districtID, &blockID, &centerID, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan profile: %w", err)
	}
	p.UserID = id.UserID(userID)
	p.Role = models.Role(role)
	p.Scope = models.Scope{
		DistrictID: id.DistrictID(districtID.UUID),
		BlockID:    id.BlockID(blockID.UUID),
		CenterID:   id.CenterID(centerID.UUID),
	}
	return &p, nil
}

func nullUUID(u uuid.UUID) uuid.NullUUID {
	return uuid.NullUUID{UUID: u, Valid: u != uuid.Nil}
}
