package hierarchy

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"lscmis/internal/center/models"
	"lscmis/internal/platform/postgres"
	id "lscmis/pkg/domain"
	"lscmis/pkg/platform/sentinel"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) UpsertDistrict(ctx context.Context, d models.District) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO districts (id, name) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name`,
		uuid.UUID(d.ID), d.Name,
	)
	if err != nil {
		return fmt.Errorf("upsert district: %w", err)
	}
	return nil
}

func (s *PostgresStore) UpsertBlock(ctx context.Context, b models.Block) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO blocks (id, district_id, name) VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name`,
		uuid.UUID(b.ID), uuid.UUID(b.DistrictID), b.Name,
	)
	if err != nil {
		if postgres.IsForeignKeyViolation(err) {
			return sentinel.ErrNotFound
		}
		return fmt.Errorf("upsert block: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListDistricts(ctx context.Context) ([]models.District, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM districts ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list districts: %w", err)
	}
	defer rows.Close()

	var out []models.District
	for rows.Next() {
		var (
			d   models.District
			did uuid.UUID
		)
		if err := rows.Scan(&did, &d.Name); err != nil {
			return nil, fmt.Errorf("scan district: %w", err)
		}
		d.ID = id.DistrictID(did)
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *PostgresStore) ListBlocks(ctx context.Context, districtID id.DistrictID) ([]models.Block, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, district_id, name FROM blocks WHERE district_id = $1 ORDER BY name`, uuid.UUID(districtID))
	if err != nil {
		return nil, fmt.Errorf("list blocks: %w", err)
	}
	defer rows.Close()

	var out []models.Block
	for rows.Next() {
		b, err := scanBlock(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}

func (s *PostgresStore) FindDistrict(ctx context.Context, districtID id.DistrictID) (*models.District, error) {
	var (
		d   models.District
		did uuid.UUID
	)
	err := s.db.QueryRowContext(ctx, `SELECT id, name FROM districts WHERE id = $1`, uuid.UUID(districtID)).Scan(&did, &d.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find district: %w", err)
	}
	d.ID = id.DistrictID(did)
	return &d, nil
}

func (s *PostgresStore) FindBlock(ctx context.Context, blockID id.BlockID) (*models.Block, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, district_id, name FROM blocks WHERE id = $1`, uuid.UUID(blockID))
	return scanBlock(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBlock(row rowScanner) (*models.Block, error) {
	var (
		b        models.Block
		bid, did uuid.UUID
	)
	if err := row.Scan(&bid, &did, &b.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan block: %w", err)
	}
	b.ID = id.BlockID(bid)
	b.DistrictID = id.DistrictID(did)
	return &b, nil
}
