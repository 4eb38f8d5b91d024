package center

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"lscmis/internal/center/models"
	"lscmis/internal/platform/postgres"
	id "lscmis/pkg/domain"
	"lscmis/pkg/platform/sentinel"
	txcontext "lscmis/pkg/platform/tx"
)

const applicationCodeConstraint = "centers_application_code_key"

// PostgresStore persists centers in the centers table.
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

const centerColumns = `id, name, district_id, block_id, date_of_establishment, village, gram_panchayat,
	clf_code, clf_name, clf_formation_date, operator_name, address, staff_count, contact_details,
	bank_name, account_no, ifsc, branch, latitude, longitude, has_building, has_furniture,
	is_active, status, application_code, created_at, updated_at`

func (s *PostgresStore) Create(ctx context.Context, c *models.Center) error {
	_, err := s.execer(ctx).ExecContext(ctx, `
		INSERT INTO centers (`+centerColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27)`,
		centerArgs(c)...,
	)
	if err != nil {
		if postgres.IsUniqueViolation(err, applicationCodeConstraint) {
			return sentinel.ErrAlreadyUsed
		}
		if postgres.IsUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert center: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, centerID id.CenterID) (*models.Center, error) {
	row := s.execer(ctx).QueryRowContext(ctx, `SELECT `+centerColumns+` FROM centers WHERE id = $1`, uuid.UUID(centerID))
	return scanCenter(row)
}

func (s *PostgresStore) FindByCode(ctx context.Context, code string) (*models.Center, error) {
	row := s.execer(ctx).QueryRowContext(ctx, `SELECT `+centerColumns+` FROM centers WHERE application_code = $1`, code)
	return scanCenter(row)
}

func (s *PostgresStore) ExistsCode(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := s.execer(ctx).QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM centers WHERE application_code = $1)`, code,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check application code: %w", err)
	}
	return exists, nil
}

func (s *PostgresStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.execer(ctx).QueryRowContext(ctx, `SELECT COUNT(*) FROM centers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count centers: %w", err)
	}
	return n, nil
}

func (s *PostgresStore) ListByStatus(ctx context.Context, status models.Status) ([]*models.Center, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, `
		SELECT `+centerColumns+` FROM centers
		WHERE $1 = '' OR status = $1
		ORDER BY created_at DESC`, string(status))
	if err != nil {
		return nil, fmt.Errorf("list centers: %w", err)
	}
	defer rows.Close()

	var out []*models.Center
	for rows.Next() {
		c, err := scanCenter(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *PostgresStore) Update(ctx context.Context, c *models.Center) error {
	return update(ctx, s.execer(ctx), c)
}

func update(ctx context.Context, q dbExecutor, c *models.Center) error {
	args := centerArgs(c)
	res, err := q.ExecContext(ctx, `
		UPDATE centers SET
			name = $2, district_id = $3, block_id = $4, date_of_establishment = $5, village = $6,
			gram_panchayat = $7, clf_code = $8, clf_name = $9, clf_formation_date = $10,
			operator_name = $11, address = $12, staff_count = $13, contact_details = $14,
			bank_name = $15, account_no = $16, ifsc = $17, branch = $18, latitude = $19,
			longitude = $20, has_building = $21, has_furniture = $22, is_active = $23,
			status = $24, application_code = $25, updated_at = $26
		WHERE id = $1`,
		append(args[:25:25], args[26])...,
	)
	if err != nil {
		if postgres.IsUniqueViolation(err, applicationCodeConstraint) {
			return sentinel.ErrAlreadyUsed
		}
		return fmt.Errorf("update center: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update center rows affected: %w", err)
	}
	if rows == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

// Execute locks the row with FOR UPDATE, runs validate then mutate, and writes the
// result back in the same transaction. Joins the caller's transaction when present.
func (s *PostgresStore) Execute(ctx context.Context, centerID id.CenterID, validate func(*models.Center) error, mutate func(*models.Center)) (*models.Center, error) {
	if tx, ok := txcontext.From(ctx); ok {
		return execute(ctx, tx, centerID, validate, mutate)
	}

	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin center transaction: %w", err)
	}
	defer func() {
		_ = sqlTx.Rollback()
	}()

	c, err := execute(ctx, sqlTx, centerID, validate, mutate)
	if err != nil {
		return nil, err
	}
	if err := sqlTx.Commit(); err != nil {
		return nil, fmt.Errorf("commit center transaction: %w", err)
	}
	return c, nil
}

func execute(ctx context.Context, q dbExecutor, centerID id.CenterID, validate func(*models.Center) error, mutate func(*models.Center)) (*models.Center, error) {
	row := q.QueryRowContext(ctx, `SELECT `+centerColumns+` FROM centers WHERE id = $1 FOR UPDATE`, uuid.UUID(centerID))
	c, err := scanCenter(row)
	if err != nil {
		return nil, err
	}
	if err := validate(c); err != nil {
		return nil, err
	}
	mutate(c)
	if err := update(ctx, q, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ConsumeCode is a single conditional update on id, code and APPROVED status.
// Returns sentinel.ErrAlreadyUsed when no row matched.
func (s *PostgresStore) ConsumeCode(ctx context.Context, centerID id.CenterID, code string, now time.Time) error {
	res, err := s.execer(ctx).ExecContext(ctx, `
		UPDATE centers
		SET is_active = TRUE, application_code = NULL, updated_at = $4
		WHERE id = $1 AND application_code = $2 AND status = $3`,
		uuid.UUID(centerID), code, string(models.StatusApproved), now,
	)
	if err != nil {
		return fmt.Errorf("consume application code: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("consume application code rows affected: %w", err)
	}
	if rows == 0 {
		return sentinel.ErrAlreadyUsed
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, centerID id.CenterID) error {
	res, err := s.execer(ctx).ExecContext(ctx, `DELETE FROM centers WHERE id = $1`, uuid.UUID(centerID))
	if err != nil {
		if postgres.IsForeignKeyViolation(err) {
			return sentinel.ErrInUse
		}
		return fmt.Errorf("delete center: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete center rows affected: %w", err)
	}
	if rows == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func centerArgs(c *models.Center) []any {
	f := c.Fields
	return []any{
		uuid.UUID(c.ID),
		f.Name,
		nullUUID(uuid.UUID(f.DistrictID)),
		nullUUID(uuid.UUID(f.BlockID)),
		nullTime(f.Details.EstablishedOn),
		f.Details.Village,
		f.Details.GramPanchayat,
		f.Details.CLFCode,
		f.Details.CLFName,
		nullTime(f.Details.CLFFormationDate),
		f.Details.OperatorName,
		f.Details.Address,
		f.Details.StaffCount,
		f.Details.Contact,
		f.Banking.BankName,
		f.Banking.AccountNo,
		f.Banking.IFSC,
		f.Banking.Branch,
		nullFloat(f.Geo.Latitude),
		nullFloat(f.Geo.Longitude),
		f.Facilities.HasBuilding,
		f.Facilities.HasFurniture,
		c.IsActive,
		string(c.Status),
		sql.NullString{String: c.ApplicationCode, Valid: c.ApplicationCode != ""},
		c.CreatedAt,
		c.UpdatedAt,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCenter(row rowScanner) (*models.Center, error) {
	var (
		c                          models.Center
		centerID                   uuid.UUID
		districtID, blockID        uuid.NullUUID
		establishedOn, clfFormedOn sql.NullTime
		latitude, longitude        sql.NullFloat64
		status                     string
		code                       sql.NullString
	)
	f := &c.Fields
	err := row.Scan(
		&centerID, &f.Name, &districtID, &blockID, &establishedOn, &f.Details.Village,
		&f.Details.GramPanchayat, &f.Details.CLFCode, &f.Details.CLFName, &clfFormedOn,
		&f.Details.OperatorName, &f.Details.Address, &f.Details.StaffCount, &f.Details.Contact,
		&f.Banking.BankName, &f.Banking.AccountNo, &f.Banking.IFSC, &f.Banking.Branch,
		&latitude, &longitude, &f.Facilities.HasBuilding, &f.Facilities.HasFurniture,
		&c.IsActive, &status, &code, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan center: %w", err)
	}
	c.ID = id.CenterID(centerID)
	f.DistrictID = id.DistrictID(districtID.UUID)
	f.BlockID = id.BlockID(blockID.UUID)
	f.Details.EstablishedOn = establishedOn.Time
	f.Details.CLFFormationDate = clfFormedOn.Time
	if latitude.Valid {
		f.Geo.Latitude = &latitude.Float64
	}
	if longitude.Valid {
		f.Geo.Longitude = &longitude.Float64
	}
	c.Status = models.Status(status)
	c.ApplicationCode = code.String
	return &c, nil
}

func nullUUID(u uuid.UUID) uuid.NullUUID {
	return uuid.NullUUID{UUID: u, Valid: u != uuid.Nil}
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
