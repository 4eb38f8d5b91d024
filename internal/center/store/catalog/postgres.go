package catalog

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

func (s *PostgresStore) CreateCategory(ctx context.Context, c *models.Category) error {
	_, err := s.execer(ctx).ExecContext(ctx,
		`INSERT INTO service_categories (id, name, created_at) VALUES ($1, $2, $3)`,
		uuid.UUID(c.ID), c.Name, c.CreatedAt,
	)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (s *PostgresStore) RenameCategory(ctx context.Context, categoryID id.CategoryID, name string) error {
	res, err := s.execer(ctx).ExecContext(ctx,
		`UPDATE service_categories SET name = $2 WHERE id = $1`, uuid.UUID(categoryID), name,
	)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("rename category: %w", err)
	}
	return requireRow(res, "rename category")
}

func (s *PostgresStore) FindCategory(ctx context.Context, categoryID id.CategoryID) (*models.Category, error) {
	var (
		c   models.Category
		cid uuid.UUID
	)
	err := s.execer(ctx).QueryRowContext(ctx,
		`SELECT id, name, created_at FROM service_categories WHERE id = $1`, uuid.UUID(categoryID),
	).Scan(&cid, &c.Name, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}
	c.ID = id.CategoryID(cid)
	return &c, nil
}

func (s *PostgresStore) ListCategories(ctx context.Context) ([]models.CategorySummary, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, `
		SELECT c.id, c.name, c.created_at, COUNT(i.id)
		FROM service_categories c
		LEFT JOIN service_items i ON i.category_id = c.id
		GROUP BY c.id, c.name, c.created_at
		ORDER BY lower(c.name)`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []models.CategorySummary
	for rows.Next() {
		var (
			cs  models.CategorySummary
			cid uuid.UUID
		)
		if err := rows.Scan(&cid, &cs.Name, &cs.CreatedAt, &cs.ItemCount); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		cs.ID = id.CategoryID(cid)
		out = append(out, cs)
	}
	return out, rows.Err()
}

func (s *PostgresStore) CountItemsInCategory(ctx context.Context, categoryID id.CategoryID) (int, error) {
	var n int
	err := s.execer(ctx).QueryRowContext(ctx,
		`SELECT COUNT(*) FROM service_items WHERE category_id = $1`, uuid.UUID(categoryID),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return n, nil
}

func (s *PostgresStore) DeleteCategory(ctx context.Context, categoryID id.CategoryID) error {
	res, err := s.execer(ctx).ExecContext(ctx, `DELETE FROM service_categories WHERE id = $1`, uuid.UUID(categoryID))
	if err != nil {
		if postgres.IsForeignKeyViolation(err) {
			return sentinel.ErrInUse
		}
		return fmt.Errorf("delete category: %w", err)
	}
	return requireRow(res, "delete category")
}

const itemColumns = `id, category_id, name, is_active, created_at`

func (s *PostgresStore) CreateItem(ctx context.Context, it *models.Item) error {
	_, err := s.execer(ctx).ExecContext(ctx,
		`INSERT INTO service_items (`+itemColumns+`) VALUES ($1, $2, $3, $4, $5)`,
		uuid.UUID(it.ID), uuid.UUID(it.CategoryID), it.Name, it.IsActive, it.CreatedAt,
	)
	if err != nil {
		if postgres.IsForeignKeyViolation(err) {
			return sentinel.ErrNotFound
		}
		if postgres.IsUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

func (s *PostgresStore) UpdateItem(ctx context.Context, it *models.Item) error {
	res, err := s.execer(ctx).ExecContext(ctx,
		`UPDATE service_items SET category_id = $2, name = $3, is_active = $4 WHERE id = $1`,
		uuid.UUID(it.ID), uuid.UUID(it.CategoryID), it.Name, it.IsActive,
	)
	if err != nil {
		if postgres.IsForeignKeyViolation(err) {
			return sentinel.ErrNotFound
		}
		return fmt.Errorf("update item: %w", err)
	}
	return requireRow(res, "update item")
}

func (s *PostgresStore) FindItem(ctx context.Context, itemID id.ServiceItemID) (*models.Item, error) {
	row := s.execer(ctx).QueryRowContext(ctx, `SELECT `+itemColumns+` FROM service_items WHERE id = $1`, uuid.UUID(itemID))
	return scanItem(row)
}

func (s *PostgresStore) ListItems(ctx context.Context, activeOnly bool) ([]*models.Item, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, `
		SELECT `+itemColumns+` FROM service_items
		WHERE NOT $1 OR is_active
		ORDER BY lower(name)`, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return collectItems(rows)
}

func (s *PostgresStore) ListItemsByIDs(ctx context.Context, itemIDs []id.ServiceItemID) ([]*models.Item, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}
	ids := make([]string, 0, len(itemIDs))
	for _, itemID := range itemIDs {
		ids = append(ids, itemID.String())
	}
	rows, err := s.execer(ctx).QueryContext(ctx, `
		SELECT `+itemColumns+` FROM service_items
		WHERE id = ANY($1::uuid[])
		ORDER BY lower(name)`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("list items by id: %w", err)
	}
	return collectItems(rows)
}

func (s *PostgresStore) DeleteItem(ctx context.Context, itemID id.ServiceItemID) error {
	res, err := s.execer(ctx).ExecContext(ctx, `DELETE FROM service_items WHERE id = $1`, uuid.UUID(itemID))
	if err != nil {
		if postgres.IsForeignKeyViolation(err) {
			return sentinel.ErrInUse
		}
		return fmt.Errorf("delete item: %w", err)
	}
	return requireRow(res, "delete item")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*models.Item, error) {
	var (
		it       models.Item
		itemID   uuid.UUID
		category uuid.UUID
	)
	if err := row.Scan(&itemID, &category, &it.Name, &it.IsActive, &it.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan item: %w", err)
	}
	it.ID = id.ServiceItemID(itemID)
	it.CategoryID = id.CategoryID(category)
	return &it, nil
}

func collectItems(rows *sql.Rows) ([]*models.Item, error) {
	defer rows.Close()
	var out []*models.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func requireRow(res sql.Result, op string) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", op, err)
	}
	if rows == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}
