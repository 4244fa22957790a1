package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/parokitomang/content-service/internal/domain"
)

// MenuRepository defines persistence access for menu items.
type MenuRepository interface {
	Create(ctx context.Context, item *domain.MenuItem) error
	ListActive(ctx context.Context) ([]domain.MenuItem, error)
}

type menuRepository struct {
	pool *pgxpool.Pool
}

// NewMenuRepository returns a Postgres-backed implementation.
func NewMenuRepository(pool *pgxpool.Pool) MenuRepository {
	return &menuRepository{pool: pool}
}

func (r *menuRepository) Create(ctx context.Context, item *domain.MenuItem) error {
	const query = `
        INSERT INTO menus (id, title, icon, route, link, "order", active, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		item.ID,
		item.Title,
		item.Icon,
		item.Route,
		item.Link,
		item.Order,
		item.Active,
		item.CreatedAt,
	)
	return err
}

func (r *menuRepository) ListActive(ctx context.Context) ([]domain.MenuItem, error) {
	const query = `
        SELECT id, title, icon, route, link, "order", active, created_at
        FROM menus WHERE active ORDER BY "order" ASC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, listLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.MenuItem, 0)
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Icon,
			&item.Route,
			&item.Link,
			&item.Order,
			&item.Active,
			&item.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
