package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/parokitomang/content-service/internal/domain"
)

// listLimit caps public list queries.
const listLimit = 100

// SliderRepository defines persistence access for slider items.
type SliderRepository interface {
	Create(ctx context.Context, item *domain.SliderItem) error
	ListActive(ctx context.Context) ([]domain.SliderItem, error)
}

type sliderRepository struct {
	pool *pgxpool.Pool
}

// NewSliderRepository returns a Postgres-backed implementation.
func NewSliderRepository(pool *pgxpool.Pool) SliderRepository {
	return &sliderRepository{pool: pool}
}

func (r *sliderRepository) Create(ctx context.Context, item *domain.SliderItem) error {
	const query = `
        INSERT INTO sliders (id, image_base64, link, "order", active, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		item.ID,
		item.ImageBase64,
		item.Link,
		item.Order,
		item.Active,
		item.CreatedAt,
	)
	return err
}

func (r *sliderRepository) ListActive(ctx context.Context) ([]domain.SliderItem, error) {
	const query = `
        SELECT id, image_base64, link, "order", active, created_at
        FROM sliders WHERE active ORDER BY "order" ASC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, listLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.SliderItem, 0)
	for rows.Next() {
		var item domain.SliderItem
		if err := rows.Scan(
			&item.ID,
			&item.ImageBase64,
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
