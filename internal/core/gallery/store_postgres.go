package gallery

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/atelierhq/atelier/internal/platform/database/schema"
	"github.com/atelierhq/atelier/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func paintingColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		schema.ContentPainting.ID, schema.ContentPainting.Title, schema.ContentPainting.ImageURL,
		schema.ContentPainting.Description, schema.ContentPainting.Category, schema.ContentPainting.Year,
		schema.ContentPainting.Medium, schema.ContentPainting.Dimensions, schema.ContentPainting.Sold,
		schema.ContentPainting.Price, schema.ContentPainting.Tags,
		schema.ContentPainting.CreatedAt, schema.ContentPainting.UpdatedAt,
	)
}

func scanPainting(row interface{ Scan(...any) error }) (*Painting, error) {
	p := &Painting{}
	err := row.Scan(
		&p.ID, &p.Title, &p.ImageURL, &p.Description, &p.Category, &p.Year,
		&p.Medium, &p.Dimensions, &p.Sold, &p.Price, &p.Tags, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (repository *PostgresRepository) ListPaintings(context context.Context, category string) ([]*Painting, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s`, paintingColumns(), schema.ContentPainting.Table)

	args := []any{}
	if category != "" {
		query += fmt.Sprintf(" WHERE %s = $1", schema.ContentPainting.Category)
		args = append(args, category)
	}

	// Newest works first, matching the gallery page.
	query += fmt.Sprintf(" ORDER BY %s DESC", schema.ContentPainting.CreatedAt)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_paintings")
	}
	defer rows.Close()

	var paintings []*Painting
	for rows.Next() {
		p, err := scanPainting(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_painting")
		}
		paintings = append(paintings, p)
	}

	return paintings, nil
}

func (repository *PostgresRepository) GetPainting(context context.Context, id string) (*Painting, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		paintingColumns(), schema.ContentPainting.Table, schema.ContentPainting.ID,
	)

	p, err := scanPainting(repository.db.QueryRow(context, query, id))
	return p, dberr.Wrap(err, "get_painting")
}

func (repository *PostgresRepository) CreatePainting(context context.Context, p *Painting) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.ContentPainting.Table,
		schema.ContentPainting.ID, schema.ContentPainting.Title, schema.ContentPainting.ImageURL,
		schema.ContentPainting.Description, schema.ContentPainting.Category, schema.ContentPainting.Year,
		schema.ContentPainting.Medium, schema.ContentPainting.Dimensions, schema.ContentPainting.Sold,
		schema.ContentPainting.Price, schema.ContentPainting.Tags,
		schema.ContentPainting.CreatedAt, schema.ContentPainting.UpdatedAt,
		schema.ContentPainting.CreatedAt, schema.ContentPainting.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		p.ID, p.Title, p.ImageURL, p.Description, p.Category, p.Year,
		p.Medium, p.Dimensions, p.Sold, p.Price, p.Tags,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	return dberr.Wrap(err, "create_painting")
}

func (repository *PostgresRepository) UpdatePainting(context context.Context, p *Painting) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = $10, %s = $11, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.ContentPainting.Table,
		schema.ContentPainting.Title, schema.ContentPainting.ImageURL, schema.ContentPainting.Description,
		schema.ContentPainting.Category, schema.ContentPainting.Year, schema.ContentPainting.Medium,
		schema.ContentPainting.Dimensions, schema.ContentPainting.Sold, schema.ContentPainting.Price,
		schema.ContentPainting.Tags, schema.ContentPainting.UpdatedAt,
		schema.ContentPainting.ID,
		schema.ContentPainting.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		p.ID, p.Title, p.ImageURL, p.Description, p.Category, p.Year,
		p.Medium, p.Dimensions, p.Sold, p.Price, p.Tags,
	).Scan(&p.UpdatedAt)
	return dberr.Wrap(err, "update_painting")
}

func (repository *PostgresRepository) DeletePainting(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.ContentPainting.Table, schema.ContentPainting.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_painting")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
