package blog

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

func postColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		schema.ContentBlogPost.ID, schema.ContentBlogPost.Slug, schema.ContentBlogPost.Title,
		schema.ContentBlogPost.Excerpt, schema.ContentBlogPost.Content, schema.ContentBlogPost.ImageURL,
		schema.ContentBlogPost.Author, schema.ContentBlogPost.PublishDate, schema.ContentBlogPost.Tags,
		schema.ContentBlogPost.CreatedAt, schema.ContentBlogPost.UpdatedAt,
	)
}

func scanPost(row interface{ Scan(...any) error }) (*Post, error) {
	p := &Post{}
	err := row.Scan(
		&p.ID, &p.Slug, &p.Title, &p.Excerpt, &p.Content, &p.ImageURL,
		&p.Author, &p.PublishDate, &p.Tags, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (repository *PostgresRepository) ListPosts(context context.Context) ([]*Post, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s DESC`,
		postColumns(), schema.ContentBlogPost.Table, schema.ContentBlogPost.PublishDate,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_blog_posts")
	}
	defer rows.Close()

	var posts []*Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_blog_post")
		}
		posts = append(posts, p)
	}

	return posts, nil
}

func (repository *PostgresRepository) GetPost(context context.Context, id string) (*Post, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		postColumns(), schema.ContentBlogPost.Table, schema.ContentBlogPost.ID,
	)

	p, err := scanPost(repository.db.QueryRow(context, query, id))
	return p, dberr.Wrap(err, "get_blog_post")
}

func (repository *PostgresRepository) GetPostBySlug(context context.Context, slug string) (*Post, error) {
	// Slugs are not unique by policy; the most recently published post wins.
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC LIMIT 1`,
		postColumns(), schema.ContentBlogPost.Table, schema.ContentBlogPost.Slug, schema.ContentBlogPost.PublishDate,
	)

	p, err := scanPost(repository.db.QueryRow(context, query, slug))
	return p, dberr.Wrap(err, "get_blog_post_by_slug")
}

func (repository *PostgresRepository) CreatePost(context context.Context, p *Post) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.ContentBlogPost.Table,
		schema.ContentBlogPost.ID, schema.ContentBlogPost.Slug, schema.ContentBlogPost.Title,
		schema.ContentBlogPost.Excerpt, schema.ContentBlogPost.Content, schema.ContentBlogPost.ImageURL,
		schema.ContentBlogPost.Author, schema.ContentBlogPost.PublishDate, schema.ContentBlogPost.Tags,
		schema.ContentBlogPost.CreatedAt, schema.ContentBlogPost.UpdatedAt,
		schema.ContentBlogPost.CreatedAt, schema.ContentBlogPost.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		p.ID, p.Slug, p.Title, p.Excerpt, p.Content, p.ImageURL, p.Author, p.PublishDate, p.Tags,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	return dberr.Wrap(err, "create_blog_post")
}

func (repository *PostgresRepository) UpdatePost(context context.Context, p *Post) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.ContentBlogPost.Table,
		schema.ContentBlogPost.Slug, schema.ContentBlogPost.Title, schema.ContentBlogPost.Excerpt,
		schema.ContentBlogPost.Content, schema.ContentBlogPost.ImageURL, schema.ContentBlogPost.Author,
		schema.ContentBlogPost.PublishDate, schema.ContentBlogPost.Tags, schema.ContentBlogPost.UpdatedAt,
		schema.ContentBlogPost.ID,
		schema.ContentBlogPost.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		p.ID, p.Slug, p.Title, p.Excerpt, p.Content, p.ImageURL, p.Author, p.PublishDate, p.Tags,
	).Scan(&p.UpdatedAt)
	return dberr.Wrap(err, "update_blog_post")
}

func (repository *PostgresRepository) DeletePost(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.ContentBlogPost.Table, schema.ContentBlogPost.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_blog_post")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
