package blog

import "context"

type Repository interface {
	ListPosts(context context.Context) ([]*Post, error)
	GetPost(context context.Context, id string) (*Post, error)
	GetPostBySlug(context context.Context, slug string) (*Post, error)
	CreatePost(context context.Context, p *Post) error
	UpdatePost(context context.Context, p *Post) error
	DeletePost(context context.Context, id string) error
}
