package gallery

import "context"

type Repository interface {
	ListPaintings(context context.Context, category string) ([]*Painting, error)
	GetPainting(context context.Context, id string) (*Painting, error)
	CreatePainting(context context.Context, p *Painting) error
	UpdatePainting(context context.Context, p *Painting) error
	DeletePainting(context context.Context, id string) error
}
