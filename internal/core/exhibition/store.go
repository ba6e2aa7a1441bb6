package exhibition

import "context"

type Repository interface {
	ListExhibitions(context context.Context) ([]*Exhibition, error)
	GetExhibition(context context.Context, id string) (*Exhibition, error)
	CreateExhibition(context context.Context, e *Exhibition) error
	UpdateExhibition(context context.Context, e *Exhibition) error
	DeleteExhibition(context context.Context, id string) error
}
