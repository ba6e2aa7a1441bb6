package about

import "context"

type Repository interface {
	// GetAbout returns the singleton row, or dberr.ErrNotFound if it has
	// never been created.
	GetAbout(context context.Context) (*SiteAbout, error)
	CreateAbout(context context.Context, a *SiteAbout) error
	UpdateAbout(context context.Context, a *SiteAbout) error
}
