package mock

import (
	"context"

	"github.com/fwojciec/orgscout"
)

var _ orgscout.SourceService = (*SourceService)(nil)

// SourceService is a mock implementation of orgscout.SourceService.
type SourceService struct {
	CreateSourceFn   func(ctx context.Context, source *orgscout.Source) error
	FindSourceByIDFn func(ctx context.Context, id string) (*orgscout.Source, error)
	FindSourcesFn    func(ctx context.Context, filter orgscout.SourceFilter) ([]*orgscout.Source, error)
	UpdateSourceFn   func(ctx context.Context, id string, upd orgscout.SourceUpdate) (*orgscout.Source, error)
	DeleteSourceFn   func(ctx context.Context, id string) error
}

func (s *SourceService) CreateSource(ctx context.Context, source *orgscout.Source) error {
	return s.CreateSourceFn(ctx, source)
}

func (s *SourceService) FindSourceByID(ctx context.Context, id string) (*orgscout.Source, error) {
	return s.FindSourceByIDFn(ctx, id)
}

func (s *SourceService) FindSources(ctx context.Context, filter orgscout.SourceFilter) ([]*orgscout.Source, error) {
	return s.FindSourcesFn(ctx, filter)
}

func (s *SourceService) UpdateSource(ctx context.Context, id string, upd orgscout.SourceUpdate) (*orgscout.Source, error) {
	return s.UpdateSourceFn(ctx, id, upd)
}

func (s *SourceService) DeleteSource(ctx context.Context, id string) error {
	return s.DeleteSourceFn(ctx, id)
}
