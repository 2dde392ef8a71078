package mock

import (
	"context"

	"github.com/fwojciec/orgscout"
)

var _ orgscout.RunService = (*RunService)(nil)

// RunService is a mock implementation of orgscout.RunService.
type RunService struct {
	CreateRunFn func(ctx context.Context, run *orgscout.Run) error
	FindRunsFn  func(ctx context.Context, sourceID string, limit int) ([]*orgscout.Run, error)
}

func (s *RunService) CreateRun(ctx context.Context, run *orgscout.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) FindRuns(ctx context.Context, sourceID string, limit int) ([]*orgscout.Run, error) {
	return s.FindRunsFn(ctx, sourceID, limit)
}
