package chatsweep

import (
	"context"
)

type IEngine interface {
	Run(ctx context.Context, cfg RunConfig) (*Run, error)
	Stop(ctx context.Context, runID string, requestedBy string) error
	StopAll(ctx context.Context, requestedBy string)
}

var _ IEngine = (*Engine)(nil)
