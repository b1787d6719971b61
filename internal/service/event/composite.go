package event

import (
	"context"

	"go-snowflake/internal/domain"
	"go.uber.org/multierr"
)

var _ Recorder = (*CompositeRecorder)(nil)

// CompositeRecorder 把事件依次写入所有的 Recorder，单个失败不影响其它的
type CompositeRecorder struct {
	recorders []Recorder
}

func NewCompositeRecorder(recorders ...Recorder) *CompositeRecorder {
	return &CompositeRecorder{recorders: recorders}
}

func (c *CompositeRecorder) Record(ctx context.Context, evt domain.Event) error {
	var err error
	for _, r := range c.recorders {
		err = multierr.Append(err, r.Record(ctx, evt))
	}
	return err
}
