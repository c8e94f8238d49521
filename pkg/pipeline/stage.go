// Package pipeline defines the decode, caption and encode steps that every
// memegen request goes through, and the values passed between them.
package pipeline

import (
	"context"
)

// Stage is one step of a caption request. The orchestrator runs a decode,
// a caption and an encode stage in that order and stops at the first error.
//
// ctx is passed through so stages share one signature; the image codecs
// behind the stages run to completion once started.
type Stage[In, Out any] interface {
	Execute(ctx context.Context, input In) (Out, error)
}

// StageFunc lets a plain function stand in for a Stage.
type StageFunc[In, Out any] func(ctx context.Context, input In) (Out, error)

// Execute calls f.
func (f StageFunc[In, Out]) Execute(ctx context.Context, input In) (Out, error) {
	return f(ctx, input)
}
