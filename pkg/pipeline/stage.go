// Package pipeline holds the stage contract, the stage I/O types and the
// error taxonomy shared by every step that turns a screenshot into a
// store asset.
package pipeline

import (
	"context"
)

// Stage is one step of the asset pipeline.
type Stage[In, Out any] interface {
	Execute(ctx context.Context, input In) (Out, error)
}

// StageFunc lets a plain function act as a Stage.
type StageFunc[In, Out any] func(ctx context.Context, input In) (Out, error)

// Execute implements Stage.
func (f StageFunc[In, Out]) Execute(ctx context.Context, input In) (Out, error) {
	return f(ctx, input)
}

// Run executes stage and tags any failure with name, so a failed asset
// reports which step broke. A cancelled ctx fails before the stage starts.
func Run[In, Out any](ctx context.Context, name string, stage Stage[In, Out], input In) (Out, error) {
	if err := ctx.Err(); err != nil {
		var zero Out
		return zero, WrapStage(name, err)
	}
	out, err := stage.Execute(ctx, input)
	if err != nil {
		return out, WrapStage(name, err)
	}
	return out, nil
}
