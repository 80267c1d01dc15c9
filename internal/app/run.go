package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atheler/klang-sub000/internal/audio"
	"github.com/atheler/klang-sub000/internal/block"
	"github.com/atheler/klang-sub000/internal/ctxlog"
	"github.com/atheler/klang-sub000/internal/engine"
	"github.com/atheler/klang-sub000/internal/patch"
	"github.com/atheler/klang-sub000/internal/render"
	"github.com/atheler/klang-sub000/modules/bus"
)

// BuildPatch constructs the rack from the loaded model and computes its
// execution order.
func (a *App) BuildPatch(ctx context.Context) (*patch.Built, *engine.Engine, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	built, err := patch.Build(ctx, a.model, a.registry, patch.Options{
		SampleRate: a.cfg.SampleRate,
		BufferSize: a.cfg.BufferSize,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build patch: %w", err)
	}

	// Every block is a root, so disconnected islands still run.
	eng := engine.New(built.Rack.Blocks()...)
	eng.Refresh(ctx)
	return built, eng, nil
}

// Run executes the main application logic based on the provided configuration.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	built, eng, err := a.BuildPatch(ctx)
	if err != nil {
		return err
	}
	a.logger.Debug("Patch built.", "blocks", len(built.Blocks), "order_length", len(eng.Order()))

	switch {
	case a.cfg.Inspect:
		return a.inspect(built, eng)

	case a.cfg.OutPath != "":
		sink, ok := bus.FindOutput(built.Blocks)
		if !ok {
			return errors.New("patch has no output block to render")
		}
		a.logger.Info("Rendering patch to file.", "path", a.cfg.OutPath, "ticks", a.cfg.Ticks)
		if err := render.WriteWAV(ctx, a.cfg.OutPath, eng, sink, built.Rack.SampleRate(), a.cfg.Ticks); err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
		a.logger.Info("Render finished.", "ticks", eng.Ticks())
		return nil

	case a.cfg.Play:
		sink, ok := bus.FindOutput(built.Blocks)
		if !ok {
			return errors.New("patch has no output block to play")
		}
		a.logger.Info("Starting playback.", "sample_rate", built.Rack.SampleRate(), "buffer", built.Rack.BufferSize())
		if err := audio.Play(ctx, eng, sink, built.Rack.SampleRate(), built.Rack.BufferSize(), a.cfg.Ticks); err != nil {
			return fmt.Errorf("playback failed: %w", err)
		}
		a.logger.Info("Playback finished.", "ticks", eng.Ticks())
		return nil

	default:
		if a.cfg.Ticks > 0 {
			if err := eng.Run(ctx, a.cfg.Ticks); err != nil {
				return fmt.Errorf("execution failed: %w", err)
			}
			a.logger.Info("Execution finished.", "ticks", eng.Ticks())
			return nil
		}
		return a.runPaced(ctx, eng, built.Rack)
	}
}

// runPaced ticks the engine against the wall clock until ctx is cancelled.
// Without a sound device nothing else paces the graph, so each tick waits
// out the stretch of time its buffer represents. Cancellation is the normal
// way to end an open-ended run and is not an error.
func (a *App) runPaced(ctx context.Context, eng *engine.Engine, rack *block.Rack) error {
	period := time.Duration(float64(rack.BufferSize()) / rack.SampleRate() * float64(time.Second))
	a.logger.Info("Running until interrupted.", "tick_period", period)

	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			a.logger.Info("Execution stopped.", "ticks", eng.Ticks())
			return nil
		case <-ticker.C:
			eng.Tick()
		}
	}
}
