package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/aravasio/simworld/internal/core/types"
	"github.com/aravasio/simworld/internal/domain"
	"github.com/aravasio/simworld/internal/engine"
	"github.com/aravasio/simworld/internal/render"
)

// outputOptions - как печатать прогон.
type outputOptions struct {
	Render   bool
	Color    bool
	JSON     bool
	Observer uint32
	Radius   int
}

// simulate делает ticks тиков и печатает каждый дифф в out.
func simulate(ctx context.Context, out io.Writer, runner *engine.Runner, ticks int, opts outputOptions) error {
	renderer := render.New(render.Options{
		Color:    opts.Color,
		Observer: types.ActorID(opts.Observer),
		Radius:   opts.Radius,
	})
	enc := json.NewEncoder(out)

	if opts.Render && !opts.JSON {
		if err := printFrame(out, renderer, runner); err != nil {
			return err
		}
	}

	err := runner.RunTicks(ctx, ticks, func(diff domain.Diff) error {
		if opts.JSON {
			return enc.Encode(diff)
		}
		if _, err := fmt.Fprintln(out, render.DiffSummary(diff)); err != nil {
			return err
		}
		if opts.Render {
			return printFrame(out, renderer, runner)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if !opts.JSON {
		_, err = fmt.Fprintln(out, renderer.Status(runner.State(), uint32(runner.Seed())))
	}
	return err
}

func printFrame(out io.Writer, r *render.Renderer, runner *engine.Runner) error {
	_, err := fmt.Fprintf(out, "%s\n%s\n\n", r.Status(runner.State(), uint32(runner.Seed())), r.Frame(runner.State()))
	return err
}
