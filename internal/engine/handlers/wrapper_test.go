package handlers

import (
	"testing"

	"github.com/aravasio/simworld/internal/core/types/enums"
	"github.com/aravasio/simworld/internal/domain"
)

func TestWithPayload(t *testing.T) {
	called := false
	h := WithPayload(DecodeDirection, func(ctx Context, p DirectionPayload) (Result, error) {
		called = true
		return Done(ctx), nil
	})

	tests := []struct {
		name       string
		cmd        domain.Command
		wantCalled bool
		reason     domain.Reason
	}{
		{"Valid direction", domain.MoveCommand(1, enums.West), true, domain.ReasonNone},
		{"Missing direction", domain.Command{Kind: domain.CommandMove, ActorID: 1}, false, domain.ReasonInvalidCommand},
		{"Garbage direction", domain.MoveCommand(1, enums.Direction(42)), false, domain.ReasonInvalidCommand},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called = false
			res, err := h(Context{Command: tt.cmd, Seed: 9, NextActorID: 3})
			if err != nil {
				t.Fatal(err)
			}
			if called != tt.wantCalled || res.Reason != tt.reason {
				t.Errorf("called = %v, reason = %q", called, res.Reason)
			}
			if res.Seed != 9 || res.NextActorID != 3 {
				t.Errorf("seed/id must pass through: %+v", res)
			}
		})
	}
}

func TestResultHelpers(t *testing.T) {
	ctx := Context{Seed: 1, NextActorID: 2}
	if r := Rejected(ctx, domain.ReasonLocked); r.OK() || len(r.Mutations) != 0 {
		t.Errorf("Rejected = %+v", r)
	}
	if r := Done(ctx, domain.RemoveMutation(5)); !r.OK() || len(r.Mutations) != 1 {
		t.Errorf("Done = %+v", r)
	}
	if _, ok := (Registry{domain.CommandWait: nil}).Lookup(domain.CommandWait); ok {
		t.Error("nil handler must not be found")
	}
	if ctx.Logger() == nil {
		t.Error("Logger must never be nil")
	}
}
