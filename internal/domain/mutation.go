package domain

import (
	"github.com/aravasio/simworld/internal/core/types"
)

// MutationKind identifies the type of queued state change.
type MutationKind string

const (
	MutationActorMoved      MutationKind = "actorMoved"
	MutationPositionSet     MutationKind = "actorPositionSet"
	MutationPositionCleared MutationKind = "actorPositionCleared"
	MutationActorRemoved    MutationKind = "actorRemoved"
	MutationActorAdded      MutationKind = "actorAdded"
	MutationRenderableSet   MutationKind = "actorRenderableSet"
	MutationContentsSet     MutationKind = "actorContentsSet"
	MutationHitPointsSet    MutationKind = "actorHitPointsSet"
	MutationVitalsSet       MutationKind = "actorVitalsSet"
	MutationPathSet         MutationKind = "pathSet"
)

// Mutation is a single planned change. The plan phase only produces
// mutations; the apply phase folds them into the next store revision.
type Mutation struct {
	Kind    MutationKind  `json:"kind"`
	ActorID types.ActorID `json:"actorId"`
	Payload any           `json:"payload,omitempty"`
}

// MovePayload captures a position delta for actorMoved.
type MovePayload struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

// PositionPayload captures the tile an item is placed on.
type PositionPayload struct {
	Position Position `json:"position"`
}

// SpawnPayload describes a freshly created actor.
type SpawnPayload struct {
	Kind        string        `json:"kind"`
	Position    Position      `json:"position"`
	Glyph       types.GlyphID `json:"glyphId"`
	Tags        []string      `json:"tags,omitempty"`
	PassThrough bool          `json:"passThrough"`
}

// RenderablePayload carries the new renderable.
type RenderablePayload struct {
	Renderable Renderable `json:"renderable"`
}

// ContentsPayload carries the full replacement contents list.
type ContentsPayload struct {
	Contents []ContentsEntry `json:"contents"`
}

// HitPointsPayload carries the new hit points.
type HitPointsPayload struct {
	HitPoints HitPoints `json:"hitPoints"`
}

// VitalsPayload carries the new vitals.
type VitalsPayload struct {
	Vitals Vitals `json:"vitals"`
}

// PathPayload carries the full replacement path.
type PathPayload struct {
	Path []Position `json:"path"`
}

func MoveMutation(id types.ActorID, from, to Position) Mutation {
	return Mutation{Kind: MutationActorMoved, ActorID: id, Payload: MovePayload{From: from, To: to}}
}

func PositionSetMutation(id types.ActorID, pos Position) Mutation {
	return Mutation{Kind: MutationPositionSet, ActorID: id, Payload: PositionPayload{Position: pos}}
}

func PositionClearedMutation(id types.ActorID) Mutation {
	return Mutation{Kind: MutationPositionCleared, ActorID: id}
}

func RemoveMutation(id types.ActorID) Mutation {
	return Mutation{Kind: MutationActorRemoved, ActorID: id}
}

func AddMutation(id types.ActorID, spawn SpawnPayload) Mutation {
	return Mutation{Kind: MutationActorAdded, ActorID: id, Payload: spawn}
}

func RenderableMutation(id types.ActorID, r Renderable) Mutation {
	return Mutation{Kind: MutationRenderableSet, ActorID: id, Payload: RenderablePayload{Renderable: r}}
}

// ContentsMutation copies the slice so later edits by the caller cannot leak into the plan.
func ContentsMutation(id types.ActorID, contents []ContentsEntry) Mutation {
	cp := make([]ContentsEntry, len(contents))
	copy(cp, contents)
	return Mutation{Kind: MutationContentsSet, ActorID: id, Payload: ContentsPayload{Contents: cp}}
}

func HitPointsMutation(id types.ActorID, hp HitPoints) Mutation {
	return Mutation{Kind: MutationHitPointsSet, ActorID: id, Payload: HitPointsPayload{HitPoints: hp}}
}

func VitalsMutation(id types.ActorID, v Vitals) Mutation {
	return Mutation{Kind: MutationVitalsSet, ActorID: id, Payload: VitalsPayload{Vitals: v}}
}

// PathMutation copies the slice for the same reason as ContentsMutation.
func PathMutation(id types.ActorID, path []Position) Mutation {
	cp := make([]Position, len(path))
	copy(cp, path)
	return Mutation{Kind: MutationPathSet, ActorID: id, Payload: PathPayload{Path: cp}}
}
