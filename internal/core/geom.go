// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import (
	"errors"
	"math"
)

var (
	// ErrInvalidPosition is returned when an entity is created at a NaN or infinite position.
	ErrInvalidPosition = errors.New("core: position must be finite")

	// ErrInvalidSize is returned when an entity size is non-positive or non-finite.
	ErrInvalidSize = errors.New("core: size must be positive and finite")
)

// Vec is a real-valued 2D vector in world coordinates.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Finite reports whether both components are neither NaN nor infinite.
func (v Vec) Finite() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

// Heading returns a vector of length speed pointing from v towards to.
// The angle is taken with atan2, so a zero offset points along +X.
func (v Vec) Heading(to Vec, speed float64) Vec {
	angle := math.Atan2(to.Y-v.Y, to.X-v.X)
	return Vec{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed}
}

// Size is the width/height pair of an entity.
type Size struct {
	W, H float64
}

// Radius returns the proximity radius derived from the size.
// A 100x100 entity has radius 50.
func (s Size) Radius() float64 {
	return math.Min(s.W, s.H) / 2
}

// EntityID identifies an entity for non-owning references.
type EntityID uint32

// Entity is a positioned, sized object in the simulation.
// Pursuer, player and projectiles all share this type and differ only by role.
type Entity struct {
	ID   EntityID
	Pos  Vec
	Size Size
}

// NewEntity creates an entity, rejecting malformed positions and sizes.
func NewEntity(id EntityID, pos Vec, size Size) (Entity, error) {
	if !pos.Finite() {
		return Entity{}, ErrInvalidPosition
	}
	if !isFinite(size.W) || !isFinite(size.H) || size.W <= 0 || size.H <= 0 {
		return Entity{}, ErrInvalidSize
	}
	return Entity{ID: id, Pos: pos, Size: size}, nil
}

// Radius returns the entity's proximity radius.
func (e Entity) Radius() float64 {
	return e.Size.Radius()
}

// Center returns the visual center of the entity (Pos is the top-left corner).
func (e Entity) Center() Vec {
	return Vec{X: e.Pos.X + e.Size.W/2, Y: e.Pos.Y + e.Size.H/2}
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Vec) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Contains reports whether mover is within target's proximity radius.
// The test is asymmetric: only the target's radius is used, so swapping the
// arguments can change the result when the radii differ.
func Contains(mover, target Entity) bool {
	return Distance(mover.Pos, target.Pos) < target.Radius()
}

// Rect represents an axis-aligned bounding box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
