package generator

import (
	"errors"
	"fmt"
)

// MinSize is the smallest extent either half of a split may have
const MinSize = 6

var (
	// ErrInvalidRoot is returned when the root rectangle has a non-positive dimension
	ErrInvalidRoot = errors.New("root rectangle must have positive width and height")
	// ErrInvalidDepth is returned for a negative split depth
	ErrInvalidDepth = errors.New("split depth must not be negative")
)

// Source is the random stream consumed by the generator. *math/rand.Rand satisfies it.
// Intn must panic on a non-positive bound.
type Source interface {
	Intn(n int) int
}

// Room is a BSP leaf with its carved interior.
// ID is the leaf's index in the final flat sequence; it says nothing about spatial adjacency.
type Room struct {
	ID     int
	Bounds Rect
	Inner  Rect
}

// BSPGenerator partitions a rectangle into rooms using Binary Space Partitioning
type BSPGenerator struct {
	// Carver turns leaf bounds into room interiors. Nil means DefaultCarver.
	Carver Carver
}

// Name returns the name of this generator
func (g *BSPGenerator) Name() string {
	return "BSP Tree"
}

// Split runs depth rounds of subdivision over root and carves a room in every leaf.
func (g *BSPGenerator) Split(root Rect, depth int, src Source) ([]Room, error) {
	if root.Width <= 0 || root.Height <= 0 {
		return nil, fmt.Errorf("split %v: %w", root, ErrInvalidRoot)
	}
	if depth < 0 {
		return nil, fmt.Errorf("split depth %d: %w", depth, ErrInvalidDepth)
	}

	carver := g.Carver
	if carver == nil {
		carver = DefaultCarver
	}

	leaves := []Rect{root}
	for round := 0; round < depth; round++ {
		next := make([]Rect, 0, len(leaves)*2)
		for _, leaf := range leaves {
			// Leaves that failed earlier are retried; undersized ones keep failing.
			if a, b, ok := leaf.Subdivide(src); ok {
				next = append(next, a, b)
			} else {
				next = append(next, leaf)
			}
		}
		leaves = next
	}

	rooms := make([]Room, len(leaves))
	for i, bounds := range leaves {
		rooms[i] = Room{
			ID:     i,
			Bounds: bounds,
			Inner:  carver.Carve(bounds, src),
		}
	}

	return rooms, nil
}

// Split partitions root with the default carver
func Split(root Rect, depth int, src Source) ([]Room, error) {
	return BSP.Split(root, depth, src)
}
