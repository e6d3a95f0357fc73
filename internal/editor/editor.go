package editor

import (
	"fmt"

	"github.com/google/uuid"
)

// Editor applies section operations. It only holds the identifier source,
// so independent instances can be built for tests.
type Editor struct {
	newID func() string
}

// New creates an Editor. A nil newID uses random UUIDs.
func New(newID func() string) *Editor {
	if newID == nil {
		newID = uuid.NewString
	}
	return &Editor{newID: newID}
}

// Direction is a reorder direction
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// ParseDirection parses "up" or "down".
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Up, Down:
		return Direction(s), nil
	default:
		return "", fmt.Errorf("invalid direction %q: must be up or down", s)
	}
}

// Move swaps the entry at index with its neighbour in the given direction.
// Out-of-range moves (first up, last down, bad index) return an unchanged copy.
func Move[T any](list []T, index int, dir Direction) []T {
	out := copyList(list)
	switch {
	case dir == Up && index > 0 && index < len(out):
		out[index], out[index-1] = out[index-1], out[index]
	case dir == Down && index >= 0 && index < len(out)-1:
		out[index], out[index+1] = out[index+1], out[index]
	}
	return out
}

// prepend returns a new list with item at the head.
func prepend[T any](list []T, item T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, item)
	return append(out, list...)
}

// appendItem returns a new list with item at the tail.
func appendItem[T any](list []T, item T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, list...)
	return append(out, item)
}

// removeByID returns a new list without the entries whose id matches.
func removeByID[T any](list []T, id string, idOf func(T) string) []T {
	if list == nil {
		return nil
	}
	out := make([]T, 0, len(list))
	for _, item := range list {
		if idOf(item) != id {
			out = append(out, item)
		}
	}
	return out
}

// updateByID returns a new list with apply run against the entry matching id.
// A missing id leaves the list unchanged.
func updateByID[T any](list []T, id string, idOf func(T) string, apply func(*T) error) ([]T, error) {
	out := copyList(list)
	for i := range out {
		if idOf(out[i]) == id {
			if err := apply(&out[i]); err != nil {
				return list, err
			}
			break
		}
	}
	return out, nil
}

func copyList[T any](list []T) []T {
	if list == nil {
		return nil
	}
	out := make([]T, len(list))
	copy(out, list)
	return out
}
