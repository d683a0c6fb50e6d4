// Package registry provides a global registry of map layouts.
// Layout generators register themselves in init() functions, allowing the
// CLI and the config loader to resolve layouts by name.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownLayout is returned by Create for names that were never registered.
var ErrUnknownLayout = errors.New("registry: unknown layout")

// Layout is a generated obstacle grid: one string per row, '#' for blocked
// cells and '.' for open ones.
type Layout struct {
	Title string
	Rows  []string
}

// LayoutInfo contains metadata about a registered layout.
type LayoutInfo struct {
	ID    string
	Title string
}

// Factory generates a layout for a cols x rows grid.
type Factory func(cols, rows int) Layout

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a layout factory to the registry.
// Panics if a layout with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: layout %q already registered", id))
	}

	factories[id] = f
	titles[id] = f(5, 5).Title
}

// List returns information about all registered layouts, sorted by ID.
func List() []LayoutInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]LayoutInfo, 0, len(factories))
	for id := range factories {
		result = append(result, LayoutInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create generates the named layout for the given grid size.
func Create(id string, cols, rows int) (Layout, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return Layout{}, fmt.Errorf("%w %q", ErrUnknownLayout, id)
	}

	return f(cols, rows), nil
}

// Exists checks if a layout with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
