package domain

import (
	"iter"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Graph represents the dependency graph of products in a build session.
type Graph struct {
	products       map[InternedString]Product
	executionOrder []InternedString
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		products: make(map[InternedString]Product),
	}
}

// AddProduct adds a product to the graph.
// It returns an error if a product with the same name already exists.
func (g *Graph) AddProduct(p *Product) error {
	if _, exists := g.products[p.Name]; exists {
		return zerr.With(ErrProductAlreadyExists, "product", p.Name.String())
	}
	g.products[p.Name] = *p
	return nil
}

// AddExternal adds an ordering-only node for a product that is provided by
// the installed toolchain. Adding the same external twice is a no-op, and an
// external never shadows a product that is built in this session.
func (g *Graph) AddExternal(name InternedString) {
	if _, exists := g.products[name]; exists {
		return
	}
	g.products[name] = Product{Name: name, External: true}
}

// ProductCount returns the number of nodes in the graph, externals included.
func (g *Graph) ProductCount() int {
	return len(g.products)
}

// Validate checks for missing dependencies and cycles using a depth-first
// topological sort. It populates the execution order on success.
func (g *Graph) Validate() error {
	g.executionOrder = make([]InternedString, 0, len(g.products))
	visited := make(map[InternedString]int) // 0: unvisited, 1: visiting, 2: visited
	var path []InternedString

	var visit func(u InternedString) error
	visit = func(u InternedString) error {
		visited[u] = 1
		path = append(path, u)

		product, exists := g.products[u]
		if !exists {
			return zerr.With(ErrMissingDependency, "dependency", u.String())
		}

		for _, dep := range product.Dependencies {
			if visited[dep] == 1 {
				return g.buildCycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		g.executionOrder = append(g.executionOrder, u)
		return nil
	}

	// Visit roots in name order so the execution order is deterministic.
	names := make([]string, 0, len(g.products))
	for name := range g.products {
		names = append(names, name.String())
	}
	slices.Sort(names)

	for _, name := range names {
		interned := NewInternedString(name)
		if visited[interned] == 0 {
			if err := visit(interned); err != nil {
				return err
			}
		}
	}

	return nil
}

// buildCycleError constructs an error with cycle path metadata.
func (g *Graph) buildCycleError(path []InternedString, dep InternedString) error {
	var b strings.Builder
	startIdx := slices.Index(path, dep)
	for i := startIdx; i >= 0 && i < len(path); i++ {
		b.WriteString(path[i].String())
		b.WriteString(" -> ")
	}
	b.WriteString(dep.String())
	return zerr.With(ErrCycleDetected, "cycle", b.String())
}

// Walk returns an iterator that yields products in execution order.
// It assumes Validate() has been called and returned nil.
func (g *Graph) Walk() iter.Seq[Product] {
	return func(yield func(Product) bool) {
		for _, name := range g.executionOrder {
			if !yield(g.products[name]) {
				return
			}
		}
	}
}

// Levels groups products into topological levels: every product in a level
// depends only on products in earlier levels, so products within a level may
// be dispatched concurrently. It assumes Validate() has been called and
// returned nil.
func (g *Graph) Levels() [][]Product {
	depth := make(map[InternedString]int, len(g.products))
	var levels [][]Product

	for _, name := range g.executionOrder {
		product := g.products[name]
		d := 0
		for _, dep := range product.Dependencies {
			if depDepth, ok := depth[dep]; ok && depDepth+1 > d {
				d = depDepth + 1
			}
		}
		depth[name] = d
		for len(levels) <= d {
			levels = append(levels, nil)
		}
		levels[d] = append(levels[d], product)
	}

	return levels
}
