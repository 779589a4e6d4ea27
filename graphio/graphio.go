// SPDX-License-Identifier: MIT
//
// File: graphio.go
// Role: YAML Document model, Decode/Encode, conversion to core.Graph and
//       heuristic.Table.

package graphio

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/heuristic"
)

// ErrInvalidDocument indicates a document that cannot describe a graph.
var ErrInvalidDocument = errors.New("graphio: invalid document")

// Document is the on-disk form of a graph and its optional heuristic table.
type Document struct {
	Directed  bool                          `yaml:"directed"`
	Nodes     []string                      `yaml:"nodes" validate:"unique,dive,required"`
	Edges     []Edge                        `yaml:"edges" validate:"dive"`
	Estimates map[string]map[string]float64 `yaml:"heuristic,omitempty" validate:"dive,dive,gte=0"`
}

// Edge is one weighted edge of a Document.
type Edge struct {
	From string  `yaml:"from" validate:"required"`
	To   string  `yaml:"to" validate:"required"`
	Cost float64 `yaml:"cost" validate:"gte=0"`
}

var validate = validator.New()

// Decode reads one YAML document from r and validates it.
// Unknown fields are rejected.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Validate checks field constraints and that every edge endpoint and
// heuristic key names a declared node.
func (d *Document) Validate() error {
	if err := validate.Struct(d); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			e := verrs[0]
			return fmt.Errorf("%w: %s failed %q (value %v)", ErrInvalidDocument, e.Namespace(), e.Tag(), e.Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	declared := make(map[string]bool, len(d.Nodes))
	for _, n := range d.Nodes {
		declared[n] = true
	}
	for i, e := range d.Edges {
		if !declared[e.From] || !declared[e.To] {
			return fmt.Errorf("%w: edges[%d] %s→%s references an undeclared node", ErrInvalidDocument, i, e.From, e.To)
		}
	}
	for n, row := range d.Estimates {
		if !declared[n] {
			return fmt.Errorf("%w: heuristic for undeclared node %q", ErrInvalidDocument, n)
		}
		for dst := range row {
			if !declared[dst] {
				return fmt.Errorf("%w: heuristic towards undeclared node %q", ErrInvalidDocument, dst)
			}
		}
	}

	return nil
}

// Graph builds a core graph from the document. Nodes and edges keep document
// order; a repeated edge overwrites the earlier cost.
func (d *Document) Graph() (*core.Graph[string, float64], error) {
	var opts []core.GraphOption
	if !d.Directed {
		opts = append(opts, core.WithUndirected())
	}
	g := core.NewGraph[string, float64](opts...)
	for _, n := range d.Nodes {
		if err := g.AddNode(n); err != nil {
			return nil, err
		}
	}
	for _, e := range d.Edges {
		if err := g.AddEdge(e.From, e.To, e.Cost); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
	}

	return g, nil
}

// Heuristic returns the estimate table of the YAML heuristic section.
// Pairs without an entry estimate 0.
func (d *Document) Heuristic() (*heuristic.Table[string, float64], error) {
	t, err := heuristic.NewTable(d.Estimates)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	return t, nil
}

// FromGraph captures g as a Document without a heuristic section.
// An undirected edge is listed once.
func FromGraph(g *core.Graph[string, float64]) *Document {
	doc := &Document{
		Directed: !g.Undirected(),
		Nodes:    g.Nodes(),
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, Edge{From: e.From, To: e.To, Cost: e.Cost})
	}

	return doc
}

// Encode writes d as YAML to w.
func (d *Document) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("graphio: encode: %w", err)
	}

	return enc.Close()
}

// Encode writes g as a YAML document to w.
func Encode(w io.Writer, g *core.Graph[string, float64]) error {
	return FromGraph(g).Encode(w)
}
