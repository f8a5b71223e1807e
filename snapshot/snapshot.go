// Package snapshot persists a coloured alignment graph as MessagePack.
//
// The document lists node bases in ID order and edges sorted by (From, To),
// so identical graphs always encode to identical bytes.
package snapshot

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/colourpoa/colour"
	"github.com/katalvlaran/colourpoa/core"
	"github.com/katalvlaran/colourpoa/dfs"
)

// Version is the current document schema; bump it when Document changes.
const Version uint16 = 1

var (
	// ErrVersion indicates a document written with another schema version.
	ErrVersion = errors.New("snapshot: unsupported version")

	// ErrCorrupt indicates a document whose edges do not form a valid DAG.
	ErrCorrupt = errors.New("snapshot: corrupt graph")
)

// Edge is one stored edge; Weight encodes as {"c1": .., "c2": ..}.
type Edge struct {
	From   int              `msgpack:"from"`
	To     int              `msgpack:"to"`
	Weight colour.ScorePair `msgpack:"weight"`
}

// Document is the encoded form of a graph.
type Document struct {
	Version uint16 `msgpack:"version"`
	Nodes   []byte `msgpack:"nodes"`
	Edges   []Edge `msgpack:"edges"`
}

// FromGraph captures g.
func FromGraph(g *core.Graph[colour.ScorePair]) Document {
	nodes := g.Nodes()
	doc := Document{
		Version: Version,
		Nodes:   make([]byte, len(nodes)),
		Edges:   make([]Edge, 0, g.EdgeCount()),
	}
	for _, n := range nodes {
		doc.Nodes[n.ID] = n.Base
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, Edge{From: e.From, To: e.To, Weight: e.Weight})
	}

	return doc
}

// Graph rebuilds the graph described by d.
// Returns ErrVersion for a foreign schema and ErrCorrupt for dangling,
// duplicate or cyclic edges.
func (d Document) Graph() (*core.Graph[colour.ScorePair], error) {
	if d.Version != Version {
		return nil, fmt.Errorf("%w: %d (want %d)", ErrVersion, d.Version, Version)
	}
	g := core.NewGraph[colour.ScorePair](core.WithNodeCapacity(len(d.Nodes)))
	for _, b := range d.Nodes {
		g.AddNode(b)
	}
	for _, e := range d.Edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("%w: edge %d→%d: %w", ErrCorrupt, e.From, e.To, err)
		}
	}
	if _, err := dfs.TopologicalSort(g); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	return g, nil
}

// Save encodes g to w.
func Save(w io.Writer, g *core.Graph[colour.ScorePair]) error {
	doc := FromGraph(g)

	return msgpack.NewEncoder(w).Encode(&doc)
}

// Load decodes a graph from r.
func Load(r io.Reader) (*core.Graph[colour.ScorePair], error) {
	var doc Document
	if err := msgpack.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("snapshot: decode: %w", err)
	}

	return doc.Graph()
}

// Digest returns the SHA-256 of g's encoded form.
func Digest(g *core.Graph[colour.ScorePair]) ([sha256.Size]byte, error) {
	h := sha256.New()
	if err := Save(h, g); err != nil {
		return [sha256.Size]byte{}, err
	}
	var sum [sha256.Size]byte
	copy(sum[:], h.Sum(nil))

	return sum, nil
}

// SaveFile writes g to path through a temporary file and an atomic rename.
func SaveFile(path string, g *core.Graph[colour.ScorePair]) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), ".snapshot-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	if err = Save(f, g); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}

	return os.Rename(f.Name(), path)
}

// LoadFile reads a graph from path.
func LoadFile(path string) (*core.Graph[colour.ScorePair], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f)
}
