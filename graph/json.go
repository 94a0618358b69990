package graph

import (
	"encoding/json"
	"fmt"

	"github.com/dudk/patcher"
)

type (
	persistedObject struct {
		Type string `json:"type"`
		Args string `json:"args"`
		ID   uint   `json:"id"`
	}

	persistedConnection struct {
		From   uint `json:"from"`
		Outlet int  `json:"outlet"`
		To     uint `json:"to"`
		Inlet  int  `json:"inlet"`
	}

	persistedGraph struct {
		Objects     []persistedObject     `json:"objects"`
		Connections []persistedConnection `json:"connections"`
	}
)

// DumpJSON serializes the graph: objects with their type tags, raw
// arguments and ids in creation order, and every connection as an id
// quadruple.
func (g *Graph) DumpJSON() (string, error) {
	doc := persistedGraph{
		Objects:     make([]persistedObject, 0, len(g.order)),
		Connections: make([]persistedConnection, 0, len(g.edges)),
	}
	for _, h := range g.order {
		obj, ok := g.resolve(h)
		if !ok {
			continue
		}
		doc.Objects = append(doc.Objects, persistedObject{
			Type: obj.Type(),
			Args: obj.Args(),
			ID:   obj.ID(),
		})
	}
	for _, e := range g.edges {
		from, ok := g.resolve(e.from)
		if !ok {
			continue
		}
		to, ok := g.resolve(e.to)
		if !ok {
			continue
		}
		doc.Connections = append(doc.Connections, persistedConnection{
			From:   from.ID(),
			Outlet: e.outlet,
			To:     to.ID(),
			Inlet:  e.inlet,
		})
	}
	content, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// ParseJSON clears the graph and reconstructs it from provided
// content. Objects are recreated in document order through the normal
// construct/parse path, so parameter side effects re-run identically
// and list positions are preserved. Returns
// patcher.ErrMalformedGraph and leaves the graph empty if the
// document is structurally invalid, references an unknown type or a
// connection references an id not present in the document.
func (g *Graph) ParseJSON(content string) error {
	g.Clear()
	var doc persistedGraph
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		return fmt.Errorf("%w: %v", patcher.ErrMalformedGraph, err)
	}
	if err := g.load(doc); err != nil {
		g.Clear()
		return err
	}
	return nil
}

func (g *Graph) load(doc persistedGraph) error {
	handles := make(map[uint]Handle, len(doc.Objects))
	var maxID uint
	for _, po := range doc.Objects {
		if po.Type == "" {
			return fmt.Errorf("%w: object without type", patcher.ErrMalformedGraph)
		}
		if _, ok := handles[po.ID]; ok {
			return fmt.Errorf("%w: duplicate object id %d", patcher.ErrMalformedGraph, po.ID)
		}
		h, err := g.CreateObject(po.Type, po.Args)
		if err != nil {
			return fmt.Errorf("%w: object %d: %v", patcher.ErrMalformedGraph, po.ID, err)
		}
		obj, _ := g.resolve(h)
		obj.SetID(po.ID)
		handles[po.ID] = h
		if po.ID > maxID {
			maxID = po.ID
		}
	}
	g.nextID = maxID + 1
	for _, pc := range doc.Connections {
		from, ok := handles[pc.From]
		if !ok {
			return fmt.Errorf("%w: connection from unknown id %d", patcher.ErrMalformedGraph, pc.From)
		}
		to, ok := handles[pc.To]
		if !ok {
			return fmt.Errorf("%w: connection to unknown id %d", patcher.ErrMalformedGraph, pc.To)
		}
		if err := g.Connect(from, pc.Outlet, to, pc.Inlet); err != nil {
			return fmt.Errorf("%w: %v", patcher.ErrMalformedGraph, err)
		}
	}
	return nil
}
