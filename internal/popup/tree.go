package popup

import (
	"sync"

	"github.com/floatkit/floatnav/internal/logging/events"
	"github.com/floatkit/floatnav/internal/nav"
)

// Node ties a popup identifier to its container handle and parent popup.
type Node struct {
	ID        string
	ParentID  string
	Container nav.Container
}

// Tree is the parent/child popup registry. Navigation engines only read
// from it; registration is owned by whoever opens and closes popups.
type Tree struct {
	mu    sync.RWMutex
	nodes map[string]*Node
}

// NewTree returns an empty registry.
func NewTree() *Tree {
	return &Tree{nodes: make(map[string]*Node)}
}

// Register adds or replaces the node for id.
func (t *Tree) Register(id, parentID string, c nav.Container) {
	t.mu.Lock()
	t.nodes[id] = &Node{ID: id, ParentID: parentID, Container: c}
	t.mu.Unlock()
	events.Popup.Opened(id, parentID)
}

// Unregister removes the node for id.
func (t *Tree) Unregister(id string) {
	t.mu.Lock()
	delete(t.nodes, id)
	t.mu.Unlock()
	events.Popup.Closed(id)
}

// Container implements nav.TreeLookup.
func (t *Tree) Container(id string) (nav.Container, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	node, ok := t.nodes[id]
	if !ok || node.Container == nil {
		return nil, false
	}
	return node.Container, true
}

// Parent returns the parent identifier registered for id.
func (t *Tree) Parent(id string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	node, ok := t.nodes[id]
	if !ok {
		return "", false
	}
	return node.ParentID, node.ParentID != ""
}

// Children returns the identifiers registered with id as their parent.
func (t *Tree) Children(id string) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var out []string
	for _, node := range t.nodes {
		if node.ParentID == id {
			out = append(out, node.ID)
		}
	}
	return out
}
