package engine

import "github.com/piwi3910/CabFace/internal/model"

// Snapshot is a caller-held copy of a face tree, taken once when a cabinet
// is loaded so the user can revert to it. There is no undo stack.
type Snapshot struct {
	Root  *model.FaceNode
	Label string // Human-readable description (e.g. "original")
}

// MakeSnapshot captures a deep copy of root.
func MakeSnapshot(root *model.FaceNode, label string) Snapshot {
	return Snapshot{Root: root.Clone(), Label: label}
}

// IsZero reports whether the snapshot holds no tree.
func (s Snapshot) IsZero() bool {
	return s.Root == nil
}

// Restore returns a fresh copy of the captured tree, so the snapshot can be
// restored more than once.
func (s Snapshot) Restore() *model.FaceNode {
	return s.Root.Clone()
}
