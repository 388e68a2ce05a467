package engine

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/piwi3910/CabFace/internal/model"
)

// DefaultDisplayScale is the pixels-per-inch used to turn pointer movement
// into model units when none is configured.
const DefaultDisplayScale = 8.0

// Catalog resolves the style and item-type ids stored on a cabinet.
type Catalog interface {
	Style(id int) (model.StyleInfo, bool)
	ItemType(id int) (model.TypeInfo, bool)
	// Reveals returns the root reveals for a style and item type. Item types
	// without root reveals get zero outer offsets.
	Reveals(styleID, typeID int) model.RootReveals
}

// Editor owns the face tree of one cabinet and applies edits to it in
// place. Every edit either fully succeeds or leaves the tree unchanged;
// rejected edits are logged as warnings and returned as errors. An Editor is
// not safe for concurrent use.
type Editor struct {
	cabinet      model.Cabinet
	root         *model.FaceNode
	original     Snapshot
	catalog      Catalog
	accessories  AccessoryLookup
	logger       *log.Logger
	displayScale float64
}

// EditorOption configures an Editor.
type EditorOption func(*Editor)

// WithLogger sets the logger for edit warnings. Nil means log.Default().
func WithLogger(l *log.Logger) EditorOption {
	return func(e *Editor) { e.logger = l }
}

// WithAccessories sets the accessory catalog used to filter and size accessories.
func WithAccessories(a AccessoryLookup) EditorOption {
	return func(e *Editor) { e.accessories = a }
}

// WithDisplayScale sets the pixels-per-inch used by Drag.
func WithDisplayScale(s float64) EditorOption {
	return func(e *Editor) {
		if s > 0 {
			e.displayScale = s
		}
	}
}

// NewEditor loads a cabinet, normalizing any stored face config, and keeps
// a snapshot of the result for Revert.
func NewEditor(cab model.Cabinet, cat Catalog, opts ...EditorOption) (*Editor, error) {
	if cat == nil {
		return nil, errors.New("editor needs a catalog")
	}
	if !finite(cab.Width, cab.Height, cab.Depth) || cab.Width <= 0 || cab.Height <= 0 || cab.Depth <= 0 {
		return nil, fmt.Errorf("invalid cabinet size %.4f x %.4f x %.4f", cab.Width, cab.Height, cab.Depth)
	}
	typ, ok := cat.ItemType(cab.TypeID)
	if !ok {
		return nil, fmt.Errorf("unknown item type %d", cab.TypeID)
	}
	if _, ok := cat.Style(cab.StyleID); !ok {
		return nil, fmt.Errorf("unknown style %d", cab.StyleID)
	}

	e := &Editor{
		cabinet:      cab,
		catalog:      cat,
		displayScale: DefaultDisplayScale,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = log.Default()
	}

	root, reset := normalize(cab.FaceConfig, cab, cat.Reveals(cab.StyleID, cab.TypeID), typ.DefaultFace)
	if reset {
		e.logger.Warn("stored face does not fit the cabinet, reset to a single face",
			"cabinet", cab.ID, "width", cab.Width, "height", cab.Height)
	}
	e.root = root
	e.cabinet.FaceConfig = nil
	RefreshDerived(e.root, cab.Depth, e.accessories)
	e.original = MakeSnapshot(e.root, "original")
	e.logger.Debug("cabinet loaded", "cabinet", cab.ID, "type", typ.Name, "nodes", CountNodes(e.root))
	return e, nil
}

// Root returns the live tree. Callers must not modify it.
func (e *Editor) Root() *model.FaceNode { return e.root }

// Layout returns the laid-out copy of the current tree.
func (e *Editor) Layout() *model.FaceNode { return Layout(e.root) }

// Cabinet returns the cabinet with a copy of the current face config.
func (e *Editor) Cabinet() model.Cabinet {
	cab := e.cabinet
	cab.FaceConfig = e.root.Clone()
	return cab
}

// Original returns the snapshot taken when the cabinet was loaded.
func (e *Editor) Original() Snapshot { return e.original }

// Validate checks the current tree.
func (e *Editor) Validate() []Violation { return Validate(e.root) }

func (e *Editor) defaultFace() model.NodeType {
	if typ, ok := e.catalog.ItemType(e.cabinet.TypeID); ok && typ.DefaultFace.IsFace() {
		return typ.DefaultFace
	}
	return model.NodeDoor
}

func (e *Editor) reveals() model.RootReveals {
	return e.catalog.Reveals(e.cabinet.StyleID, e.cabinet.TypeID)
}

// apply runs one edit, logs the outcome and refreshes derived caches.
func (e *Editor) apply(op, nodeID string, fn func() error) error {
	if err := fn(); err != nil {
		e.logger.Warn("edit rejected", "op", op, "node", nodeID, "err", err)
		return err
	}
	RefreshDerived(e.root, e.cabinet.Depth, e.accessories)
	e.logger.Debug("edit applied", "op", op, "node", nodeID)
	return nil
}

// Split splits a face leaf in the given direction.
func (e *Editor) Split(nodeID string, dir model.Direction) error {
	return e.apply("split", nodeID, func() error {
		return Split(e.root, nodeID, dir, e.defaultFace())
	})
}

// Delete removes a face and its adjacent reveal.
func (e *Editor) Delete(nodeID string) error {
	return e.apply("delete", nodeID, func() error {
		return Delete(e.root, nodeID)
	})
}

// SetLeafType changes the type of a face leaf.
func (e *Editor) SetLeafType(nodeID string, t model.NodeType) error {
	return e.apply("set_type", nodeID, func() error {
		return SetLeafType(e.root, nodeID, t, e.accessories)
	})
}

// SetDimension applies a typed extent to a face or reveal.
func (e *Editor) SetDimension(nodeID string, value float64) error {
	return e.apply("set_dimension", nodeID, func() error {
		return SetSiblingDimension(e.root, nodeID, value)
	})
}

// Equalize evens out the faces of a container.
func (e *Editor) Equalize(containerID string) error {
	return e.apply("equalize", containerID, func() error {
		return EqualizeSiblings(e.root, containerID)
	})
}

// Drag applies one pointer-move step, in pixels, to the divider between
// nodeID and siblingID.
func (e *Editor) Drag(nodeID, siblingID string, pixels float64) error {
	return e.apply("drag", nodeID, func() error {
		return Drag(e.root, nodeID, siblingID, pixels, e.displayScale)
	})
}

// Resize changes the outer cabinet size and rescales the face to fit.
func (e *Editor) Resize(width, height, depth float64) error {
	return e.apply("resize", model.RootID, func() error {
		if !finite(depth) || depth <= 0 {
			return fmt.Errorf("%w: depth %.4f", ErrInvalidTarget, depth)
		}
		if err := ApplyCabinetSize(e.root, width, height, e.reveals()); err != nil {
			return err
		}
		e.cabinet.Width, e.cabinet.Height, e.cabinet.Depth = width, height, depth
		return nil
	})
}

// SetStyle switches the cabinet style, applying the style's reveals.
func (e *Editor) SetStyle(styleID int) error {
	return e.apply("set_style", model.RootID, func() error {
		if _, ok := e.catalog.Style(styleID); !ok {
			return fmt.Errorf("%w: unknown style %d", ErrInvalidTarget, styleID)
		}
		reveals := e.catalog.Reveals(styleID, e.cabinet.TypeID)
		if err := ApplyCabinetSize(e.root, e.cabinet.Width, e.cabinet.Height, reveals); err != nil {
			return err
		}
		e.cabinet.StyleID = styleID
		return nil
	})
}

// ChangeItemType switches the cabinet's item type. The face structure is
// discarded and replaced by a single leaf of the new type's default face.
func (e *Editor) ChangeItemType(typeID int) error {
	return e.apply("change_type", model.RootID, func() error {
		if _, ok := e.catalog.ItemType(typeID); !ok {
			return fmt.Errorf("%w: unknown item type %d", ErrInvalidTarget, typeID)
		}
		e.cabinet.TypeID = typeID
		e.root = NewRoot(e.cabinet.Width, e.cabinet.Height, e.reveals(), e.defaultFace())
		return nil
	})
}

// Reset replaces the tree with the default single leaf.
func (e *Editor) Reset() {
	e.root = NewRoot(e.cabinet.Width, e.cabinet.Height, e.reveals(), e.defaultFace())
	RefreshDerived(e.root, e.cabinet.Depth, e.accessories)
	e.logger.Debug("face reset", "cabinet", e.cabinet.ID)
}

// Revert restores the tree captured in s, normally Original().
func (e *Editor) Revert(s Snapshot) error {
	if s.IsZero() {
		return errors.New("empty snapshot")
	}
	root, reset := normalize(s.Restore(), e.cabinet, e.reveals(), e.defaultFace())
	if reset {
		e.logger.Warn("snapshot does not fit the cabinet, reset to a single face", "snapshot", s.Label)
	}
	e.root = root
	RefreshDerived(e.root, e.cabinet.Depth, e.accessories)
	e.logger.Debug("face reverted", "snapshot", s.Label)
	return nil
}

// SetShelfQty sets the shelf count on a shelf-capable leaf.
func (e *Editor) SetShelfQty(nodeID string, qty int) error {
	return e.apply("set_shelves", nodeID, func() error {
		n, err := e.leaf(nodeID)
		if err != nil {
			return err
		}
		if !n.Type.SupportsShelves() || qty < 0 {
			return fmt.Errorf("%w: %d shelves on %s", ErrInvalidTarget, qty, n.Type)
		}
		n.ShelfQty = qty
		return nil
	})
}

// SetRollOutQty sets the roll-out count on a roll-out-capable leaf.
func (e *Editor) SetRollOutQty(nodeID string, qty int) error {
	return e.apply("set_rollouts", nodeID, func() error {
		n, err := e.leaf(nodeID)
		if err != nil {
			return err
		}
		if !n.Type.SupportsRollOuts() || qty < 0 {
			return fmt.Errorf("%w: %d roll-outs on %s", ErrInvalidTarget, qty, n.Type)
		}
		n.RollOutQty = qty
		return nil
	})
}

// SetGlass sets the glass panel and glass shelves references of a leaf.
// Empty ids clear them.
func (e *Editor) SetGlass(nodeID, panelID, shelvesID string) error {
	return e.apply("set_glass", nodeID, func() error {
		n, err := e.leaf(nodeID)
		if err != nil {
			return err
		}
		if !n.Type.SupportsGlass() && (panelID != "" || shelvesID != "") {
			return fmt.Errorf("%w: %s cannot hold glass", ErrInvalidTarget, n.Type)
		}
		n.GlassPanelID, n.GlassShelvesID = panelID, shelvesID
		return nil
	})
}

// AttachAccessory attaches the accessory definition defID to a leaf and
// returns the new reference.
func (e *Editor) AttachAccessory(nodeID, defID string) (model.Accessory, error) {
	var added model.Accessory
	err := e.apply("attach_accessory", nodeID, func() error {
		n, err := e.leaf(nodeID)
		if err != nil {
			return err
		}
		if e.accessories == nil {
			return fmt.Errorf("%w: no accessory catalog", ErrInvalidTarget)
		}
		for _, def := range e.accessories.AccessoriesFor(n.Type) {
			if def.ID == defID {
				added = model.NewAccessory(def, n.Width, n.Height)
				n.Accessories = append(n.Accessories, added)
				return nil
			}
		}
		return fmt.Errorf("%w: accessory %q not allowed on %s", ErrInvalidTarget, defID, n.Type)
	})
	return added, err
}

// DetachAccessory removes the accessory reference accessoryID from a leaf.
func (e *Editor) DetachAccessory(nodeID, accessoryID string) error {
	return e.apply("detach_accessory", nodeID, func() error {
		n, err := e.leaf(nodeID)
		if err != nil {
			return err
		}
		for i, a := range n.Accessories {
			if a.ID == accessoryID {
				n.Accessories = append(n.Accessories[:i], n.Accessories[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: accessory %s", ErrNotFound, accessoryID)
	})
}

func (e *Editor) leaf(nodeID string) (*model.FaceNode, error) {
	n := Find(e.root, nodeID)
	if n == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, nodeID)
	}
	if !n.IsLeaf() || n.IsReveal() {
		return nil, fmt.Errorf("%w: %s is not a face leaf", ErrInvalidTarget, nodeID)
	}
	return n, nil
}
