// Package catalog provides the style, item type and accessory lookups that
// the face engine consults: default reveal sets per style, whether an item
// type uses outer reveals, and which accessories may attach to a leaf.
package catalog

import (
	"fmt"
	"strings"

	"github.com/piwi3910/CabFace/internal/model"
)

// Catalog is the set of styles, item types and accessories known to the shop.
type Catalog struct {
	Styles      []model.StyleInfo    `json:"styles" yaml:"styles" toml:"styles"`
	Types       []model.TypeInfo     `json:"types" yaml:"types" toml:"types"`
	Accessories []model.AccessoryDef `json:"accessories" yaml:"accessories" toml:"accessories"`
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{
		Styles: []model.StyleInfo{
			{ID: 1, Name: "Face Frame Overlay", FaceFrame: true,
				Reveals: model.RootReveals{Top: 1.5, Bottom: 1.5, Left: 1.75, Right: 1.75, Reveal: 1.5}},
			{ID: 2, Name: "Face Frame Inset", FaceFrame: true,
				Reveals: model.RootReveals{Top: 2, Bottom: 2, Left: 2, Right: 2, Reveal: 1.5}},
			{ID: 13, Name: "Frameless", BandPartitions: true,
				Reveals: model.RootReveals{Reveal: 0.125}},
			{ID: 14, Name: "Frameless Double Partition", BandPartitions: true, DoublePartitions: true,
				Reveals: model.RootReveals{Reveal: 0.125}},
		},
		Types: []model.TypeInfo{
			{ID: 1, Name: "Base", Kind: model.KindBase, UseRootReveals: true, DefaultFace: model.NodeDoor},
			{ID: 2, Name: "Wall", Kind: model.KindWall, UseRootReveals: true, DefaultFace: model.NodeDoor},
			{ID: 3, Name: "Tall", Kind: model.KindTall, UseRootReveals: true, DefaultFace: model.NodeDoor},
			{ID: 4, Name: "Drawer Base", Kind: model.KindBase, UseRootReveals: true, DefaultFace: model.NodeDrawerFront},
			{ID: 5, Name: "Corner 45 Wall", Kind: model.KindCorner45, UseRootReveals: true, DefaultFace: model.NodeDoor},
			{ID: 6, Name: "Door", Kind: model.KindDoor, DefaultFace: model.NodeDoor},
			{ID: 7, Name: "Drawer Front", Kind: model.KindDrawerFront, DefaultFace: model.NodeDrawerFront},
			{ID: 8, Name: "Appliance Panel", Kind: model.KindAppliancePanel, DefaultFace: model.NodePanel},
			{ID: 9, Name: "Face Frame", Kind: model.KindFaceFrame, UseRootReveals: true, DefaultFace: model.NodeOpen},
			{ID: 10, Name: "End Panel", Kind: model.KindEndPanel, DefaultFace: model.NodePanel},
			{ID: 11, Name: "Filler", Kind: model.KindFiller, DefaultFace: model.NodePanel},
			{ID: 12, Name: "Drawer Box", Kind: model.KindDrawerBox, DefaultFace: model.NodeDrawerBox},
			{ID: 13, Name: "Roll Out", Kind: model.KindRollOut, DefaultFace: model.NodeOpen},
			{ID: 14, Name: "Hood", Kind: model.KindHood, DefaultFace: model.NodePanel},
		},
		Accessories: []model.AccessoryDef{
			{ID: "wire-basket", Name: "Wire Basket", Inset: 1.5,
				NodeTypes: []model.NodeType{model.NodeOpen, model.NodeDoor}},
			{ID: "trash-pullout", Name: "Trash Pullout", Inset: 2,
				NodeTypes: []model.NodeType{model.NodeDoor}},
			{ID: "cutlery-insert", Name: "Cutlery Insert", Inset: 1,
				NodeTypes: []model.NodeType{model.NodeDrawerFront, model.NodeDrawerBox}},
			{ID: "lazy-susan", Name: "Lazy Susan", Inset: 2,
				NodeTypes: []model.NodeType{model.NodeDoor, model.NodePairDoor}},
			{ID: "tray-divider", Name: "Tray Divider", Inset: 0.5,
				NodeTypes: []model.NodeType{model.NodeDoor, model.NodePairDoor, model.NodeOpen}},
		},
	}
}

// Style returns the style with the given id.
func (c *Catalog) Style(id int) (model.StyleInfo, bool) {
	for _, s := range c.Styles {
		if s.ID == id {
			return s, true
		}
	}
	return model.StyleInfo{}, false
}

// ItemType returns the item type with the given id.
func (c *Catalog) ItemType(id int) (model.TypeInfo, bool) {
	for _, t := range c.Types {
		if t.ID == id {
			return t, true
		}
	}
	return model.TypeInfo{}, false
}

// StyleByName returns the style whose name matches, ignoring case.
func (c *Catalog) StyleByName(name string) (model.StyleInfo, bool) {
	for _, s := range c.Styles {
		if strings.EqualFold(s.Name, strings.TrimSpace(name)) {
			return s, true
		}
	}
	return model.StyleInfo{}, false
}

// ItemTypeByName returns the item type whose name matches, ignoring case.
func (c *Catalog) ItemTypeByName(name string) (model.TypeInfo, bool) {
	for _, t := range c.Types {
		if strings.EqualFold(t.Name, strings.TrimSpace(name)) {
			return t, true
		}
	}
	return model.TypeInfo{}, false
}

// Reveals returns the default reveal set for a style and item type. Item
// types that do not use outer reveals get zero outer offsets but keep the
// style's internal divider width. Unknown styles yield all zeros.
func (c *Catalog) Reveals(styleID, typeID int) model.RootReveals {
	s, ok := c.Style(styleID)
	if !ok {
		return model.RootReveals{}
	}
	r := s.Reveals
	if t, ok := c.ItemType(typeID); ok && !t.UseRootReveals {
		r = model.RootReveals{Reveal: r.Reveal}
	}
	return r
}

// AccessoriesFor returns the accessory definitions that may attach to a leaf of type t.
func (c *Catalog) AccessoriesFor(t model.NodeType) []model.AccessoryDef {
	var defs []model.AccessoryDef
	for _, a := range c.Accessories {
		if a.Allows(t) {
			defs = append(defs, a)
		}
	}
	return defs
}

// Accessory returns the accessory definition with the given id.
func (c *Catalog) Accessory(id string) (model.AccessoryDef, bool) {
	for _, a := range c.Accessories {
		if a.ID == id {
			return a, true
		}
	}
	return model.AccessoryDef{}, false
}

// Validate checks ids are unique and every entry is usable.
func (c *Catalog) Validate() error {
	styleIDs := make(map[int]bool)
	for _, s := range c.Styles {
		if styleIDs[s.ID] {
			return fmt.Errorf("duplicate style id %d", s.ID)
		}
		styleIDs[s.ID] = true
		r := s.Reveals
		if r.Top < 0 || r.Bottom < 0 || r.Left < 0 || r.Right < 0 || r.Reveal < 0 {
			return fmt.Errorf("style %d (%s) has a negative reveal", s.ID, s.Name)
		}
	}

	typeIDs := make(map[int]bool)
	for _, t := range c.Types {
		if typeIDs[t.ID] {
			return fmt.Errorf("duplicate type id %d", t.ID)
		}
		typeIDs[t.ID] = true
		if !validKind(t.Kind) {
			return fmt.Errorf("type %d (%s) has unknown kind %q", t.ID, t.Name, t.Kind)
		}
		if !t.DefaultFace.IsFace() {
			return fmt.Errorf("type %d (%s) default face %q is not a face type", t.ID, t.Name, t.DefaultFace)
		}
	}

	accIDs := make(map[string]bool)
	for _, a := range c.Accessories {
		if a.ID == "" {
			return fmt.Errorf("accessory %q has no id", a.Name)
		}
		if accIDs[a.ID] {
			return fmt.Errorf("duplicate accessory id %q", a.ID)
		}
		accIDs[a.ID] = true
		for _, nt := range a.NodeTypes {
			if !nt.IsFace() {
				return fmt.Errorf("accessory %q lists non-face type %q", a.ID, nt)
			}
		}
	}
	return nil
}

func validKind(k model.ItemKind) bool {
	switch k {
	case model.KindBase, model.KindWall, model.KindTall, model.KindCorner45,
		model.KindDoor, model.KindDrawerFront, model.KindAppliancePanel,
		model.KindFaceFrame, model.KindEndPanel, model.KindFiller,
		model.KindDrawerBox, model.KindRollOut, model.KindHood:
		return true
	}
	return false
}
