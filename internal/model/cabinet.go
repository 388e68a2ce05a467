package model

import "github.com/google/uuid"

// StandardDepth is the nominal base cabinet depth in inches. End panels
// deeper than this get nosing returns.
const StandardDepth = 24.0

// ItemKind groups catalog item types by how their box materials are taken off.
type ItemKind string

const (
	KindBase           ItemKind = "base"
	KindWall           ItemKind = "wall"
	KindTall           ItemKind = "tall"
	KindCorner45       ItemKind = "corner45"
	KindDoor           ItemKind = "door"
	KindDrawerFront    ItemKind = "drawer_front"
	KindAppliancePanel ItemKind = "appliance_panel"
	KindFaceFrame      ItemKind = "face_frame"
	KindEndPanel       ItemKind = "end_panel"
	KindFiller         ItemKind = "filler"
	KindDrawerBox      ItemKind = "drawer_box"
	KindRollOut        ItemKind = "rollout"
	KindHood           ItemKind = "hood"
)

// HasBox reports whether items of this kind are full carcasses with sides,
// top, bottom and back.
func (k ItemKind) HasBox() bool {
	switch k {
	case KindBase, KindWall, KindTall, KindCorner45:
		return true
	}
	return false
}

// FinishFlags records which exposed surfaces of a cabinet get a finish.
type FinishFlags struct {
	Left     bool `json:"left"`
	Right    bool `json:"right"`
	Top      bool `json:"top"`
	Bottom   bool `json:"bottom"`
	Back     bool `json:"back"`
	Interior bool `json:"interior"` // Shelves and partitions
}

// StyleInfo is a catalog entry describing a cabinet construction style.
type StyleInfo struct {
	ID               int         `json:"id" yaml:"id" toml:"id"`
	Name             string      `json:"name" yaml:"name" toml:"name"`
	Reveals          RootReveals `json:"reveals" yaml:"reveals" toml:"reveals"`
	FaceFrame        bool        `json:"face_frame" yaml:"face_frame" toml:"face_frame"`
	DoublePartitions bool        `json:"double_partitions" yaml:"double_partitions" toml:"double_partitions"`
	BandPartitions   bool        `json:"band_partitions" yaml:"band_partitions" toml:"band_partitions"`
}

// TypeInfo is a catalog entry describing an item type.
type TypeInfo struct {
	ID             int      `json:"id" yaml:"id" toml:"id"`
	Name           string   `json:"name" yaml:"name" toml:"name"`
	Kind           ItemKind `json:"kind" yaml:"kind" toml:"kind"`
	UseRootReveals bool     `json:"use_root_reveals" yaml:"use_root_reveals" toml:"use_root_reveals"`
	DefaultFace    NodeType `json:"default_face" yaml:"default_face" toml:"default_face"`
}

// AccessoryDef is a catalog accessory that may attach to certain leaf types.
type AccessoryDef struct {
	ID        string     `json:"id" yaml:"id" toml:"id"`
	Name      string     `json:"name" yaml:"name" toml:"name"`
	NodeTypes []NodeType `json:"node_types" yaml:"node_types" toml:"node_types"`
	Inset     float64    `json:"inset" yaml:"inset" toml:"inset"` // Total reduction from the leaf size
}

// Allows reports whether the accessory may attach to a leaf of type t.
func (a AccessoryDef) Allows(t NodeType) bool {
	for _, nt := range a.NodeTypes {
		if nt == t {
			return true
		}
	}
	return false
}

// NewAccessory creates an accessory reference for def sized to a w x h leaf.
func NewAccessory(def AccessoryDef, w, h float64) Accessory {
	a := Accessory{
		ID:    uuid.New().String()[:8],
		DefID: def.ID,
		Name:  def.Name,
	}
	a.Resize(def, w, h)
	return a
}

// Resize fits the accessory to a w x h leaf, never going below zero.
func (a *Accessory) Resize(def AccessoryDef, w, h float64) {
	a.Width = Quantize(max(w-def.Inset, 0))
	a.Height = Quantize(max(h-def.Inset, 0))
}

// Cabinet is one estimating item: the outer box size plus its face tree.
type Cabinet struct {
	ID         string      `json:"id"`
	Label      string      `json:"label"`
	Width      float64     `json:"width"`
	Height     float64     `json:"height"`
	Depth      float64     `json:"depth"`
	StyleID    int         `json:"style_id"`
	TypeID     int         `json:"type_id"`
	Finish     FinishFlags `json:"finish"`
	FaceConfig *FaceNode   `json:"face_config,omitempty"`
}

func NewCabinet(label string, w, h, d float64, styleID, typeID int) Cabinet {
	return Cabinet{
		ID:      uuid.New().String()[:8],
		Label:   label,
		Width:   w,
		Height:  h,
		Depth:   d,
		StyleID: styleID,
		TypeID:  typeID,
	}
}
