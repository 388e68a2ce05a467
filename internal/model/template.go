package model

import (
	"time"

	"github.com/google/uuid"
)

// FaceTemplate is a named face layout saved for reuse on other cabinets. It
// keeps the size it was drawn at; applying it to a cabinet of another size
// scales every face proportionally.
type FaceTemplate struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
	TypeID      int       `json:"type_id"`
	Width       float64   `json:"width"`
	Height      float64   `json:"height"`
	Face        *FaceNode `json:"face"`
}

// NewFaceTemplate captures the face of cab. Derived caches, attached
// accessories and the outer reveals are dropped; the cabinet the template is
// applied to supplies its own.
func NewFaceTemplate(name, description string, cab Cabinet) FaceTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	face := cab.FaceConfig.Clone()
	if face != nil {
		face.RootReveals = nil
	}
	face.Walk(func(n, _ *FaceNode) bool {
		n.Accessories = nil
		n.RollOutDimensions = nil
		n.DrawerBoxDimensions = nil
		n.ShelfDimensions = nil
		return true
	})
	return FaceTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		TypeID:      cab.TypeID,
		Width:       cab.Width,
		Height:      cab.Height,
		Face:        face,
	}
}

// ToCabinet creates a new cabinet carrying a copy of the template face. The
// face still has the template's size until the editor loads the cabinet.
func (t FaceTemplate) ToCabinet(label string, w, h, d float64, styleID int) Cabinet {
	cab := NewCabinet(label, w, h, d, styleID, t.TypeID)
	cab.FaceConfig = t.Face.Clone()
	return cab
}

// TemplateStore holds a collection of face templates.
type TemplateStore struct {
	Templates []FaceTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{
		Templates: []FaceTemplate{},
	}
}

// Add adds a template, replacing any existing template with the same name.
func (ts *TemplateStore) Add(t FaceTemplate) {
	if old := ts.FindByName(t.Name); old != nil {
		t.ID = old.ID
		t.CreatedAt = old.CreatedAt
		*old = t
		return
	}
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by name. Returns true if found and removed.
func (ts *TemplateStore) Remove(name string) bool {
	for i, t := range ts.Templates {
		if t.Name == name {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// Names returns the template names in store order.
func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}

// FindByName returns a pointer to the template with the given name, or nil.
func (ts *TemplateStore) FindByName(name string) *FaceTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}
