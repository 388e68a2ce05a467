package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Section is an estimating group: a named set of cabinet items priced together.
type Section struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
	Members   []string `json:"members"` // Cabinet IDs in display order
}

// NewSection creates a section holding the given cabinet ids.
func NewSection(name string, members ...string) Section {
	now := time.Now().UTC().Format(time.RFC3339)
	return Section{
		ID:        uuid.New().String()[:8],
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
		Members:   copyMembers(members),
	}
}

// Has reports whether the section contains the cabinet id.
func (s Section) Has(member string) bool {
	return s.indexOf(member) >= 0
}

func (s Section) indexOf(member string) int {
	for i, m := range s.Members {
		if m == member {
			return i
		}
	}
	return -1
}

// SectionStore holds the estimating sections of a job in display order.
type SectionStore struct {
	Sections []Section `json:"sections"`
}

// NewSectionStore creates an empty section store.
func NewSectionStore() SectionStore {
	return SectionStore{
		Sections: []Section{},
	}
}

// Add adds a section to the store.
func (ss *SectionStore) Add(s Section) {
	ss.Sections = append(ss.Sections, s)
}

// Remove removes a section by ID. Returns true if found and removed.
func (ss *SectionStore) Remove(id string) bool {
	for i, s := range ss.Sections {
		if s.ID == id {
			ss.Sections = append(ss.Sections[:i], ss.Sections[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the section with the given ID, or nil.
func (ss *SectionStore) FindByID(id string) *Section {
	for i := range ss.Sections {
		if ss.Sections[i].ID == id {
			return &ss.Sections[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first section with the given name, or nil.
func (ss *SectionStore) FindByName(name string) *Section {
	for i := range ss.Sections {
		if ss.Sections[i].Name == name {
			return &ss.Sections[i]
		}
	}
	return nil
}

// Names returns a list of section names for UI dropdowns.
func (ss *SectionStore) Names() []string {
	names := make([]string, len(ss.Sections))
	for i, s := range ss.Sections {
		names[i] = s.Name
	}
	return names
}

// Ungroup moves one member out of a multi-member section into a new
// single-member section placed directly after the source section.
// The new section is returned.
func (ss *SectionStore) Ungroup(sectionID, member string) (Section, error) {
	idx := -1
	for i := range ss.Sections {
		if ss.Sections[i].ID == sectionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Section{}, fmt.Errorf("section %q not found", sectionID)
	}
	src := &ss.Sections[idx]
	pos := src.indexOf(member)
	if pos < 0 {
		return Section{}, fmt.Errorf("section %q has no member %q", sectionID, member)
	}
	if len(src.Members) < 2 {
		return Section{}, fmt.Errorf("section %q already holds a single member", sectionID)
	}

	src.Members = append(src.Members[:pos:pos], src.Members[pos+1:]...)
	src.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	single := NewSection(fmt.Sprintf("%s (%d)", src.Name, len(ss.Sections)+1), member)

	ss.Sections = append(ss.Sections, Section{})
	copy(ss.Sections[idx+2:], ss.Sections[idx+1:])
	ss.Sections[idx+1] = single
	return single, nil
}

// copyMembers creates a copy of a member slice, never returning nil.
func copyMembers(members []string) []string {
	if members == nil {
		return []string{}
	}
	cp := make([]string, len(members))
	copy(cp, members)
	return cp
}
