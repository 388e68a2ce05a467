package model

import "testing"

func TestNewSection(t *testing.T) {
	s := NewSection("Kitchen Base", "c1", "c2")

	if s.Name != "Kitchen Base" {
		t.Errorf("expected name 'Kitchen Base', got %q", s.Name)
	}
	if s.ID == "" {
		t.Error("expected non-empty ID")
	}
	if s.CreatedAt == "" {
		t.Error("expected non-empty CreatedAt")
	}
	if len(s.Members) != 2 {
		t.Errorf("expected 2 members, got %d", len(s.Members))
	}
}

func TestNewSection_NoMembers(t *testing.T) {
	s := NewSection("Empty")
	if s.Members == nil {
		t.Error("Members should not be nil (should be empty slice)")
	}
}

func TestSectionStore_AddRemoveFind(t *testing.T) {
	store := NewSectionStore()

	s1 := NewSection("S1", "a")
	s2 := NewSection("S2", "b")
	store.Add(s1)
	store.Add(s2)

	if len(store.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(store.Sections))
	}

	found := store.FindByID(s1.ID)
	if found == nil {
		t.Fatal("FindByID returned nil for existing section")
	}
	if found.Name != "S1" {
		t.Errorf("expected 'S1', got %q", found.Name)
	}

	if store.FindByName("S2") == nil {
		t.Fatal("FindByName returned nil for existing section")
	}

	if len(store.Names()) != 2 {
		t.Errorf("expected 2 names, got %d", len(store.Names()))
	}

	if !store.Remove(s1.ID) {
		t.Error("Remove should return true for existing section")
	}
	if store.Remove("nonexistent") {
		t.Error("Remove should return false for non-existent ID")
	}
}

func TestSectionStore_Ungroup(t *testing.T) {
	store := NewSectionStore()
	base := NewSection("Base", "c1", "c2", "c3")
	tall := NewSection("Tall", "c9")
	store.Add(base)
	store.Add(tall)

	single, err := store.Ungroup(base.ID, "c2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(store.Sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(store.Sections))
	}
	if store.Sections[1].ID != single.ID {
		t.Error("new section should be placed right after its source")
	}
	if store.Sections[2].Name != "Tall" {
		t.Errorf("expected Tall to move down, got %q", store.Sections[2].Name)
	}
	if len(single.Members) != 1 || single.Members[0] != "c2" {
		t.Errorf("expected single member c2, got %v", single.Members)
	}
	src := store.FindByID(base.ID)
	if src.Has("c2") {
		t.Error("source section should no longer contain c2")
	}
	if len(src.Members) != 2 || src.Members[0] != "c1" || src.Members[1] != "c3" {
		t.Errorf("unexpected remaining members %v", src.Members)
	}
}

func TestSectionStore_UngroupRejects(t *testing.T) {
	store := NewSectionStore()
	solo := NewSection("Solo", "c1")
	store.Add(solo)

	if _, err := store.Ungroup(solo.ID, "c1"); err == nil {
		t.Error("expected error when ungrouping a single-member section")
	}
	if _, err := store.Ungroup(solo.ID, "missing"); err == nil {
		t.Error("expected error for unknown member")
	}
	if _, err := store.Ungroup("nope", "c1"); err == nil {
		t.Error("expected error for unknown section")
	}
	if len(store.Sections) != 1 {
		t.Errorf("store should be unchanged, got %d sections", len(store.Sections))
	}
}
