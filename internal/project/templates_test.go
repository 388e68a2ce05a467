package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/CabFace/internal/model"
)

func testTemplate(name string) model.FaceTemplate {
	cab := model.NewCabinet("B36", 36, 30, 24, 13, 1)
	cab.FaceConfig = &model.FaceNode{ID: model.RootID, Type: model.NodeDoor, Width: 36, Height: 30}
	return model.NewFaceTemplate(name, "single door", cab)
}

func TestSaveAndLoadTemplates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.json")

	store := model.NewTemplateStore()
	store.Add(testTemplate("Door"))

	if err := SaveTemplates(path, store); err != nil {
		t.Fatalf("SaveTemplates error: %v", err)
	}

	loaded, err := LoadTemplates(path)
	if err != nil {
		t.Fatalf("LoadTemplates error: %v", err)
	}
	if len(loaded.Templates) != 1 {
		t.Fatalf("expected 1 template, got %d", len(loaded.Templates))
	}
	got := loaded.Templates[0]
	if got.Name != "Door" || got.Face == nil || got.Face.Type != model.NodeDoor {
		t.Errorf("unexpected template %+v", got)
	}
}

func TestLoadTemplatesMissingFile(t *testing.T) {
	store, err := LoadTemplates(filepath.Join(t.TempDir(), "none.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.Templates == nil || len(store.Templates) != 0 {
		t.Errorf("expected empty non-nil store, got %+v", store)
	}
}

func TestLoadTemplatesNullList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.json")
	if err := os.WriteFile(path, []byte(`{"templates": null}`), 0644); err != nil {
		t.Fatal(err)
	}
	store, err := LoadTemplates(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.Templates == nil {
		t.Error("expected templates to be normalized to an empty slice")
	}
}
