package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"quizhub/models"
)

func TestFileStoreMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "db.json"))

	doc, err := store.Read(context.Background())
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(doc.Users) != 0 || len(doc.Tasks) != 0 || len(doc.Answers) != 0 {
		t.Error("Expected empty default document for missing file")
	}
}

func TestFileStoreCorruptFileFailsOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	store := NewFileStore(path)

	doc, err := store.Read(context.Background())
	if err != nil {
		t.Fatalf("Expected fail-open read, got error: %v", err)
	}
	if doc.Users == nil || doc.Tasks == nil {
		t.Error("Expected initialized empty document for corrupt file")
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	store := NewFileStore(path)
	ctx := context.Background()

	doc := models.NewStoreDocument()
	doc.Tasks["t1"] = models.Task{Answer: "снег", Points: 2}
	doc.Users["tg_1"] = &models.User{ID: "tg_1", Name: "Мария", Score: 2, ShowInRating: true}
	doc.Answers = append(doc.Answers, models.Attempt{UserID: "tg_1", Task: "t1", Answer: "Снег!", Correct: true})
	doc.Banned = []string{"злодей"}

	if err := store.Write(ctx, doc); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	loaded, err := store.Read(ctx)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if loaded.Tasks["t1"].Answer != "снег" || loaded.Tasks["t1"].Points != 2 {
		t.Errorf("Task did not round-trip: %+v", loaded.Tasks["t1"])
	}
	user := loaded.Users["tg_1"]
	if user == nil || user.Name != "Мария" || user.Score != 2 || !user.ShowInRating {
		t.Errorf("User did not round-trip: %+v", user)
	}
	if len(loaded.Answers) != 1 || !loaded.Answers[0].Correct {
		t.Errorf("Answers did not round-trip: %+v", loaded.Answers)
	}
	if len(loaded.Banned) != 1 || loaded.Banned[0] != "злодей" {
		t.Errorf("Banned terms did not round-trip: %+v", loaded.Banned)
	}
}

func TestFileStorePartialDocumentGetsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	if err := os.WriteFile(path, []byte(`{"tasks":{"t1":{"answer":"снег"}}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	store := NewFileStore(path)

	doc, err := store.Read(context.Background())
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if doc.Users == nil || doc.Answers == nil || doc.Banned == nil {
		t.Error("Expected nil maps and slices to be initialized")
	}
	if doc.Tasks["t1"].Answer != "снег" {
		t.Errorf("Expected task to survive partial decode, got %+v", doc.Tasks["t1"])
	}
}
