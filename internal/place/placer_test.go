package place_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"downsort/internal/place"
	"downsort/internal/services"
	"downsort/internal/testsupport"
)

func TestPlaceCreatesFolderAndMoves(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "x.png")
	testsupport.WriteFile(t, src, 4)

	placer := place.New(root)
	final, err := placer.Place(src, "Images", "x.png")
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if final != filepath.Join(root, "Images", "x.png") {
		t.Fatalf("final path %q", final)
	}
	if _, err := os.Stat(final); err != nil {
		t.Fatalf("moved file missing: %v", err)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Fatalf("source still present: %v", err)
	}
}

func TestPlaceResolvesCollision(t *testing.T) {
	root := t.TempDir()
	existing := filepath.Join(root, "Images", "x.png")
	testsupport.WriteFile(t, existing, 10)
	original, err := os.ReadFile(existing)
	if err != nil {
		t.Fatalf("read existing: %v", err)
	}

	src := filepath.Join(root, "x.png")
	testsupport.WriteFile(t, src, 20)

	placer := place.New(root)
	final, err := placer.Place(src, "Images", "x.png")
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if final != filepath.Join(root, "Images", "x (1).png") {
		t.Fatalf("collision path %q", final)
	}

	// The original occupant is untouched.
	after, err := os.ReadFile(existing)
	if err != nil {
		t.Fatalf("read existing after move: %v", err)
	}
	if string(after) != string(original) {
		t.Fatal("existing file was modified")
	}
}

func TestPlaceIncrementsUntilFree(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(root, "Documents", "report.pdf"), 1)
	testsupport.WriteFile(t, filepath.Join(root, "Documents", "report (1).pdf"), 1)
	testsupport.WriteFile(t, filepath.Join(root, "Documents", "report (2).pdf"), 1)

	src := filepath.Join(root, "report.pdf")
	testsupport.WriteFile(t, src, 1)

	final, err := place.New(root).Place(src, "Documents", "report.pdf")
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	if filepath.Base(final) != "report (3).pdf" {
		t.Fatalf("expected report (3).pdf, got %q", filepath.Base(final))
	}
}

func TestPlaceVanishedSource(t *testing.T) {
	root := t.TempDir()
	placer := place.New(root)

	_, err := placer.Place(filepath.Join(root, "ghost.txt"), "Documents", "ghost.txt")
	if err == nil {
		t.Fatal("expected error for vanished source")
	}
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not-found marker, got %v", err)
	}
}

func TestNextAvailablePathExtensionlessName(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "README"), 1)

	got, err := place.NextAvailablePath(dir, "README")
	if err != nil {
		t.Fatalf("NextAvailablePath: %v", err)
	}
	if filepath.Base(got) != "README (1)" {
		t.Fatalf("expected README (1), got %q", filepath.Base(got))
	}
}
