package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestOrganizeMovesFilesIntoCategories(t *testing.T) {
	env := setupCLITestEnv(t)
	writeTargetFile(t, env, "report.pdf")
	writeTargetFile(t, env, "photo.jpg")
	old := writeTargetFile(t, env, "stale.txt")
	ageTargetFile(t, old, 45*24*time.Hour)

	out, _, err := runCLI(t, []string{"organize", env.targetDir}, env.configPath)
	if err != nil {
		t.Fatalf("organize: %v", err)
	}
	requireContains(t, out, "3 moved, 0 failed")

	requireFile(t, filepath.Join(env.targetDir, "Documents", "report.pdf"))
	requireFile(t, filepath.Join(env.targetDir, "Images", "photo.jpg"))
	requireFile(t, filepath.Join(env.targetDir, "Old Files", "stale.txt"))
}

func TestOrganizeDryRunLeavesTargetUntouched(t *testing.T) {
	env := setupCLITestEnv(t)
	writeTargetFile(t, env, "report.pdf")

	out, _, err := runCLI(t, []string{"organize", "--dry-run", env.targetDir}, env.configPath)
	if err != nil {
		t.Fatalf("organize --dry-run: %v", err)
	}
	requireContains(t, out, "report.pdf")
	requireContains(t, out, "Documents")

	requireFile(t, filepath.Join(env.targetDir, "report.pdf"))
	if _, err := os.Stat(filepath.Join(env.targetDir, "Documents")); !os.IsNotExist(err) {
		t.Fatalf("dry run must not create category folders, stat err = %v", err)
	}
}

func TestOrganizeMissingTargetFails(t *testing.T) {
	env := setupCLITestEnv(t)

	missing := filepath.Join(env.baseDir, "nope")
	_, _, err := runCLI(t, []string{"organize", missing}, env.configPath)
	if err == nil {
		t.Fatal("expected error organizing a missing directory")
	}
}

func TestPlanPreviewsWithoutMoving(t *testing.T) {
	env := setupCLITestEnv(t)
	writeTargetFile(t, env, "track.mp3")

	out, _, err := runCLI(t, []string{"plan", env.targetDir}, env.configPath)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	requireContains(t, out, "track.mp3")
	requireContains(t, out, "Audio")
	requireFile(t, filepath.Join(env.targetDir, "track.mp3"))
}
