package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some scores
	if _, err = store.SaveScore("marathon", 100, 2, 1); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err = store.SaveScore("marathon", 50, 1, 1); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err = store.SaveScore("marathon", 200, 5, 1); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different mode
	if _, err = store.SaveScore("sprint-40", 500, 40, 5); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for marathon
	scores, err := store.TopScores("marathon", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	if scores[0].Lines != 5 || scores[0].Level != 1 {
		t.Errorf("Lines/Level not persisted: got %d/%d", scores[0].Lines, scores[0].Level)
	}

	// Retrieve top scores for sprint-40
	sprintScores, err := store.TopScores("sprint-40", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(sprintScores) != 1 {
		t.Errorf("Expected 1 sprint score, got %d", len(sprintScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100, i, 1)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreBestScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	best, err := store.BestScore("marathon")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best score of 0 for empty mode, got %d", best)
	}

	// Add scores
	store.SaveScore("marathon", 100, 2, 1)
	store.SaveScore("marathon", 300, 7, 1)
	store.SaveScore("marathon", 200, 5, 1)

	best, err = store.BestScore("marathon")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 300 {
		t.Errorf("Expected best score of 300, got %d", best)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("marathon", 100, 2, 1)
	store.SaveScore("marathon", 200, 5, 1)
	store.SaveScore("ultra-120", 300, 7, 1)

	// Clear only marathon scores
	if err = store.ClearScores("marathon"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Marathon should be empty
	marathonScores, _ := store.TopScores("marathon", 10)
	if len(marathonScores) != 0 {
		t.Errorf("Expected 0 marathon scores after clear, got %d", len(marathonScores))
	}

	// Ultra should still have scores
	ultraScores, _ := store.TopScores("ultra-120", 10)
	if len(ultraScores) != 1 {
		t.Errorf("Ultra scores should not be affected by clearing marathon")
	}
}

func TestStoreStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("marathon", 100, 2, 1)
	store.SaveScore("marathon", 300, 8, 1)

	stats, err := store.Stats("marathon")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	if stats.Sessions != 2 {
		t.Errorf("Expected 2 sessions, got %d", stats.Sessions)
	}
	if stats.BestScore != 300 {
		t.Errorf("Expected best score 300, got %d", stats.BestScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected avg score 200, got %v", stats.AvgScore)
	}
	if stats.TotalLines != 10 {
		t.Errorf("Expected 10 total lines, got %d", stats.TotalLines)
	}
}

func TestStorePlayedModes(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("marathon", 100, 2, 1)
	store.SaveScore("sprint-40", 200, 40, 5)
	store.SaveScore("marathon", 150, 3, 1)

	modes, err := store.PlayedModes()
	if err != nil {
		t.Fatalf("PlayedModes() failed: %v", err)
	}

	if len(modes) != 2 {
		t.Fatalf("Expected 2 played modes, got %d: %v", len(modes), modes)
	}

	seen := map[string]bool{}
	for _, m := range modes {
		seen[m] = true
	}
	if !seen["marathon"] || !seen["sprint-40"] {
		t.Errorf("Played modes missing entries: %v", modes)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
