package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

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

func TestStoreCreatesParentDirs(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() should create parent directories: %v", err)
	}
	store.Close()
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, run := range []struct{ score, wave int }{
		{100, 2},
		{50, 1},
		{200, 4},
	} {
		if _, err := store.SaveScore(run.score, run.wave); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending with the wave carried along
	if scores[0].Score != 200 || scores[0].Wave != 4 {
		t.Errorf("Expected top entry 200/wave 4, got %d/wave %d", scores[0].Score, scores[0].Wave)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		if _, err := store.SaveScore(i*10, 1); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores with limit 5, got %d", len(scores))
	}

	// Non-positive limit falls back to the default of 10
	scores, err = store.TopScores(0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("Expected 10 scores with default limit, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// Empty database returns 0
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 high score for empty database, got %d", high)
	}

	store.SaveScore(300, 3)
	store.SaveScore(700, 6)
	store.SaveScore(150, 2)

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 700 {
		t.Errorf("Expected high score 700, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(100, 1)
	store.SaveScore(200, 2)

	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("Expected no scores after clear, got %d", len(scores))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	// Empty stats are all zero
	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.RunsCount != 0 || stats.HighScore != 0 {
		t.Errorf("Expected zero stats for empty database, got %+v", stats)
	}

	store.SaveScore(100, 2)
	store.SaveScore(300, 5)

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.RunsCount != 2 {
		t.Errorf("Expected 2 runs, got %d", stats.RunsCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("Expected high score 300, got %d", stats.HighScore)
	}
	if stats.BestWave != 5 {
		t.Errorf("Expected best wave 5, got %d", stats.BestWave)
	}
	if stats.TotalScore != 400 {
		t.Errorf("Expected total score 400, got %d", stats.TotalScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected average score 200, got %.1f", stats.AvgScore)
	}
}
