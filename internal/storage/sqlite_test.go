package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustSave(t *testing.T, store *Store, gameID string, score int) {
	t.Helper()
	if _, err := store.SaveGame(GameRecord{GameID: gameID, Score: score, Length: 3 + score/10, Moves: score}); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsHistory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveGame(GameRecord{GameID: "snake", Score: 70}); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("snake")
	if err != nil || high != 70 {
		t.Errorf("HighScore() = %d, %v; expected 70", high, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveGame(GameRecord{GameID: "snake", Score: 100, Length: 13, Moves: 240})
	if err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("SaveGame() id = %d, expected positive", id)
	}
	mustSave(t, store, "snake", 50)
	mustSave(t, store, "snake", 200)
	mustSave(t, store, "other", 500)

	scores, err := store.TopScores("snake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
	if scores[1].Length != 13 || scores[1].Moves != 240 {
		t.Errorf("record fields not kept: %+v", scores[1])
	}
	if scores[0].GameID != "snake" {
		t.Errorf("GameID = %q, expected snake", scores[0].GameID)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestStoreSaveRejectsNegative(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveGame(GameRecord{GameID: "snake", Score: -10}); err == nil {
		t.Error("SaveGame() should reject a negative score")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		mustSave(t, store, "snake", (i+1)*100)
	}

	scores, err := store.TopScores("snake", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to 10.
	for i := 0; i < 10; i++ {
		mustSave(t, store, "snake", 1)
	}
	scores, err = store.TopScores("snake", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(scores))
	}
}

func TestStoreTopScoresTieOrder(t *testing.T) {
	store := openTestStore(t)

	first, _ := store.SaveGame(GameRecord{GameID: "snake", Score: 40})
	second, _ := store.SaveGame(GameRecord{GameID: "snake", Score: 40})

	scores, err := store.TopScores("snake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].ID != first || scores[1].ID != second {
		t.Errorf("ties should keep insertion order, got %+v", scores)
	}
}

func TestStoreRecentGames(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "snake", 30)
	mustSave(t, store, "snake", 90)
	mustSave(t, store, "snake", 10)

	games, err := store.RecentGames("snake", 2)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("Expected 2 games, got %d", len(games))
	}
	if games[0].Score != 10 || games[1].Score != 90 {
		t.Errorf("Expected newest first (10, 90), got (%d, %d)", games[0].Score, games[1].Score)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("snake")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty history, got %d", high)
	}

	mustSave(t, store, "snake", 100)
	mustSave(t, store, "snake", 300)
	mustSave(t, store, "snake", 200)

	high, err = store.HighScore("snake")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "snake", 100)
	mustSave(t, store, "snake", 200)
	mustSave(t, store, "other", 300)

	if err := store.ClearScores("snake"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	snakeScores, _ := store.TopScores("snake", 10)
	if len(snakeScores) != 0 {
		t.Errorf("Expected 0 snake scores after clear, got %d", len(snakeScores))
	}

	otherScores, _ := store.TopScores("other", 10)
	if len(otherScores) != 1 {
		t.Errorf("Other games should not be affected by clearing snake")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("snake")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty history should give zero stats, got %+v", stats)
	}

	store.SaveGame(GameRecord{GameID: "snake", Score: 20, Length: 5, Moves: 40})
	store.SaveGame(GameRecord{GameID: "snake", Score: 60, Length: 9, Moves: 100})

	stats, err = store.GetGameStats("snake")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 60 || stats.TotalScore != 80 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 40 {
		t.Errorf("AvgScore = %v, expected 40", stats.AvgScore)
	}
	if stats.BestLength != 9 || stats.TotalMoves != 140 {
		t.Errorf("BestLength/TotalMoves = %d/%d, expected 9/140", stats.BestLength, stats.TotalMoves)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
