package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

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
	store := openTestStore(t)

	for _, s := range []struct {
		game  string
		name  string
		score int
	}{
		{"carrot", "ana", 100},
		{"carrot", "bo", 50},
		{"carrot", "cy", 200},
		{"other", "dee", 500},
	} {
		if _, err := store.SaveScore(s.game, uuid.New(), s.name, s.score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("carrot", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []struct {
		name  string
		score int
	}{{"cy", 200}, {"ana", 100}, {"bo", 50}}
	for i, w := range want {
		if scores[i].Score != w.score || scores[i].PlayerName != w.name {
			t.Errorf("scores[%d] = %s/%d, expected %s/%d", i, scores[i].PlayerName, scores[i].Score, w.name, w.score)
		}
		if scores[i].RunID == uuid.Nil {
			t.Errorf("scores[%d] has no run id", i)
		}
		if scores[i].CreatedAt.IsZero() {
			t.Errorf("scores[%d] has no timestamp", i)
		}
	}
}

func TestStoreSaveSameRunUpdates(t *testing.T) {
	store := openTestStore(t)
	run := uuid.New()

	id1, err := store.SaveScore("carrot", run, "", 10)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	id2, err := store.SaveScore("carrot", run, "ana", 12)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if id1 != id2 {
		t.Errorf("saving the same run should keep its ID, got %d and %d", id1, id2)
	}

	scores, err := store.TopScores("carrot", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 12 || scores[0].PlayerName != "ana" {
		t.Errorf("expected one updated record, got %+v", scores)
	}
}

func TestStoreDefaultPlayerName(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore("carrot", uuid.New(), "   ", 5); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("carrot", 1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].PlayerName != DefaultPlayerName {
		t.Errorf("PlayerName = %q, expected %q", scores[0].PlayerName, DefaultPlayerName)
	}
}

func TestStoreSetPlayerName(t *testing.T) {
	store := openTestStore(t)
	run := uuid.New()
	if _, err := store.SaveScore("carrot", run, "", 30); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	if err := store.SetPlayerName(run, " Bunny "); err != nil {
		t.Fatalf("SetPlayerName() failed: %v", err)
	}
	scores, _ := store.TopScores("carrot", 1)
	if scores[0].PlayerName != "Bunny" {
		t.Errorf("PlayerName = %q, expected Bunny", scores[0].PlayerName)
	}

	if err := store.SetPlayerName(uuid.New(), "ghost"); err == nil {
		t.Error("SetPlayerName() should fail for an unknown run")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		if _, err := store.SaveScore("carrot", uuid.New(), "p", i*10); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("carrot", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 190 {
		t.Errorf("Expected top score 190, got %d", scores[0].Score)
	}

	scores, err = store.TopScores("carrot", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("a non-positive limit should default to 10, got %d", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("carrot")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty game, got %d", high)
	}

	store.SaveScore("carrot", uuid.New(), "a", 100)
	store.SaveScore("carrot", uuid.New(), "b", 300)
	store.SaveScore("carrot", uuid.New(), "c", 200)

	high, err = store.HighScore("carrot")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score 300, got %d", high)
	}
}

func TestStoreIsHighScore(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		score    int
		expected bool
	}{
		{0, false},
		{1, true},
	}
	for _, tc := range tests {
		got, err := store.IsHighScore("carrot", tc.score)
		if err != nil {
			t.Fatalf("IsHighScore() failed: %v", err)
		}
		if got != tc.expected {
			t.Errorf("empty store: IsHighScore(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}

	store.SaveScore("carrot", uuid.New(), "a", 150)

	for _, tc := range []struct {
		score    int
		expected bool
	}{
		{149, false},
		{150, false},
		{151, true},
	} {
		got, err := store.IsHighScore("carrot", tc.score)
		if err != nil {
			t.Fatalf("IsHighScore() failed: %v", err)
		}
		if got != tc.expected {
			t.Errorf("IsHighScore(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("carrot", uuid.New(), "a", 100)
	store.SaveScore("other", uuid.New(), "b", 500)

	if err := store.ClearScores("carrot"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("carrot", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	other, _ := store.TopScores("other", 10)
	if len(other) != 1 {
		t.Errorf("Other games should be unaffected, got %d scores", len(other))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("carrot")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveScore("carrot", uuid.New(), "a", 10)
	store.SaveScore("carrot", uuid.New(), "a", 30)
	store.SaveScore("carrot", uuid.New(), "b", 20)

	stats, err = store.GetGameStats("carrot")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 30 || stats.TotalScore != 60 || stats.Players != 2 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %f, expected 20", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreSettings(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.Setting("music_volume"); err != nil || ok {
		t.Fatalf("unset key: ok=%v err=%v", ok, err)
	}

	if err := store.SetSetting("music_volume", "0.1"); err != nil {
		t.Fatalf("SetSetting() failed: %v", err)
	}
	if err := store.SetSetting("music_volume", "0.4"); err != nil {
		t.Fatalf("SetSetting() overwrite failed: %v", err)
	}

	v, ok, err := store.Setting("music_volume")
	if err != nil || !ok || v != "0.4" {
		t.Errorf("Setting() = %q, %v, %v; expected 0.4", v, ok, err)
	}
}

func TestStoreSettingsPersist(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SetSetting("effects_volume", "0.05"); err != nil {
		t.Fatalf("SetSetting() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if v, ok, _ := store.Setting("effects_volume"); !ok || v != "0.05" {
		t.Errorf("setting not persisted, got %q", v)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.carrot/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".carrot", "scores.db")); err != nil {
		t.Errorf("database not created under home: %v", err)
	}
}
