package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// setFlags points the command flags at a temp database and restores the
// defaults when the test ends.
func setFlags(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	flagDBPath = filepath.Join(dir, "scores.db")
	flagLogPath = filepath.Join(dir, "breakout.log")
	t.Cleanup(func() {
		flagDBPath = "~/.breakout/scores.db"
		flagLogPath = ""
		flagDifficulty = ""
		flagConfig = ""
		flagLevelsDir = ""
		flagLevel = 1
		flagResume = ""
		flagScoresClear = false
	})
	return flagDBPath
}

func TestPlayReturnsConfigErrors(t *testing.T) {
	setFlags(t)

	flagDifficulty = "impossible"
	if err := runPlay(nil, nil); err == nil || !strings.Contains(err.Error(), "unknown difficulty") {
		t.Errorf("runPlay() = %v, expected unknown difficulty error", err)
	}

	flagDifficulty = ""
	flagLevel = 99
	if err := runPlay(nil, nil); err == nil || !strings.Contains(err.Error(), "out of range") {
		t.Errorf("runPlay() = %v, expected level range error", err)
	}
}

func TestPlayResumeWithoutSaves(t *testing.T) {
	setFlags(t)

	flagResume = "latest"
	err := runPlay(nil, nil)
	if err == nil || !strings.Contains(err.Error(), "no saved session") {
		t.Errorf("runPlay() = %v, expected missing save error", err)
	}
}

func TestLoadResumeWithoutStore(t *testing.T) {
	if _, err := loadResume(nil, "latest"); err == nil {
		t.Error("resume without a database should fail")
	}
}

func TestScoresClear(t *testing.T) {
	path := setFlags(t)

	store, err := storage.Open(path)
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	if _, err := store.SaveScore(gameID, "standard", 300); err != nil {
		t.Fatalf("SaveScore: %v", err)
	}
	store.Close()

	flagScoresClear = true
	if err := runScores(nil, nil); err != nil {
		t.Fatalf("runScores() = %v", err)
	}

	store, err = storage.Open(path)
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()
	if high, err := store.HighScore(gameID); err != nil || high != 0 {
		t.Errorf("HighScore after clear = %d, %v; expected 0", high, err)
	}
}

func TestConfigPrintsDefaults(t *testing.T) {
	var out bytes.Buffer
	configCmd.SetOut(&out)
	defer configCmd.SetOut(nil)

	if err := configCmd.RunE(configCmd, nil); err != nil {
		t.Fatalf("config: %v", err)
	}
	if !strings.Contains(out.String(), "world:") {
		t.Errorf("config output missing world section:\n%s", out.String())
	}
}
