package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/brick-breaker/config"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]logrus.Level{
		"Trace":   logrus.TraceLevel,
		"Info":    logrus.InfoLevel,
		"warn":    logrus.WarnLevel,
		"ERROR":   logrus.ErrorLevel,
		"Fatal":   logrus.FatalLevel,
		"verbose": logrus.DebugLevel,
	}
	for name, want := range tests {
		if got := ParseLevel(name); got != want {
			t.Errorf("%s: expected %v, got %v", name, want, got)
		}
	}
}

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	log := New(config.LogConfig{File: path, Level: "Info", MaxSize: 1})

	log.WithField("level_id", 3).Info("level loaded")
	log.Debug("filtered out")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected log file, got %v", err)
	}

	var entry map[string]any
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("Expected a single JSON entry, got %q: %v", data, err)
	}
	if entry["msg"] != "level loaded" || entry["level_id"] != float64(3) {
		t.Errorf("Unexpected entry %v", entry)
	}
}

func TestOrDiscard(t *testing.T) {
	if OrDiscard(nil) == nil {
		t.Fatal("Expected a logger")
	}
	l := Discard()
	if OrDiscard(l) != l {
		t.Error("Expected the given logger back")
	}
}
