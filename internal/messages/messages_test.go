package messages

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	cat := Default()
	if len(cat.Win) != 5 {
		t.Errorf("win templates %d, want 5", len(cat.Win))
	}
	if len(cat.Loss) != 4 {
		t.Errorf("loss templates %d, want 4", len(cat.Loss))
	}
}

func TestPicker_DeterministicForSeed(t *testing.T) {
	a := NewPicker(Default(), rand.New(rand.NewPCG(7, 7)))
	b := NewPicker(Default(), rand.New(rand.NewPCG(7, 7)))
	for i := 0; i < 10; i++ {
		if x, y := a.Win("LEO", i), b.Win("LEO", i); x != y {
			t.Fatalf("pick %d differs: %q vs %q", i, x, y)
		}
	}
}

func TestPicker_FillsPlaceholders(t *testing.T) {
	p := NewPicker(Catalog{
		Win:  []string{`"{answer}" streak {streak}`},
		Loss: []string{`was {answer}`},
	}, rand.New(rand.NewPCG(1, 1)))

	if got := p.Win("GILLI", 3); got != `"GILLI" streak 3` {
		t.Errorf("Win = %q", got)
	}
	if got := p.Loss("THERI"); got != "was THERI" {
		t.Errorf("Loss = %q", got)
	}
}

func TestPicker_CoversEveryTemplate(t *testing.T) {
	p := NewPicker(Default(), rand.New(rand.NewPCG(3, 4)))
	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		seen[p.Loss("X")] = true
	}
	if len(seen) != 4 {
		t.Errorf("distinct loss messages %d, want 4", len(seen))
	}
}

func TestLoad_FromFiles(t *testing.T) {
	dir := t.TempDir()
	win := filepath.Join(dir, "win.txt")
	_ = os.WriteFile(win, []byte("# comment\n\nYay {answer}\n"), 0o644)

	cat, err := Load(win, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cat.Win) != 1 || !strings.HasPrefix(cat.Win[0], "Yay") {
		t.Errorf("win %v", cat.Win)
	}
	if len(cat.Loss) != 4 {
		t.Errorf("loss should fall back to defaults, got %d", len(cat.Loss))
	}

	empty := filepath.Join(dir, "empty.txt")
	_ = os.WriteFile(empty, []byte("# nothing\n"), 0o644)
	if _, err := Load(empty, ""); err == nil {
		t.Error("empty win list should fail")
	}
	if _, err := Load(filepath.Join(dir, "missing.txt"), ""); err == nil {
		t.Error("missing file should fail")
	}
}
