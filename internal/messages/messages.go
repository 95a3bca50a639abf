// internal/messages/messages.go
//
// Message copy for round results.
//
// Responsibilities:
//   - Load win and loss templates from environment-provided files or fall back
//     to the embedded defaults.
//   - Pick one template uniformly at random and fill in its placeholders.
//
// Templates:
//   - One message per line; blank lines and lines starting with "#" are skipped.
//   - {answer} is replaced with the revealed answer, {streak} with the current
//     win streak.
//
// Environment variables:
//   MESSAGES_WIN_FILE=/path/to/win.txt
//   MESSAGES_LOSS_FILE=/path/to/loss.txt

package messages

import (
	"bufio"
	_ "embed"
	"errors"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
)

//go:embed win.txt
var embeddedWin string

//go:embed loss.txt
var embeddedLoss string

// Notice texts that are not randomised.
const (
	NewRoundFailed = "Failed to start new game. Please try again."
	OracleDown     = "Word service is unreachable. Press Enter to retry."
)

// Catalog holds the loaded templates.
type Catalog struct {
	Win  []string
	Loss []string
}

// Load reads the catalog. Empty paths select the embedded defaults.
func Load(winPath, lossPath string) (Catalog, error) {
	win, err := readOrDefault(winPath, embeddedWin)
	if err != nil {
		return Catalog{}, err
	}
	loss, err := readOrDefault(lossPath, embeddedLoss)
	if err != nil {
		return Catalog{}, err
	}
	if len(win) == 0 || len(loss) == 0 {
		return Catalog{}, errors.New("messages: empty win or loss list")
	}
	return Catalog{Win: win, Loss: loss}, nil
}

// Default returns the embedded catalog.
func Default() Catalog {
	return Catalog{Win: normalizeLines(embeddedWin), Loss: normalizeLines(embeddedLoss)}
}

// Picker selects messages with an injected random source.
type Picker struct {
	cat Catalog
	rng *rand.Rand
}

// NewPicker binds a catalog to rng.
func NewPicker(cat Catalog, rng *rand.Rand) *Picker {
	return &Picker{cat: cat, rng: rng}
}

// Win returns a congratulation for answer at the given streak.
func (p *Picker) Win(answer string, streak int) string {
	return fill(p.pick(p.cat.Win), answer, streak)
}

// Loss returns a commiseration naming answer.
func (p *Picker) Loss(answer string) string {
	return fill(p.pick(p.cat.Loss), answer, 0)
}

func (p *Picker) pick(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[p.rng.IntN(len(list))]
}

func fill(tmpl, answer string, streak int) string {
	return strings.NewReplacer("{answer}", answer, "{streak}", strconv.Itoa(streak)).Replace(tmpl)
}

func readOrDefault(path, fallback string) ([]string, error) {
	if path == "" {
		return normalizeLines(fallback), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" && !strings.HasPrefix(s, "#") {
			out = append(out, s)
		}
	}
	return out, sc.Err()
}

// normalizeLines splits an embedded multiline string into templates.
func normalizeLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if l := strings.TrimSpace(line); l != "" && !strings.HasPrefix(l, "#") {
			out = append(out, l)
		}
	}
	return out
}
