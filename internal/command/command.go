// Package command implements the create and view operations on top of the
// palette core. Host integration is injected: source text and source file
// arrive as Inputs, and written artifacts are handed to a Revealer.
package command

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/agnivade/levenshtein"

	"swatchbook/internal/archive"
	"swatchbook/internal/config"
	"swatchbook/internal/palette"
	"swatchbook/internal/preview"
	"swatchbook/internal/ui"
)

// Commands lists the recognised command tokens.
var Commands = []string{"create", "view"}

// Inputs are provided by the host. A nil Text or empty File means absent.
type Inputs struct {
	Text *string
	File string
}

// Runner executes commands against one configuration and set of inputs.
type Runner struct {
	Config   *config.Config
	Inputs   Inputs
	Revealer Revealer

	// JSON makes view print the document instead of the grid.
	JSON bool
	// Preview makes create also write a PNG sheet, in addition to Config.Preview.
	Preview bool
}

// Run dispatches token. Unknown tokens are reported and ignored.
func (r *Runner) Run(token string) error {
	var err error
	switch token {
	case "create":
		_, err = r.Create()
	case "view":
		err = r.View()
	default:
		r.unknown(token)
	}
	if err != nil {
		MetricFailuresTotal.WithLabelValues(FailureKind(err)).Inc()
	}
	return err
}

// Create parses the injected text into a palette, saves it under the
// configured output directory and reveals the archive. It returns the path.
func (r *Runner) Create() (string, error) {
	if r.Inputs.Text == nil {
		return "", ErrNoInputProvided
	}

	p, err := palette.FromText(*r.Inputs.Text)
	if err != nil {
		return "", err
	}
	MetricSwatchesParsed.Add(float64(p.Count()))

	dest := filepath.Join(r.Config.OutputDir, p.Filename(r.Config.Extension))
	if err := archive.Save(p, dest, archive.WithMethod(r.Config.Method())); err != nil {
		return "", err
	}
	MetricPalettesCreated.Inc()

	size := int64(0)
	if info, err := os.Stat(dest); err == nil {
		size = info.Size()
		MetricArchiveBytes.Observe(float64(size))
	}
	ui.LogStatus("success", fmt.Sprintf("Saved %d swatches to %s (%s)", p.Count(), filepath.Base(dest), ui.FormatBytes(size)))

	reveal := r.Revealer
	if reveal == nil {
		reveal = LogRevealer{}
	}

	if r.Preview || r.Config.Preview {
		sheet := strings.TrimSuffix(dest, filepath.Ext(dest)) + ".png"
		if err := preview.WritePNG(p, sheet); err != nil {
			return dest, fmt.Errorf("%w: %v", archive.ErrIO, err)
		}
		if err := reveal.Reveal(sheet); err != nil {
			return dest, fmt.Errorf("reveal %s: %w", sheet, err)
		}
	}

	if err := reveal.Reveal(dest); err != nil {
		return dest, fmt.Errorf("reveal %s: %w", dest, err)
	}
	return dest, nil
}

// View renders the injected archive, or an empty default palette when no
// file was provided.
func (r *Runner) View() error {
	p := palette.New()
	if r.Inputs.File != "" {
		loaded, err := archive.Load(r.Inputs.File)
		if err != nil {
			return err
		}
		MetricPalettesLoaded.Inc()
		p = loaded
	}

	if r.JSON {
		ui.Print(p.String())
		return nil
	}
	ui.ShowPalette(p, r.Inputs.File)
	return nil
}

func (r *Runner) unknown(token string) {
	ui.LogStatus("warning", "Unknown command: "+token)
	if s := Suggest(token); s != "" {
		ui.LogStatus("info", "Did you mean "+ui.Command("%s", s)+"?")
		return
	}
	ui.LogStatus("info", ui.Muted("Commands: %s", strings.Join(Commands, ", ")))
}

// Suggest returns the closest known command within two edits of token.
func Suggest(token string) string {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return ""
	}
	best, bestDist := "", 3
	for _, c := range Commands {
		if d := levenshtein.ComputeDistance(token, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
