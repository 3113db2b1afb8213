package outwriter

import (
	"os"

	"golang.org/x/term"

	"github.com/KobeFor3ver/goatgames-daily-report/internal/contract"
)

// useColorOutput decides whether summary labels get ANSI colors. Colors are
// only worth emitting when stdout is an interactive terminal and no output
// file was requested.
func useColorOutput(cfg *contract.Config) bool {
	if !cfg.UseColors || cfg.OutputFile != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// terminalWidth returns the effective terminal width for table rendering.
func terminalWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		// Conservative default for narrow terminals and CI
		return 80
	}
	return detectedWidth
}
