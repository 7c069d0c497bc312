package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/Dicklesworthstone/sysdash/internal/logger"
)

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// restoreTerminal shows the cursor and clears the screen. Failures are
// logged; teardown never aborts the exit.
func restoreTerminal(w io.Writer, log logger.Logger) {
	seq := termenv.CSI + termenv.ShowCursorSeq +
		termenv.CSI + fmt.Sprintf(termenv.EraseDisplaySeq, 2) +
		termenv.CSI + fmt.Sprintf(termenv.CursorPositionSeq, 1, 1)
	if _, err := io.WriteString(w, seq); err != nil {
		log.Warn("restore terminal: %v", err)
	}
}
