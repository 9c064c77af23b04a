package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
)

// formatElapsed renders d as whole minutes and seconds, e.g. "2m 5s".
func formatElapsed(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%dm %ds", total/60, total%60)
}

func isInteractive(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// waitForEnter blocks until a line is read from in, but only when in is a
// terminal.
func waitForEnter(in *os.File, out io.Writer) {
	if in == nil || !isInteractive(in) {
		return
	}
	fmt.Fprint(out, "Press Enter to exit...")
	_, _ = bufio.NewReader(in).ReadString('\n')
}
