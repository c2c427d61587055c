package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{"       _", "#818cf8"},
	{"   ___| |__   __ _ _ __   ___  ___", "#a78bfa"},
	{"  / __| '_ \\ / _` | '_ \\ / _ \\/ __|", "#c084fc"},
	{"  \\__ \\ | | | (_| | |_) |  __/\\__ \\", "#e879f9"},
	{"  |___/_| |_|\\__,_| .__/ \\___||___/", "#f472b6"},
	{"                  |_|", "#fb7185"},
}

// PrintBanner writes the ASCII art banner followed by the version to w.
// Colors are dropped when w is not a color terminal.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)

	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	if v := strings.TrimSpace(version); v != "" {
		fmt.Fprintln(w, out.String("  "+v).Faint())
	}
	fmt.Fprintln(w)
}
