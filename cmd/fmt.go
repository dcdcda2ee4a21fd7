package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders a markdown document to stdout, falling back to the
// raw markdown when the terminal renderer cannot be built.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(0),
	)
	if err != nil {
		fmt.Println(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// fail reports an error on stderr, in one consistent format for all commands.
func fail(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
}
