package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders markdown to the terminal. When pretty rendering is
// off or fails, the raw markdown is printed as-is, which keeps the output
// pipeable.
func printMarkdown(md string, raw bool) {
	if !raw {
		if out, err := glamour.Render(md, "auto"); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Println(md)
}
