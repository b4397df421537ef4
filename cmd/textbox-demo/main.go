// Command textbox-demo edits a text box in the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/textbox/textbox"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type flags struct {
	configPath  string
	lineNumbers bool
	watch       bool
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "textbox-demo [file]",
		Short: "Edit text in a terminal text box",
		Long: `Opens a text box over the given file, or an empty one.

Click or start typing to edit. Enter submits a single line box, Esc stops
editing, Ctrl+S writes the file back and Ctrl+Q quits.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return run(cmd, f, path)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "config file (default ./textbox.toml)")
	fl.BoolVarP(&f.lineNumbers, "line-numbers", "n", false, "show line numbers")
	fl.BoolVarP(&f.watch, "watch", "w", false, "reload the file when it changes on disk while not editing")
	fl.StringP("kind", "k", "", "line model: single, multi or wrapped")
	fl.String("log-level", "", "log level: trace, debug, info, warn, error")
	fl.String("log-file", "", "write logs to this file")
	fl.Int("width", 0, "box width in cells, 0 fills the terminal")
	fl.Int("height", 0, "box height in cells, 0 fills the terminal")

	cmd.AddCommand(newVersionCmd(), newTreeCmd(), newConfigCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "textbox-demo %s\n", textbox.CurrentRelease())
		},
	}
}
