package main

import (
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/textbox/internal/config"
	"github.com/iw2rmb/textbox/layout"
	"github.com/iw2rmb/textbox/textbox"
)

func newTreeCmd() *cobra.Command {
	var (
		width int
		kind  string
	)
	cmd := &cobra.Command{
		Use:   "tree <file>",
		Short: "Print the accessibility tree of a file laid out in a text box",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := textbox.ParseKind(kind)
			if err != nil {
				return err
			}
			text, err := readText(args[0])
			if err != nil {
				return err
			}
			tree, err := accessibilityTree(text, k, width)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(tree)
		},
	}
	cmd.Flags().IntVar(&width, "width", 80, "box width in cells")
	cmd.Flags().StringVarP(&kind, "kind", "k", textbox.MultiLineWrapped.String(), "line model: single, multi or wrapped")
	return cmd
}

func accessibilityTree(text string, k textbox.Kind, width int) (any, error) {
	if width <= 0 {
		return nil, fmt.Errorf("width %d must be positive", width)
	}
	c := textbox.NewContent(text, layout.Cells())
	c.SetContainer(layout.Rect{W: float32(width), H: 1})
	s, err := textbox.NewSession(c, textbox.Config{
		Kind:      k,
		Region:    1,
		Clipboard: &textbox.MemoryClipboard{},
	})
	if err != nil {
		return nil, err
	}
	return s.Accessibility(), nil
}

func newConfigCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewLoader(path).Load()
			if err != nil {
				return err
			}
			enc := toml.NewEncoder(cmd.OutOrStdout())
			return enc.Encode(cfg)
		},
	}
	cmd.Flags().StringVarP(&path, "config", "c", "", "config file (default ./textbox.toml)")
	return cmd
}
