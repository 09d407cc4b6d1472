package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/layout"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		in     string
		format string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Validate a layout file and re-encode it as JSON or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := layout.ParseFormat(format)
			if err != nil {
				return err
			}
			l, err := readLayout(in)
			if err != nil {
				return err
			}
			if _, err := l.Validate(a.cfg.Grid.Rows, a.cfg.Grid.Cols); err != nil {
				return err
			}
			data, err := layout.Encode(l, out)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&in, "layout", "l", "", "layout file to read (.json, .yaml or .yml)")
	cmd.Flags().StringVarP(&format, "format", "f", string(layout.JSON), "output encoding: json or yaml")
	_ = cmd.MarkFlagRequired("layout")
	return cmd
}

// readLayout decodes path, picking the encoding from its extension.
func readLayout(path string) (*layout.Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	f := layout.JSON
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		f = layout.YAML
	}
	return layout.Decode(data, f)
}
