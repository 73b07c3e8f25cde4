package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tinkerkit/graphson/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	format   string // "dot" or "svg"
	output   string // output file, empty means stdout
	detailed bool   // include vertex labels in node text
}

// renderCommand creates the render command: visualize the graph elements of a
// GraphSON document as Graphviz DOT or SVG.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render the graph elements of a GraphSON document",
		Long: `Render the vertices and edges of a GraphSON document with Graphviz.

The document is decoded, every vertex and edge in it is collected (including
elements nested in paths, traversers, and collections), and the resulting
graph is laid out as DOT text or rasterized to SVG.

Examples:
  graphson render response.json
  graphson render response.json --format svg -o graph.svg
  graphson render response.json --detailed`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != "dot" && opts.format != "svg" {
				return fmt.Errorf("unsupported format %q (want dot or svg)", opts.format)
			}

			data, err := readInput(cmd, args)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			decoded, err := c.mapper().Read(string(data))
			if err != nil {
				return fmt.Errorf("decode GraphSON: %w", err)
			}

			els := render.Collect(decoded)
			logger := loggerFromContext(cmd.Context())
			logger.Debug("collected elements", "vertices", len(els.Vertices), "edges", len(els.Edges))

			dot, err := render.ToDOT(els, render.Options{Detailed: opts.detailed})
			if err != nil {
				return err
			}

			if opts.format == "dot" {
				return writeOutput(cmd, opts.output, []byte(dot))
			}

			svg, err := render.RenderSVG(cmd.Context(), dot)
			if err != nil {
				return fmt.Errorf("render SVG: %w", err)
			}
			return writeOutput(cmd, opts.output, svg)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "dot", "output format (dot, svg)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include vertex labels in node text")
	return cmd
}
