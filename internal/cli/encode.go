package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// encodeOpts holds the command-line flags for the encode command.
type encodeOpts struct {
	output string // output file path (stdout if empty)
}

// encodeCommand creates the encode command: plain JSON in, GraphSON out.
// Useful for producing wire fixtures without a live server.
func (c *CLI) encodeCommand() *cobra.Command {
	opts := encodeOpts{}

	cmd := &cobra.Command{
		Use:   "encode [file]",
		Short: "Encode plain JSON as GraphSON text",
		Long: `Encode plain JSON as compact, type-tagged GraphSON text.

Numbers are re-tagged by shape: integral values become Int64 envelopes,
fractional values Double, under the configured namespace ("g" by default).
Booleans and strings stay bare, objects and arrays are walked recursively.
A single-key object {"@lambda":"x: x + 1"} becomes a Lambda envelope in the
configured lambda language.

Reads from stdin when no file (or "-") is given.

Examples:
  graphson encode fixture.json
  echo '{"age":29}' | graphson encode
  echo '{"fn":{"@lambda":"x: x + 1"}}' | graphson encode`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog := newProgress(c.Logger)

			data, err := readInput(cmd, args)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			dec := json.NewDecoder(strings.NewReader(string(data)))
			dec.UseNumber()
			var tree any
			if err := dec.Decode(&tree); err != nil {
				return fmt.Errorf("parse input JSON: %w", err)
			}

			out, err := c.mapper().Write(c.retag(tree))
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}

			prog.done("Encoded document")
			return writeOutput(cmd, opts.output, []byte(out))
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	return cmd
}
