package cli

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// decodeOpts holds the command-line flags for the decode command.
type decodeOpts struct {
	pretty bool   // indent output
	output string // output file path (stdout if empty)
}

// decodeCommand creates the decode command: GraphSON in, plain JSON out.
func (c *CLI) decodeCommand() *cobra.Command {
	opts := decodeOpts{pretty: c.Config.Pretty}

	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode GraphSON text into plain JSON",
		Long: `Decode type-tagged GraphSON text into plain, untagged JSON.

Envelopes are resolved to their natural JSON shapes: numerics lose their
width tags, graph elements become ordinary objects, unknown tags pass
through structurally.

Reads from stdin when no file (or "-") is given.

Examples:
  graphson decode response.json
  curl -s $SERVER | graphson decode --pretty`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := c.Logger
			prog := newProgress(logger)

			data, err := readInput(cmd, args)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			decoded, err := c.mapper().Read(string(data))
			if err != nil {
				return fmt.Errorf("decode: %w", err)
			}

			out, err := marshalPlain(plainify(decoded), opts.pretty)
			if err != nil {
				return fmt.Errorf("serialize output: %w", err)
			}

			prog.done("Decoded document")
			return writeOutput(cmd, opts.output, out)
		},
	}

	cmd.Flags().BoolVar(&opts.pretty, "pretty", opts.pretty, "indent output")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	return cmd
}

// marshalPlain serializes a plain tree, compact unless pretty is set, and
// never HTML-escapes.
func marshalPlain(v any, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
