package cli

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tinkerkit/graphson/pkg/graphson"
)

// inspectOpts holds the command-line flags for the inspect command.
type inspectOpts struct {
	interactive bool // open the bubbletea browser
}

// inspectCommand creates the inspect command: a structural tree view of a
// GraphSON document with envelope tags called out.
func (c *CLI) inspectCommand() *cobra.Command {
	opts := inspectOpts{}

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Show the typed structure of a GraphSON document",
		Long: `Show a GraphSON document as a tree with envelope tags highlighted.

The view works on the raw wire structure, before decoding: every "@type"
tag is shown as-is, including unregistered extension tags.

Examples:
  graphson inspect response.json
  graphson inspect response.json --interactive`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			lines := treeLines(tree, "", 0)
			if opts.interactive {
				return runBrowser(lines)
			}

			var sb strings.Builder
			for _, line := range lines {
				sb.WriteString(line.styled())
				sb.WriteString("\n")
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), sb.String())
			return err
		},
	}

	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse the tree interactively")
	return cmd
}

// treeLine is one row of the inspect view.
type treeLine struct {
	depth int
	key   string // object key or array index, empty at the root
	tag   string // envelope tag, empty for plain values
	value string // scalar rendering or collection summary
}

// plain renders the line without styling (used by tests and the browser's
// selected row).
func (l treeLine) plain() string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("  ", l.depth))
	if l.key != "" {
		sb.WriteString(l.key)
		sb.WriteString(": ")
	}
	if l.tag != "" {
		sb.WriteString(l.tag)
		if l.value != "" {
			sb.WriteString(" ")
		}
	}
	sb.WriteString(l.value)
	return sb.String()
}

func (l treeLine) styled() string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat("  ", l.depth))
	if l.key != "" {
		sb.WriteString(StyleKey.Render(l.key + ":"))
		sb.WriteString(" ")
	}
	if l.tag != "" {
		sb.WriteString(StyleTag.Render(l.tag))
		if l.value != "" {
			sb.WriteString(" ")
		}
	}
	sb.WriteString(StyleValue.Render(l.value))
	return sb.String()
}

// treeLines flattens a parsed JSON tree into inspect rows. Envelope maps
// collapse into a single tagged row whose children are the payload.
func treeLines(v any, key string, depth int) []treeLine {
	switch val := v.(type) {
	case map[string]any:
		tag, tagged := val[graphson.TypeKey].(string)
		payload, hasValue := val[graphson.ValueKey]
		if tagged && (len(val) == 1 || (len(val) == 2 && hasValue)) {
			if !hasValue {
				return []treeLine{{depth: depth, key: key, tag: tag, value: "(no value)"}}
			}
			if child, ok := scalar(payload); ok {
				return []treeLine{{depth: depth, key: key, tag: tag, value: child}}
			}
			lines := []treeLine{{depth: depth, key: key, tag: tag}}
			return append(lines, childLines(payload, depth+1)...)
		}

		lines := []treeLine{{depth: depth, key: key, value: fmt.Sprintf("{%d keys}", len(val))}}
		return append(lines, childLines(val, depth+1)...)

	case []any:
		lines := []treeLine{{depth: depth, key: key, value: fmt.Sprintf("[%d items]", len(val))}}
		for i, item := range val {
			lines = append(lines, treeLines(item, fmt.Sprintf("[%d]", i), depth+1)...)
		}
		return lines

	default:
		s, _ := scalar(v)
		return []treeLine{{depth: depth, key: key, value: s}}
	}
}

// childLines expands an envelope payload or plain object into rows with
// deterministic key order.
func childLines(v any, depth int) []treeLine {
	switch val := v.(type) {
	case map[string]any:
		var lines []treeLine
		for _, k := range sortedKeys(val) {
			lines = append(lines, treeLines(val[k], k, depth)...)
		}
		return lines
	case []any:
		var lines []treeLine
		for i, item := range val {
			lines = append(lines, treeLines(item, fmt.Sprintf("[%d]", i), depth)...)
		}
		return lines
	default:
		s, _ := scalar(v)
		return []treeLine{{depth: depth, value: s}}
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// scalar renders a leaf value, reporting false for collections.
func scalar(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "null", true
	case string:
		return fmt.Sprintf("%q", val), true
	case bool:
		return fmt.Sprint(val), true
	case json.Number:
		return val.String(), true
	case float64:
		return fmt.Sprint(val), true
	default:
		return "", false
	}
}

// runBrowser opens the interactive tree browser.
func runBrowser(lines []treeLine) error {
	_, err := tea.NewProgram(newBrowserModel(lines), tea.WithAltScreen()).Run()
	return err
}
