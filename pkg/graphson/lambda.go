package graphson

import (
	"strings"

	"github.com/tinkerkit/graphson/pkg/errors"
	"github.com/tinkerkit/graphson/pkg/traversal"
)

// introspectable lists the embedded scripting languages whose lambda scripts
// this codec can derive an argument count for. Every other language reports
// arity -1 (unknown).
var introspectable = map[string]bool{
	"gremlin-python": true,
	"gremlin-jython": true,
}

func registerLambdas(r *Registry) {
	r.RegisterEncoder(traversal.Lambda(nil), encodeLambda)
	r.RegisterEncoder(traversal.Script(nil), encodeScript)
}

func encodeLambda(v any, m *Mapper) (any, error) {
	script, language := v.(traversal.Lambda)()
	if language == "" {
		language = traversal.DefaultLambdaLanguage
	}
	return finishLambda(script, language, m)
}

func encodeScript(v any, m *Mapper) (any, error) {
	return finishLambda(v.(traversal.Script)(), traversal.DefaultLambdaLanguage, m)
}

// finishLambda builds the Lambda envelope. For introspectable languages the
// script is normalized to start with the "lambda" introducer and its
// parameter list is parsed for the argument count; a script whose header
// cannot be parsed is a hard error, never a defaulted arity.
func finishLambda(script, language string, m *Mapper) (any, error) {
	out := map[string]any{
		"script":   script,
		"language": language,
	}

	if !introspectable[language] {
		out["arguments"] = -1
		return m.TypedValue("Lambda", out), nil
	}

	if !strings.HasPrefix(strings.TrimSpace(script), "lambda") {
		script = "lambda " + script
		out["script"] = script
	}
	arity, err := lambdaArity(script)
	if err != nil {
		return nil, err
	}
	out["arguments"] = arity

	return m.TypedValue("Lambda", out), nil
}

// lambdaArity counts the declared parameters of an anonymous-function
// expression of the form "lambda <params>: <body>" by inspecting the header
// only. The body is never evaluated.
func lambdaArity(script string) (int, error) {
	rest := strings.TrimSpace(script)
	rest = strings.TrimPrefix(rest, "lambda")

	// Find the parameter list terminator at bracket depth zero. A colon
	// inside parentheses or brackets belongs to a default-value expression,
	// not the header.
	depth := 0
	end := -1
	for i, r := range rest {
		switch r {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ':':
			if depth == 0 {
				end = i
			}
		}
		if end >= 0 {
			break
		}
	}
	if end < 0 {
		return 0, errors.New(errors.ErrCodeInvalidLambda,
			"script %q has no parameter list terminator", script)
	}

	params := strings.TrimSpace(rest[:end])
	if params == "" {
		return 0, nil
	}

	// Count top-level parameters, skipping *args/**kwargs: star-parameters
	// are not positional arguments and the peer runtime reports an argument
	// count that excludes them.
	count := 0
	depth = 0
	start := 0
	for i, r := range params {
		switch r {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ',':
			if depth == 0 {
				if !strings.HasPrefix(strings.TrimSpace(params[start:i]), "*") {
					count++
				}
				start = i + 1
			}
		}
	}
	if !strings.HasPrefix(strings.TrimSpace(params[start:]), "*") {
		count++
	}
	return count, nil
}
