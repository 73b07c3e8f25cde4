package graphson

import (
	"testing"

	"github.com/tinkerkit/graphson/pkg/errors"
	"github.com/tinkerkit/graphson/pkg/traversal"
)

func TestEncodeLambda(t *testing.T) {
	m := NewMapper()

	tests := []struct {
		name     string
		in       any
		script   string
		language string
		args     int
	}{
		{
			name:     "BareScriptGetsDefaults",
			in:       traversal.NewScript("x: x + 1"),
			script:   "lambda x: x + 1",
			language: "gremlin-python",
			args:     1,
		},
		{
			name:     "IntroducerKept",
			in:       traversal.NewLambda("lambda x, y: x + y", "gremlin-python"),
			script:   "lambda x, y: x + y",
			language: "gremlin-python",
			args:     2,
		},
		{
			name:     "ZeroParameters",
			in:       traversal.NewLambda(": 42", "gremlin-jython"),
			script:   "lambda : 42",
			language: "gremlin-jython",
			args:     0,
		},
		{
			name:     "DefaultValueWithBrackets",
			in:       traversal.NewLambda("x, y=(1, 2): x", "gremlin-python"),
			script:   "lambda x, y=(1, 2): x",
			language: "gremlin-python",
			args:     2,
		},
		{
			name:     "ForeignLanguageNotIntrospected",
			in:       traversal.NewLambda("it.get()", "gremlin-groovy"),
			script:   "it.get()",
			language: "gremlin-groovy",
			args:     -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Encode(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			env := got.(map[string]any)
			if env["@type"] != "g:Lambda" {
				t.Fatalf("@type = %v", env["@type"])
			}
			payload := env["@value"].(map[string]any)
			if payload["script"] != tt.script {
				t.Errorf("script = %q, want %q", payload["script"], tt.script)
			}
			if payload["language"] != tt.language {
				t.Errorf("language = %q, want %q", payload["language"], tt.language)
			}
			if payload["arguments"] != tt.args {
				t.Errorf("arguments = %v, want %d", payload["arguments"], tt.args)
			}
		})
	}
}

func TestEncodeLambdaMalformed(t *testing.T) {
	m := NewMapper()

	// No parameter list terminator: hard error, no defaulted arity.
	_, err := m.Encode(traversal.NewLambda("x", "gremlin-python"))
	if !errors.Is(err, errors.ErrCodeInvalidLambda) {
		t.Errorf("err = %v, want INVALID_LAMBDA", err)
	}
}

func TestLambdaArity(t *testing.T) {
	tests := []struct {
		script string
		want   int
	}{
		{"lambda: 1", 0},
		{"lambda x: x", 1},
		{"lambda x, y: x", 2},
		{"lambda x, y, z: x", 3},
		{"lambda pair=(1, 2): pair", 1},
		{"lambda d={'a': 1}: d", 1},
		{"lambda *args: 1", 0},
		{"lambda **kwargs: 1", 0},
		{"lambda x, *args: x", 1},
		{"lambda x, y=2, *args, **kwargs: x", 2},
	}

	for _, tt := range tests {
		t.Run(tt.script, func(t *testing.T) {
			got, err := lambdaArity(tt.script)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("lambdaArity(%q) = %d, want %d", tt.script, got, tt.want)
			}
		})
	}
}
