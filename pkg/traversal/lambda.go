package traversal

// DefaultLambdaLanguage is the language assumed for lambdas supplied in the
// bare-script form.
const DefaultLambdaLanguage = "gremlin-python"

// Lambda is a zero-argument closure producing a lambda script and the
// language it is written in. The closure is invoked once at encode time;
// the script body is never evaluated by this client.
type Lambda func() (script, language string)

// Script is the bare form of Lambda: only the script text, with the language
// defaulting to DefaultLambdaLanguage at encode time.
type Script func() string

// NewLambda wraps a fixed script/language pair as a Lambda.
func NewLambda(script, language string) Lambda {
	return func() (string, string) { return script, language }
}

// NewScript wraps fixed script text as a Script.
func NewScript(script string) Script {
	return func() string { return script }
}
