package scenario

// config holds the shared knobs every scenario generator reads from.
type config struct {
	namePrefix string
}

func newConfig() config {
	return config{namePrefix: "agent"}
}

// Option customizes a scenario generator, mutating its config before
// construction begins.
type Option func(*config)

// WithAgentPrefix sets the naming prefix used when registering agents in
// the generated language.Registry (e.g. "agent" yields "agent0",
// "agent1", ...). Panics if prefix is empty: every generator needs a
// non-empty, human-legible agent name.
func WithAgentPrefix(prefix string) Option {
	if prefix == "" {
		panic("scenario: WithAgentPrefix(\"\")")
	}
	return func(c *config) { c.namePrefix = prefix }
}
