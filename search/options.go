package search

import "github.com/katalvlaran/epiplan/bisim"

// config holds Search's tunables, assembled from functional Options the
// same way core.GraphOption configures a core.Graph.
type config struct {
	printer  Printer
	sigStore *bisim.SignatureStore
	maxBound int
}

func defaultConfig() config {
	return config{
		printer:  NopPrinter{},
		sigStore: bisim.NewSignatureStore(),
		maxBound: 64,
	}
}

// Option configures a Search call.
type Option func(*config)

// WithPrinter sets the Printer Search reports progress events to.
// Defaults to NopPrinter.
func WithPrinter(p Printer) Option {
	return func(c *config) { c.printer = p }
}

// WithSignatureStore lets callers supply a SignatureStore shared across
// multiple Search calls, so canonical state ids remain comparable between
// them. Defaults to a fresh, call-local store.
func WithSignatureStore(st *bisim.SignatureStore) Option {
	return func(c *config) { c.sigStore = st }
}

// WithMaxBound caps the value of the bisimulation depth bound: once
// escalation would take the bound past n, Search gives up and returns
// ErrNoPlanFound. It is a safety limit against runaway exploration on an
// unsatisfiable goal. Defaults to 64.
func WithMaxBound(n int) Option {
	return func(c *config) { c.maxBound = n }
}
