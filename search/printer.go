package search

import (
	"os"

	"github.com/rs/zerolog"
)

// Printer receives structured progress events from Search. Implementations
// must be safe to call from a single goroutine only — Search never calls a
// Printer concurrently.
type Printer interface {
	// IterationStart fires once per bound, before that bound's bounded
	// search begins.
	IterationStart(bound int)
	// NodeExpandStart fires when a frontier node is popped for expansion.
	NodeExpandStart(nodeID uint64, graphDepth, bound int)
	// NodeExpandEnd fires once a node's actions have all been attempted.
	NodeExpandEnd(nodeID uint64, childrenPushed int)
	// ActionAttempt fires for every action tried against a node, whether
	// or not it was applicable.
	ActionAttempt(nodeID uint64, actionName string, applicable bool)
	// GoalFound fires when an expanded child's state satisfies the goal.
	GoalFound(nodeID uint64, planLength int)
	// BoundEscalated fires when a bounded search exhausts its frontier
	// without reaching the goal and the bound is about to increase.
	BoundEscalated(from, to int)
}

// NopPrinter discards every event. Use it when search progress should
// not be logged at all, e.g. in unit tests.
type NopPrinter struct{}

func (NopPrinter) IterationStart(int)                {}
func (NopPrinter) NodeExpandStart(uint64, int, int)  {}
func (NopPrinter) NodeExpandEnd(uint64, int)         {}
func (NopPrinter) ActionAttempt(uint64, string, bool) {}
func (NopPrinter) GoalFound(uint64, int)             {}
func (NopPrinter) BoundEscalated(int, int)           {}

// ZerologPrinter logs every event through a zerolog.Logger at debug
// level, except GoalFound and BoundEscalated which log at info level.
type ZerologPrinter struct {
	Log zerolog.Logger
}

// NewZerologPrinter returns a ZerologPrinter writing to stderr in
// console-friendly form, the same default the rest of the planner's
// ambient logging uses.
func NewZerologPrinter() ZerologPrinter {
	return ZerologPrinter{Log: zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()}
}

func (p ZerologPrinter) IterationStart(bound int) {
	p.Log.Debug().Int("bound", bound).Msg("search: iteration start")
}

func (p ZerologPrinter) NodeExpandStart(nodeID uint64, graphDepth, bound int) {
	p.Log.Debug().Uint64("node", nodeID).Int("depth", graphDepth).Int("bound", bound).Msg("search: expand node")
}

func (p ZerologPrinter) NodeExpandEnd(nodeID uint64, childrenPushed int) {
	p.Log.Debug().Uint64("node", nodeID).Int("children", childrenPushed).Msg("search: node expanded")
}

func (p ZerologPrinter) ActionAttempt(nodeID uint64, actionName string, applicable bool) {
	p.Log.Debug().Uint64("node", nodeID).Str("action", actionName).Bool("applicable", applicable).Msg("search: action attempt")
}

func (p ZerologPrinter) GoalFound(nodeID uint64, planLength int) {
	p.Log.Info().Uint64("node", nodeID).Int("plan_length", planLength).Msg("search: goal found")
}

func (p ZerologPrinter) BoundEscalated(from, to int) {
	p.Log.Info().Int("from", from).Int("to", to).Msg("search: bound escalated")
}
