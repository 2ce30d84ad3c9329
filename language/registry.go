package language

import "fmt"

// Atom identifies a propositional variable. Atoms are dense, zero-based ids
// assigned in registration order.
type Atom int

// Agent identifies a modality index — the identity of a knower/believer.
// Agents are dense, zero-based ids assigned in registration order.
type Agent int

// Registry holds the append-only name tables for one planning task's atoms
// and agents. The zero value is not usable (AddAtom and AddAgent panic on
// it); construct one with New.
type Registry struct {
	atomNames  []string
	atomIDs    map[string]Atom
	agentNames []string
	agentIDs   map[string]Agent
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{
		atomIDs:  make(map[string]Atom),
		agentIDs: make(map[string]Agent),
	}
}

// AddAtom registers name as a new atom and returns its id. Registering the
// same name twice returns the existing id rather than creating a duplicate.
func (r *Registry) AddAtom(name string) Atom {
	if id, ok := r.atomIDs[name]; ok {
		return id
	}
	id := Atom(len(r.atomNames))
	r.atomNames = append(r.atomNames, name)
	r.atomIDs[name] = id
	return id
}

// AddAgent registers name as a new agent and returns its id. Registering
// the same name twice returns the existing id rather than creating a
// duplicate.
func (r *Registry) AddAgent(name string) Agent {
	if id, ok := r.agentIDs[name]; ok {
		return id
	}
	id := Agent(len(r.agentNames))
	r.agentNames = append(r.agentNames, name)
	r.agentIDs[name] = id
	return id
}

// AtomID returns the id registered for name, or ErrUnknownName if absent.
func (r *Registry) AtomID(name string) (Atom, error) {
	id, ok := r.atomIDs[name]
	if !ok {
		return 0, fmt.Errorf("language: atom %q: %w", name, ErrUnknownName)
	}
	return id, nil
}

// AgentID returns the id registered for name, or ErrUnknownName if absent.
func (r *Registry) AgentID(name string) (Agent, error) {
	id, ok := r.agentIDs[name]
	if !ok {
		return 0, fmt.Errorf("language: agent %q: %w", name, ErrUnknownName)
	}
	return id, nil
}

// AtomName returns the name registered for id. Panics if id was never
// assigned by this Registry — an out-of-range id is a builder bug, not a
// recoverable condition.
func (r *Registry) AtomName(id Atom) string {
	return r.atomNames[id]
}

// AgentName returns the name registered for id. Panics if id was never
// assigned by this Registry.
func (r *Registry) AgentName(id Agent) string {
	return r.agentNames[id]
}

// NumAtoms returns the number of registered atoms.
func (r *Registry) NumAtoms() int { return len(r.atomNames) }

// NumAgents returns the number of registered agents.
func (r *Registry) NumAgents() int { return len(r.agentNames) }

// Agents returns every registered agent id, in registration order.
func (r *Registry) Agents() []Agent {
	out := make([]Agent, len(r.agentNames))
	for i := range out {
		out[i] = Agent(i)
	}
	return out
}
