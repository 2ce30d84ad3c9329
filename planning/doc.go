// Package planning bundles everything a planning search needs: the
// language the task's atoms and agents are drawn from, the initial
// Kripke state, the actions available to apply, and a goal formula the
// resulting state must satisfy.
package planning
