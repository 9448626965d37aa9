// Package battle simulates a battle between two armies on the 27×21
// battlefield.
//
// What:
//
//   - Simulate: alternating player/computer turns until one army is wiped out.
//   - DefaultProgram: target selection through package target, approach
//     through package pathfinder, damage through Damage.
//   - Logger: a sink for every attack, e.g. a printed battle log.
//
// Errors:
//
//   - ErrNilArmy:         an army is nil.
//   - ErrStalemate:       a round passed without any attack.
//   - ErrRoundLimit:      MaxRounds elapsed.
//   - ErrOptionViolation: invalid option.
//   - context errors on cancellation.
//
// Programs mutate the units (position, health). Simulate is not safe to run
// concurrently on the same armies.
package battle
