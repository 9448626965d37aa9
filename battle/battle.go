package battle

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/battlegrid/unit"
)

// Simulate fights player against computer until one army has no living unit.
//
// Each round the player's army moves first, then the computer's. Within a
// turn the living attackers act in descending BaseAttack order, each running
// its Program once; units without a Program get a DefaultProgram. Units
// killed earlier in the turn no longer act, and the turn ends as soon as the
// defending army is wiped out.
//
// Simulate stops with ErrStalemate when a whole round produces no attack,
// with ErrRoundLimit after MaxRounds, and with ctx.Err() on cancellation. In
// every case the Result describes the battle so far.
func Simulate(ctx context.Context, player, computer *unit.Army, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	if player == nil || computer == nil {
		return Result{}, ErrNilArmy
	}

	s := &sim{
		ctx:   ctx,
		opts:  o,
		field: NewField(player, computer, o.Finder),
	}
	s.bindPrograms()

	return s.run()
}

// sim holds the mutable state of one battle.
type sim struct {
	ctx   context.Context
	opts  Options
	field *Field
	res   Result
}

// bindPrograms gives every unit without a Program the default behaviour.
func (s *sim) bindPrograms() {
	for _, army := range []*unit.Army{s.field.Player, s.field.Computer} {
		for _, u := range army.Units {
			if u.Program == nil {
				u.Program = NewDefaultProgram(u, s.field)
			}
		}
	}
}

// run alternates turns until a winner, a stalemate, the round limit or
// cancellation.
func (s *sim) run() (Result, error) {
	if w := s.winner(); w != None {
		s.res.Winner = w
		return s.res, nil
	}
	for {
		if s.opts.MaxRounds > 0 && s.res.Rounds >= s.opts.MaxRounds {
			return s.res, ErrRoundLimit
		}
		s.res.Rounds++

		playerHits, err := s.turn(s.field.Player, s.field.Computer)
		if err != nil {
			return s.res, err
		}
		if s.field.Computer.Defeated() {
			s.res.Winner = Player
			return s.res, nil
		}

		computerHits, err := s.turn(s.field.Computer, s.field.Player)
		if err != nil {
			return s.res, err
		}
		if s.field.Player.Defeated() {
			s.res.Winner = Computer
			return s.res, nil
		}

		if playerHits+computerHits == 0 {
			return s.res, ErrStalemate
		}
	}
}

// turn lets every living attacker act once and returns the number of attacks.
func (s *sim) turn(attackers, defenders *unit.Army) (int, error) {
	hits := 0
	for _, a := range order(attackers) {
		if err := s.ctx.Err(); err != nil {
			return hits, err
		}
		if !a.IsAlive() {
			continue
		}
		if defenders.Defeated() {
			break
		}
		victim, err := a.Program.Attack(s.ctx)
		if err != nil {
			return hits, fmt.Errorf("battle: %s attack failed: %w", a.Name, err)
		}
		if victim == nil {
			continue
		}
		hits++
		s.res.Attacks++
		s.opts.Logger.Log(a, victim)
	}
	return hits, nil
}

// winner reports the side left standing, if any.
func (s *sim) winner() Side {
	switch {
	case s.field.Computer.Defeated():
		return Player
	case s.field.Player.Defeated():
		return Computer
	default:
		return None
	}
}

// order returns the living units of army, strongest attack first.
func order(army *unit.Army) []*unit.Unit {
	alive := army.Alive()
	sort.SliceStable(alive, func(i, j int) bool { return alive[i].BaseAttack > alive[j].BaseAttack })
	return alive
}
