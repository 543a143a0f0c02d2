// Package replay paces the consumption of a materialized dijkstra.Trace.
//
// The search engine performs no timing of its own: a trace is just data.
// Player adds the two consumption modes the visualizer needs on top of it —
// manual stepping ("next" button) and timed playback (animation) — without
// ever touching the algorithm. Aborting a playback is cancelling its
// context; the trace holds no resources, so dropping a half-consumed player
// is safe and immediate.
//
// A Player is a single-consumer cursor and is not safe for concurrent use.
package replay

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/ukrway/dorohy/dijkstra"
)

// DefaultInterval is the playback delay between steps when none is
// configured; matches the visualizer's default animation speed.
const DefaultInterval = 500 * time.Millisecond

// Player replays a trace forward. The same trace can back any number of
// players, and one player can be Reset and replayed without recomputation.
type Player struct {
	trace    *dijkstra.Trace
	interval time.Duration
	pos      int
}

// Option configures a Player.
type Option func(*Player)

// WithInterval sets the delay between steps during Play. Values ≤ 0 fall
// back to DefaultInterval.
func WithInterval(d time.Duration) Option {
	return func(p *Player) {
		if d > 0 {
			p.interval = d
		}
	}
}

// NewPlayer creates a player positioned before the first step of trace.
func NewPlayer(trace *dijkstra.Trace, opts ...Option) *Player {
	p := &Player{trace: trace, interval: DefaultInterval}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Next returns the next step and advances the cursor. The second return is
// false once the trace is exhausted.
func (p *Player) Next() (dijkstra.Step, bool) {
	if p.pos >= p.trace.Len() {
		return dijkstra.Step{}, false
	}

	s := p.trace.At(p.pos)
	p.pos++

	return s, true
}

// Pos returns the number of steps consumed so far.
func (p *Player) Pos() int { return p.pos }

// Reset rewinds the cursor to the start of the trace.
func (p *Player) Reset() { p.pos = 0 }

// Play feeds the remaining steps to fn at the configured interval, one
// immediately and then one per tick. It returns when the trace is exhausted,
// when fn returns an error (passed through), or when ctx is cancelled
// (ctx.Err()). The cursor keeps its position on early exit, so a cancelled
// playback can be resumed with another Play or stepped manually with Next.
func (p *Player) Play(ctx context.Context, fn func(dijkstra.Step) error) error {
	limiter := rate.NewLimiter(rate.Every(p.interval), 1)

	for {
		if err := limiter.Wait(ctx); err != nil {
			return err
		}

		s, ok := p.Next()
		if !ok {
			return nil
		}
		if err := fn(s); err != nil {
			return err
		}
	}
}
