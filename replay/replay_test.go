package replay_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukrway/dorohy/core"
	"github.com/ukrway/dorohy/dijkstra"
	"github.com/ukrway/dorohy/replay"
)

func searchTriangle(t *testing.T) *dijkstra.Trace {
	t.Helper()

	g := core.NewGraph()
	for _, city := range []string{"Kyiv", "Lviv", "Odesa"} {
		require.NoError(t, g.AddVertex(city))
	}
	require.NoError(t, g.AddEdge("Kyiv", "Lviv", 540))
	require.NoError(t, g.AddEdge("Lviv", "Odesa", 700))
	require.NoError(t, g.AddEdge("Kyiv", "Odesa", 480))

	trace, _, err := dijkstra.Search(g, dijkstra.Source("Kyiv"), dijkstra.Target("Odesa"))
	require.NoError(t, err)

	return trace
}

func TestPlayer_ManualStepping(t *testing.T) {
	trace := searchTriangle(t)
	p := replay.NewPlayer(trace)

	seen := 0
	for {
		s, ok := p.Next()
		if !ok {
			break
		}
		if seen == 0 {
			assert.Equal(t, dijkstra.StepExpand, s.Kind)
			assert.Equal(t, "Kyiv", s.Current)
		}
		seen++
	}
	assert.Equal(t, trace.Len(), seen)
	assert.Equal(t, trace.Len(), p.Pos())

	// Exhausted player stays exhausted until Reset.
	_, ok := p.Next()
	assert.False(t, ok)

	p.Reset()
	s, ok := p.Next()
	require.True(t, ok)
	assert.Equal(t, "Kyiv", s.Current)
}

func TestPlayer_PlayDeliversAllSteps(t *testing.T) {
	trace := searchTriangle(t)
	p := replay.NewPlayer(trace, replay.WithInterval(time.Microsecond))

	var got []dijkstra.Step
	err := p.Play(context.Background(), func(s dijkstra.Step) error {
		got = append(got, s)
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, got, trace.Len())
}

func TestPlayer_PlayStopsOnCallbackError(t *testing.T) {
	trace := searchTriangle(t)
	p := replay.NewPlayer(trace, replay.WithInterval(time.Microsecond))

	sentinel := errors.New("stop here")
	calls := 0
	err := p.Play(context.Background(), func(dijkstra.Step) error {
		calls++
		if calls == 2 {
			return sentinel
		}
		return nil
	})
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 2, p.Pos())
}

func TestPlayer_PlayHonorsContext(t *testing.T) {
	trace := searchTriangle(t)
	// A long interval so cancellation fires while the limiter is waiting.
	p := replay.NewPlayer(trace, replay.WithInterval(time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- p.Play(ctx, func(dijkstra.Step) error { return nil })
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Play did not return after cancellation")
	}

	// The cursor survived: playback can resume manually.
	_, ok := p.Next()
	assert.True(t, ok)
}
