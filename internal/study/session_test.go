package study

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/mermory-server/internal/model"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func threeCards() []model.Card {
	return []model.Card{
		{ID: "A", Front: "a?", Back: "a"},
		{ID: "B", Front: "b?", Back: "b"},
		{ID: "C", Front: "c?", Back: "c"},
	}
}

func newSession(t *testing.T) (*Session, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}
	s, err := New(threeCards(), WithClock(clock.now))
	require.NoError(t, err)
	return s, clock
}

func TestNew_EmptyDeck(t *testing.T) {
	s, err := New(nil)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, model.ErrEmptyDeck)
}

func TestNew_InitialState(t *testing.T) {
	s, clock := newSession(t)

	assert.Equal(t, StateActive, s.State())
	assert.Equal(t, 0, s.CurrentIndex())
	assert.False(t, s.IsFlipped())
	assert.Equal(t, "A", s.CurrentCard().ID)
	assert.Equal(t, clock.t, s.StartedAt())
	_, ended := s.EndedAt()
	assert.False(t, ended)
	_, ok := s.Elapsed()
	assert.False(t, ok)
}

func TestNew_CopiesCards(t *testing.T) {
	cards := threeCards()
	s, err := New(cards)
	require.NoError(t, err)

	cards[0].Front = "changed"
	assert.Equal(t, "a?", s.CurrentCard().Front)
}

func TestSession_Flip(t *testing.T) {
	s, _ := newSession(t)

	require.NoError(t, s.Flip())
	assert.True(t, s.IsFlipped())
	assert.Equal(t, 0, s.CurrentIndex())

	require.NoError(t, s.Flip())
	assert.False(t, s.IsFlipped())
}

func TestSession_NextResetsFlip(t *testing.T) {
	s, _ := newSession(t)

	require.NoError(t, s.Flip())
	require.NoError(t, s.Next())

	assert.Equal(t, 1, s.CurrentIndex())
	assert.False(t, s.IsFlipped())
}

func TestSession_PreviousAtStartIsNoop(t *testing.T) {
	s, _ := newSession(t)

	require.NoError(t, s.Flip())
	require.NoError(t, s.Previous())

	assert.Equal(t, 0, s.CurrentIndex())
	assert.True(t, s.IsFlipped(), "flip only resets when the index changes")
}

func TestSession_Previous(t *testing.T) {
	s, _ := newSession(t)

	require.NoError(t, s.Next())
	require.NoError(t, s.Flip())
	require.NoError(t, s.Previous())

	assert.Equal(t, 0, s.CurrentIndex())
	assert.False(t, s.IsFlipped())
}

func TestSession_NextOnLastCardCompletes(t *testing.T) {
	s, clock := newSession(t)

	require.NoError(t, s.Next())
	require.NoError(t, s.Next())
	clock.advance(95 * time.Second)
	require.NoError(t, s.Next())

	assert.Equal(t, StateComplete, s.State())
	ended, ok := s.EndedAt()
	require.True(t, ok)
	assert.Equal(t, clock.t, ended)

	elapsed, ok := s.Elapsed()
	require.True(t, ok)
	assert.Equal(t, 95*time.Second, elapsed)
	assert.Equal(t, 2, s.CurrentIndex())
}

func TestSession_TransitionsAfterComplete(t *testing.T) {
	s, _ := newSession(t)
	for i := 0; i < 3; i++ {
		require.NoError(t, s.Next())
	}
	require.Equal(t, StateComplete, s.State())

	tests := []struct {
		name string
		fn   func() error
	}{
		{name: "flip", fn: s.Flip},
		{name: "next", fn: s.Next},
		{name: "previous", fn: s.Previous},
		{name: "mark known", fn: s.MarkKnown},
		{name: "mark review later", fn: s.MarkReviewLater},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.fn(), model.ErrSessionComplete)
			assert.Equal(t, StateComplete, s.State())
			assert.Equal(t, 2, s.CurrentIndex())
			assert.Empty(t, s.Known())
		})
	}
}

func TestSession_ClassificationsAreDisjoint(t *testing.T) {
	s, _ := newSession(t)

	require.NoError(t, s.MarkKnown())
	require.NoError(t, s.Previous())
	require.NoError(t, s.MarkReviewLater())

	assert.False(t, s.IsKnown("A"))
	assert.True(t, s.IsReviewLater("A"))
	assert.Equal(t, []string{"A"}, s.ReviewLater())
	assert.Empty(t, s.Known())

	require.NoError(t, s.Previous())
	require.NoError(t, s.MarkKnown())

	assert.True(t, s.IsKnown("A"))
	assert.False(t, s.IsReviewLater("A"))
}

func TestSession_Scenario(t *testing.T) {
	s, _ := newSession(t)

	require.NoError(t, s.MarkKnown())
	require.NoError(t, s.MarkReviewLater())
	require.NoError(t, s.Next())

	assert.Equal(t, StateComplete, s.State())
	assert.Equal(t, []string{"A"}, s.Known())
	assert.Equal(t, []string{"B"}, s.ReviewLater())
	assert.InDelta(t, 1.0/3.0, s.CompletionRate(), 1e-9)

	sum := s.Summary()
	assert.Equal(t, 1, sum.Known)
	assert.Equal(t, 1, sum.ReviewLater)
	assert.Equal(t, 1, sum.Skipped)
	assert.True(t, sum.HasElapsed)
}

func TestSession_Restart(t *testing.T) {
	s, clock := newSession(t)

	require.NoError(t, s.MarkKnown())
	require.NoError(t, s.MarkReviewLater())
	require.NoError(t, s.Flip())
	require.NoError(t, s.Next())
	require.Equal(t, StateComplete, s.State())

	clock.advance(time.Minute)
	s.Restart()

	assert.Equal(t, StateActive, s.State())
	assert.Equal(t, 0, s.CurrentIndex())
	assert.False(t, s.IsFlipped())
	assert.Empty(t, s.Known())
	assert.Empty(t, s.ReviewLater())
	assert.Equal(t, clock.t, s.StartedAt())
	_, ended := s.EndedAt()
	assert.False(t, ended)
}

func TestSession_RestartWhileActive(t *testing.T) {
	s, _ := newSession(t)

	require.NoError(t, s.Next())
	require.NoError(t, s.MarkKnown())
	s.Restart()

	assert.Equal(t, 0, s.CurrentIndex())
	assert.Empty(t, s.Known())
}

func TestSession_ProgressPercent(t *testing.T) {
	s, _ := newSession(t)

	assert.InDelta(t, 100.0/3.0, s.ProgressPercent(), 1e-9)
	require.NoError(t, s.Next())
	require.NoError(t, s.Next())
	assert.InDelta(t, 100.0, s.ProgressPercent(), 1e-9)
}

func TestSession_Snapshot(t *testing.T) {
	s, _ := newSession(t)
	require.NoError(t, s.MarkKnown())
	require.NoError(t, s.Flip())

	snap := s.Snapshot()

	assert.Equal(t, StateActive, snap.State)
	assert.Equal(t, 1, snap.CurrentIndex)
	assert.Equal(t, 3, snap.CardCount)
	assert.True(t, snap.IsFlipped)
	assert.Equal(t, "B", snap.Current.ID)
	assert.Equal(t, []string{"A"}, snap.Known)
	assert.Nil(t, snap.EndedAt)
	assert.False(t, snap.Summary.HasElapsed)
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{in: 0, want: "0m 0s"},
		{in: 59 * time.Second, want: "0m 59s"},
		{in: 61*time.Second + 900*time.Millisecond, want: "1m 1s"},
		{in: 12*time.Minute + 5*time.Second, want: "12m 5s"},
		{in: -time.Second, want: "0m 0s"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatElapsed(tt.in))
	}
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "active", StateActive.String())
	assert.Equal(t, "complete", StateComplete.String())
	assert.Equal(t, "state(7)", State(7).String())
}
