package visits

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// database/sql keeps a connection opener goroutine per open DB.
		goleak.IgnoreTopFunction("database/sql.(*DB).connectionOpener"),
	)
}

func openTest(t *testing.T, clock clockwork.Clock) *Store {
	t.Helper()
	s, err := Open("", WithClock(clock), WithSalt("test-salt"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestHashIsStableAndOpaque(t *testing.T) {
	s := openTest(t, clockwork.NewFakeClock())
	h := s.Hash("203.0.113.7")
	assert.Len(t, h, 16)
	assert.Equal(t, h, s.Hash("203.0.113.7"))
	assert.NotEqual(t, h, s.Hash("203.0.113.8"))
	assert.NotContains(t, h, "203")

	other, err := Open("", WithSalt("other-salt"))
	require.NoError(t, err)
	defer other.Close()
	assert.NotEqual(t, h, other.Hash("203.0.113.7"))
}

func TestRandomSaltPerStore(t *testing.T) {
	a, err := Open("")
	require.NoError(t, err)
	defer a.Close()
	b, err := Open("")
	require.NoError(t, err)
	defer b.Close()
	assert.NotEqual(t, a.Hash("ip"), b.Hash("ip"))
}

func TestStats(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))
	s := openTest(t, clock)
	ctx := context.Background()

	require.NoError(t, s.RecordVisit(ctx, "10.0.0.1", "ua-1", "/"))
	clock.Advance(3 * 24 * time.Hour)
	require.NoError(t, s.RecordVisit(ctx, "10.0.0.2", "ua-2", "/"))
	require.NoError(t, s.RecordVisit(ctx, "10.0.0.1", "ua-1", "/"))

	require.NoError(t, s.RecordReveal(ctx, "sess-a", "about"))
	require.NoError(t, s.RecordReveal(ctx, "sess-b", "about"))
	require.NoError(t, s.RecordReveal(ctx, "sess-a", "about"))
	require.NoError(t, s.RecordReveal(ctx, "sess-a", "contact"))

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.TotalVisits)
	assert.EqualValues(t, 2, stats.UniqueVisitors)
	assert.EqualValues(t, 2, stats.VisitsToday)
	assert.EqualValues(t, 3, stats.VisitsThisWeek)
	assert.Equal(t, []SectionReveals{
		{Section: "about", Sessions: 2},
		{Section: "contact", Sessions: 1},
	}, stats.Reveals)

	require.Len(t, stats.RecentVisits, 3)
	latest := stats.RecentVisits[0]
	assert.Equal(t, s.Hash("10.0.0.1"), latest.HashedIP)
	assert.Equal(t, clock.Now().UTC(), latest.Timestamp)
	assert.Equal(t, "/", latest.Path)
}

func TestPurge(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := openTest(t, clock)
	ctx := context.Background()

	require.NoError(t, s.RecordVisit(ctx, "a", "", "/"))
	require.NoError(t, s.RecordReveal(ctx, "sess", "skills"))
	clock.Advance(2 * time.Hour)
	require.NoError(t, s.RecordVisit(ctx, "b", "", "/"))

	n, err := s.Purge(ctx, time.Hour)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalVisits)
	assert.Empty(t, stats.Reveals)
}

func TestRunRetention(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := openTest(t, clock)
	ctx := context.Background()
	require.NoError(t, s.RecordVisit(ctx, "a", "", "/"))

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		s.RunRetention(runCtx, time.Minute, time.Hour)
		close(done)
	}()

	waitCtx, waitCancel := context.WithTimeout(ctx, time.Second)
	defer waitCancel()
	require.NoError(t, clock.BlockUntilContext(waitCtx, 1))
	clock.Advance(2 * time.Hour)

	require.Eventually(t, func() bool {
		stats, err := s.Stats(ctx)
		return err == nil && stats.TotalVisits == 0
	}, time.Second, 5*time.Millisecond)

	cancel()
	<-done
}
