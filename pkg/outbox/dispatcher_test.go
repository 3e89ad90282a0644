package outbox

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type text struct{ Body string }

func TestDispatcherDelivers(t *testing.T) {
	got := make(chan Envelope[text], 1)
	d := New("test", func(_ context.Context, env Envelope[text]) error {
		got <- env
		return nil
	}, Config[text]{})
	d.Start(context.Background())
	defer d.Stop()

	require.NoError(t, d.Submit("a", text{Body: "hello"}))
	select {
	case env := <-got:
		assert.Equal(t, "a", env.ID)
		assert.Equal(t, "hello", env.Message.Body)
		assert.Zero(t, env.Attempt)
		assert.False(t, env.QueuedAt.IsZero())
	case <-time.After(time.Second):
		t.Fatal("message not delivered")
	}
}

func TestDispatcherGivesUpAfterRetries(t *testing.T) {
	var sends int32
	abandoned := make(chan Envelope[text], 1)
	d := New("test", func(context.Context, Envelope[text]) error {
		atomic.AddInt32(&sends, 1)
		return errors.New("gateway down")
	}, Config[text]{
		MaxRetries: 2,
		Backoff:    time.Millisecond,
		GiveUp: func(_ context.Context, env Envelope[text], err error) {
			assert.EqualError(t, err, "gateway down")
			abandoned <- env
		},
	})
	d.Start(context.Background())
	defer d.Stop()

	require.NoError(t, d.Submit("b", text{}))
	select {
	case env := <-abandoned:
		assert.Equal(t, "b", env.ID)
		assert.Equal(t, 3, env.Attempt)
		assert.Equal(t, int32(3), atomic.LoadInt32(&sends))
	case <-time.After(2 * time.Second):
		t.Fatal("delivery never abandoned")
	}
}

func TestDispatcherRejectsWhenNotRunning(t *testing.T) {
	d := New("idle", func(context.Context, Envelope[text]) error { return nil }, Config[text]{})
	assert.ErrorIs(t, d.Submit("c", text{}), ErrNotRunning)

	d.Start(context.Background())
	d.Stop()
	assert.ErrorIs(t, d.Submit("c", text{}), ErrNotRunning)
}

func TestDispatcherBacklogFull(t *testing.T) {
	release := make(chan struct{})
	d := New("slow", func(context.Context, Envelope[text]) error {
		<-release
		return nil
	}, Config[text]{Workers: 1, Backlog: 1})
	d.Start(context.Background())
	defer func() {
		close(release)
		d.Stop()
	}()

	require.NoError(t, d.Submit("1", text{}))
	require.Eventually(t, func() bool { return len(d.backlog) == 0 }, time.Second, time.Millisecond)
	require.NoError(t, d.Submit("2", text{}))
	assert.ErrorIs(t, d.Submit("3", text{}), ErrBacklogFull)
}
