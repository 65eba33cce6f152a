package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryQueue_FIFO(t *testing.T) {
	q := NewInMemoryQueue[int]()
	for i := 0; i < 100; i++ {
		require.NoError(t, q.Enqueue(i))
	}
	assert.Equal(t, 100, q.Size())

	for i := 0; i < 100; i++ {
		got, err := q.Dequeue(context.Background())
		require.NoError(t, err)
		assert.Equal(t, i, got)
	}

	_, ok, err := q.TryDequeue()
	assert.False(t, ok)
	assert.NoError(t, err)
}

func TestInMemoryQueue_DequeueWaits(t *testing.T) {
	q := NewInMemoryQueue[string]()

	done := make(chan string)
	go func() {
		got, err := q.Dequeue(context.Background())
		assert.NoError(t, err)
		done <- got
	}()

	select {
	case <-done:
		t.Fatal("dequeue returned before anything was queued")
	case <-time.After(20 * time.Millisecond):
	}

	require.NoError(t, q.Enqueue("hello"))
	select {
	case got := <-done:
		assert.Equal(t, "hello", got)
	case <-time.After(time.Second):
		t.Fatal("dequeue did not wake up")
	}
}

func TestInMemoryQueue_DequeueContext(t *testing.T) {
	q := NewInMemoryQueue[int]()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := q.Dequeue(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestInMemoryQueue_Close(t *testing.T) {
	q := NewInMemoryQueue[int]()
	require.NoError(t, q.Enqueue(1))
	q.Close()
	q.Close()

	assert.ErrorIs(t, q.Enqueue(2), ErrQueueClosed)

	got, err := q.Dequeue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, got, "buffered items survive close")

	_, err = q.Dequeue(context.Background())
	assert.ErrorIs(t, err, ErrQueueClosed)

	_, err = q.ReadMessages(0)
	assert.ErrorIs(t, err, ErrQueueClosed)
	assert.True(t, q.Closed())
}

func TestInMemoryQueue_CloseWakesWaiters(t *testing.T) {
	q := NewInMemoryQueue[int]()

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := q.Dequeue(context.Background())
			assert.ErrorIs(t, err, ErrQueueClosed)
		}()
	}
	time.Sleep(10 * time.Millisecond)
	q.Close()
	wg.Wait()
}

func TestInMemoryQueue_ReadMessages(t *testing.T) {
	tests := []struct {
		name   string
		queued int
		max    int
		want   []int
		left   int
	}{
		{name: "empty", queued: 0, max: 5, want: nil, left: 0},
		{name: "all", queued: 3, max: 0, want: []int{0, 1, 2}, left: 0},
		{name: "bounded", queued: 5, max: 2, want: []int{0, 1}, left: 3},
		{name: "max above size", queued: 2, max: 10, want: []int{0, 1}, left: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewInMemoryQueue[int]()
			for i := 0; i < tt.queued; i++ {
				require.NoError(t, q.Enqueue(i))
			}
			got, err := q.ReadMessages(tt.max)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.left, q.Size())
		})
	}
}

func TestInMemoryQueue_Overflow(t *testing.T) {
	even := func(i int) bool { return i%2 == 0 }
	tests := []struct {
		name      string
		opts      Options[int]
		enqueue   []int
		wantErr   error
		want      []int
		wantDrops int
	}{
		{
			name:    "reject",
			opts:    Options[int]{Capacity: 2, Overflow: OverflowReject},
			enqueue: []int{1, 2, 3},
			wantErr: ErrQueueFull,
			want:    []int{1, 2},
		},
		{
			name:      "drop oldest",
			opts:      Options[int]{Capacity: 2, Overflow: OverflowDropOldest},
			enqueue:   []int{1, 2, 3},
			want:      []int{2, 3},
			wantDrops: 1,
		},
		{
			name:      "drop oldest evictable only",
			opts:      Options[int]{Capacity: 3, Overflow: OverflowDropOldest, Evictable: even},
			enqueue:   []int{1, 2, 3, 4},
			want:      []int{1, 3, 4},
			wantDrops: 1,
		},
		{
			name:    "nothing evictable",
			opts:    Options[int]{Capacity: 2, Overflow: OverflowDropOldest, Evictable: even},
			enqueue: []int{1, 3, 5},
			wantErr: ErrQueueFull,
			want:    []int{1, 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewInMemoryQueueWithOptions(tt.opts)
			var err error
			for _, i := range tt.enqueue {
				if e := q.Enqueue(i); e != nil {
					err = e
				}
			}
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			got, err := q.ReadMessages(0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantDrops, q.Dropped())
		})
	}
}

func TestInMemoryQueue_ForceEnqueueIgnoresCapacity(t *testing.T) {
	q := NewInMemoryQueueWithOptions(Options[int]{Capacity: 1})
	require.NoError(t, q.Enqueue(1))
	assert.ErrorIs(t, q.Enqueue(2), ErrQueueFull)

	require.NoError(t, q.ForceEnqueue(3))
	assert.Equal(t, 2, q.Size())
	assert.Equal(t, 0, q.Dropped())

	q.Close()
	assert.ErrorIs(t, q.ForceEnqueue(4), ErrQueueClosed)

	got, err := q.ReadMessages(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, got)
}
