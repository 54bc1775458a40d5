package store

import (
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects the values a subscriber receives.
type recorder[T any] struct {
	got []T
}

func (r *recorder[T]) fn(v T) { r.got = append(r.got, v) }

func TestGetReturnsInitialValue(t *testing.T) {
	w := New(7)
	assert.Equal(t, 7, w.Get())
}

func TestSetThenGet(t *testing.T) {
	w := New("a")
	w.Set("b")
	assert.Equal(t, "b", w.Get())
}

func TestSubscribeReceivesCurrentValueImmediately(t *testing.T) {
	w := New(1)
	var r recorder[int]

	unsub := w.Subscribe(r.fn)
	defer unsub()

	assert.Equal(t, []int{1}, r.got)
}

func TestSubscribeReceivesWritesInOrder(t *testing.T) {
	w := New(0)
	var r recorder[int]
	unsub := w.Subscribe(r.fn)
	defer unsub()

	w.Set(1)
	w.Set(2)
	w.Update(func(v int) int { return v + 10 })

	assert.Equal(t, []int{0, 1, 2, 12}, r.got)
}

func TestEqualWritesStillNotify(t *testing.T) {
	w := New(5)
	var r recorder[int]
	unsub := w.Subscribe(r.fn)
	defer unsub()

	w.Set(5)
	w.Set(5)

	assert.Equal(t, []int{5, 5, 5}, r.got)
}

func TestSubscribersNotifiedInRegistrationOrder(t *testing.T) {
	w := New(0)
	var order []string

	for _, name := range []string{"first", "second", "third"} {
		name := name
		unsub := w.Subscribe(func(int) { order = append(order, name) })
		defer unsub()
	}
	order = nil

	w.Set(1)

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestUnsubscribeStopsOnlyThatHandle(t *testing.T) {
	w := New(0)
	var a, b recorder[int]

	unsubA := w.Subscribe(a.fn)
	unsubB := w.Subscribe(b.fn)
	defer unsubB()

	w.Set(1)
	unsubA()
	w.Set(2)

	assert.Equal(t, []int{0, 1}, a.got)
	assert.Equal(t, []int{0, 1, 2}, b.got)
	assert.Equal(t, 1, w.Subscribers())
}

func TestUnsubscribeTwiceIsNoop(t *testing.T) {
	w := New(0)
	var a, b recorder[int]

	unsubA := w.Subscribe(a.fn)
	unsubB := w.Subscribe(b.fn)
	defer unsubB()

	unsubA()
	unsubA()

	assert.Equal(t, 1, w.Subscribers())
	w.Set(3)
	assert.Equal(t, []int{0, 3}, b.got)
}

func TestUnsubscribeDuringNotification(t *testing.T) {
	w := New(0)
	var b recorder[int]
	var unsubB Unsubscriber

	unsubA := w.Subscribe(func(v int) {
		if v == 1 {
			unsubB()
		}
	})
	defer unsubA()
	unsubB = w.Subscribe(b.fn)

	w.Set(1)
	w.Set(2)

	assert.Equal(t, []int{0}, b.got)
}

func TestWriteFromSubscriberIsDeliveredAfterRound(t *testing.T) {
	w := New(0)
	var seen [][2]int

	unsubA := w.Subscribe(func(v int) {
		seen = append(seen, [2]int{0, v})
		if v == 1 {
			w.Set(2)
		}
	})
	defer unsubA()
	unsubB := w.Subscribe(func(v int) {
		seen = append(seen, [2]int{1, v})
	})
	defer unsubB()
	seen = nil

	w.Set(1)

	require.Equal(t, 2, w.Get())
	assert.Equal(t, [][2]int{{0, 1}, {1, 1}, {0, 2}, {1, 2}}, seen)
}

func TestSubscribeFromSubscriber(t *testing.T) {
	w := New(0)
	var late recorder[int]
	var unsubLate Unsubscriber

	unsub := w.Subscribe(func(v int) {
		if v == 1 && unsubLate == nil {
			unsubLate = w.Subscribe(late.fn)
		}
	})
	defer unsub()

	w.Set(1)
	w.Set(2)
	unsubLate()

	assert.Equal(t, []int{1, 2}, late.got)
}

func TestPanickingSubscriberDoesNotWedgeStore(t *testing.T) {
	w := New(0)
	unsub := w.Subscribe(func(v int) {
		if v == 1 {
			panic("boom")
		}
	})

	assert.Panics(t, func() { w.Set(1) })
	unsub()

	var r recorder[int]
	unsubR := w.Subscribe(r.fn)
	defer unsubR()
	w.Set(2)

	assert.Equal(t, []int{1, 2}, r.got)
}

func TestConcurrentWritersDeliverEveryWrite(t *testing.T) {
	w := New(0)
	var mu sync.Mutex
	count := 0
	unsub := w.Subscribe(func(int) {
		mu.Lock()
		count++
		mu.Unlock()
	})
	defer unsub()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				w.Update(func(v int) int { return v + 1 })
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 400, w.Get())
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 401, count)
}

func TestSubscribeDuringDeliveryIsOrderedWithWrites(t *testing.T) {
	w := New(0)
	entered := make(chan struct{})
	release := make(chan struct{})

	unsubA := w.Subscribe(func(v int) {
		if v == 1 {
			close(entered)
			<-release
		}
	})
	defer unsubA()

	done := make(chan struct{})
	go func() {
		w.Set(1)
		close(done)
	}()
	<-entered

	var mu sync.Mutex
	var got []int
	unsubB := w.Subscribe(func(v int) {
		mu.Lock()
		got = append(got, v)
		mu.Unlock()
	})
	defer unsubB()
	w.Set(2)

	mu.Lock()
	assert.Empty(t, got, "the delivering goroutine makes the first call")
	mu.Unlock()

	close(release)
	<-done

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{1, 2}, got)
}

func TestConcurrentSubscribeEndsOnCurrentValue(t *testing.T) {
	for i := 0; i < 200; i++ {
		w := New(0)

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			for w.Subscribers() == 0 {
				runtime.Gosched()
			}
			w.Set(1)
		}()

		var mu sync.Mutex
		var got []int
		unsub := w.Subscribe(func(v int) {
			mu.Lock()
			got = append(got, v)
			mu.Unlock()
		})
		wg.Wait()
		unsub()

		mu.Lock()
		require.NotEmpty(t, got)
		assert.Equal(t, w.Get(), got[len(got)-1], "iteration %d: %v", i, got)
		assert.IsNonDecreasing(t, got)
		mu.Unlock()
	}
}

func TestReadableInterface(t *testing.T) {
	var r Readable[string] = New("x")
	var got []string
	unsub := r.Subscribe(func(v string) { got = append(got, v) })
	defer unsub()

	assert.Equal(t, "x", r.Get())
	assert.Equal(t, []string{"x"}, got)
}
