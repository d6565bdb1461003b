package seqs

import "sync"

// CoIterator runs an Iterator on its own goroutine and relays the items
// over a channel, for consumers that need to select over a traversal
// alongside timers, cancellation, or other channels.
type CoIterator[T any] struct {
	// Items carries the iterator's items in order. It is closed once
	// the iterator is exhausted or Stop has taken effect.
	Items <-chan T

	stop     chan<- struct{}
	stopOnce sync.Once
}

// Stop abandons the iteration. After Stop returns, at most one more
// item may be delivered before Items is closed. Stop is idempotent and
// may be called from any goroutine. Either drain Items or call Stop,
// otherwise the relaying goroutine is kept alive forever.
func (c *CoIterator[T]) Stop() {
	c.stopOnce.Do(func() {
		close(c.stop)
	})
}

// CoIterate starts relaying it on a new goroutine. The iterator must
// not be touched directly afterwards; the goroutine owns it until
// Items is closed.
func CoIterate[T any](it Iterator[T]) *CoIterator[T] {
	items := make(chan T)
	stop := make(chan struct{})

	go func() {
		defer close(items)
		for it.Next() {
			select {
			case items <- it.Item():
			case <-stop:
				return
			}
		}
	}()

	return &CoIterator[T]{
		Items: items,
		stop:  stop,
	}
}
