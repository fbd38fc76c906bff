package navbar

import "sync"

// ScrollHandler receives the current vertical scroll offset.
type ScrollHandler func(y float64)

// ScrollSource is anything a navbar can listen to for scroll offsets.
// Subscribe returns the func that releases the subscription; calling it more than once is a no-op.
type ScrollSource interface {
	Subscribe(handler ScrollHandler) (unsubscribe func())
}

// Broadcaster is an in-process ScrollSource. Publish calls every live subscriber
// synchronously, in subscription order.
type Broadcaster struct {
	mu       sync.Mutex
	nextID   uint64
	handlers map[uint64]ScrollHandler
	order    []uint64
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{handlers: make(map[uint64]ScrollHandler)}
}

// Subscribe implements ScrollSource.
func (b *Broadcaster) Subscribe(handler ScrollHandler) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.handlers[id] = handler
	b.order = append(b.order, id)
	b.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() { b.remove(id) })
	}
}

func (b *Broadcaster) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.handlers, id)

	for i, v := range b.order {
		if v == id {
			b.order = append(b.order[:i], b.order[i+1:]...)

			break
		}
	}
}

// Publish delivers y to all subscribers. Handlers run outside the lock so they may unsubscribe.
func (b *Broadcaster) Publish(y float64) {
	b.mu.Lock()
	handlers := make([]ScrollHandler, 0, len(b.order))

	for _, id := range b.order {
		handlers = append(handlers, b.handlers[id])
	}
	b.mu.Unlock()

	for _, h := range handlers {
		h(y)
	}
}

// Subscribers returns the number of live subscriptions.
func (b *Broadcaster) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.handlers)
}
