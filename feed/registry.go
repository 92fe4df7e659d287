package feed

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/johnmwilson82/observable"
)

// Registry is the publishing side of a feed: named sources plus the
// set of connected clients. Its own state is locked, so clients may
// come and go on HTTP goroutines while sources change on the mutation
// goroutine. Publish, Unpublish and Close belong on the mutation
// goroutine; they are the only paths that touch the observables.
type Registry struct {
	logger *slog.Logger

	mu      sync.Mutex
	order   []string
	sources map[string]*sourceState
	clients map[string]*client
}

// sourceState caches the latest encoded snapshot so connecting clients
// never read the observable itself.
type sourceState struct {
	seq    uint64
	latest json.RawMessage
	sub    *observable.Subscription
}

// NewRegistry returns an empty registry. A nil logger means
// slog.Default.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default().With("component", "feed")
	}
	return &Registry{
		logger:  logger,
		sources: make(map[string]*sourceState),
		clients: make(map[string]*client),
	}
}

// Publish registers src under name, announces its snapshot to every
// connected client and subscribes to it so later changes are forwarded
// automatically.
func (r *Registry) Publish(name string, src Source) error {
	if name == "" || src == nil {
		return fmt.Errorf("%w: %q", ErrBadSource, name)
	}

	data, err := src.Snapshot()
	if err != nil {
		return fmt.Errorf("feed: snapshot of %q: %w", name, err)
	}

	r.mu.Lock()
	if _, taken := r.sources[name]; taken {
		r.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrDuplicateSource, name)
	}

	st := &sourceState{seq: 1, latest: data}
	r.sources[name] = st
	r.order = append(r.order, name)
	r.broadcastLocked(MessageSnapshot, name, st)
	r.mu.Unlock()

	st.sub = src.Subscribe(func() { r.forward(name, src) })
	r.logger.Info("source published", "source", name)
	return nil
}

// Unpublish stops forwarding name. Connected clients are not told;
// they simply receive no further frames for it. Unknown names are
// ignored.
func (r *Registry) Unpublish(name string) {
	r.mu.Lock()
	st, ok := r.sources[name]
	if ok {
		delete(r.sources, name)
		for i, n := range r.order {
			if n == name {
				r.order = append(r.order[:i], r.order[i+1:]...)
				break
			}
		}
	}
	r.mu.Unlock()

	if ok {
		st.sub.Unsubscribe()
		r.logger.Info("source unpublished", "source", name)
	}
}

// Names returns the published source names in publication order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.order...)
}

// Close unsubscribes every source and disconnects every client.
func (r *Registry) Close() {
	r.mu.Lock()
	subs := make([]*observable.Subscription, 0, len(r.sources))
	for _, st := range r.sources {
		subs = append(subs, st.sub)
	}
	r.sources = make(map[string]*sourceState)
	r.order = nil
	for _, c := range r.clients {
		r.removeLocked(c)
	}
	r.mu.Unlock()

	for _, sub := range subs {
		sub.Unsubscribe()
	}
}

// forward runs on the mutation goroutine after every change of a
// published source.
func (r *Registry) forward(name string, src Source) {
	data, err := src.Snapshot()
	if err != nil {
		r.logger.Error("snapshot failed", "source", name, "error", err)
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	st, ok := r.sources[name]
	if !ok {
		return
	}
	st.seq++
	st.latest = data
	r.broadcastLocked(MessageUpdate, name, st)
}

// attach adds c and queues one snapshot frame per source, in
// publication order.
func (r *Registry) attach(c *client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clients[c.id] = c
	for _, name := range r.order {
		st := r.sources[name]
		msg, err := json.Marshal(Message{Type: MessageSnapshot, Name: name, Seq: st.seq, Data: st.latest})
		if err != nil {
			r.logger.Error("encode failed", "source", name, "error", err)
			continue
		}
		if !r.enqueueLocked(c, msg) {
			return
		}
	}
}

func (r *Registry) detach(c *client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.removeLocked(c)
}

func (r *Registry) broadcastLocked(typ MessageType, name string, st *sourceState) {
	if len(r.clients) == 0 {
		return
	}

	msg, err := json.Marshal(Message{Type: typ, Name: name, Seq: st.seq, Data: st.latest})
	if err != nil {
		r.logger.Error("encode failed", "source", name, "error", err)
		return
	}

	for _, c := range r.clients {
		r.enqueueLocked(c, msg)
	}
}

// enqueueLocked hands msg to the client's writer without blocking. A
// full queue means the client cannot keep up; it is dropped rather
// than allowed to stall the mutation goroutine.
func (r *Registry) enqueueLocked(c *client, msg []byte) bool {
	select {
	case c.send <- msg:
		return true
	default:
		r.logger.Warn("client too slow, dropping", "client", c.id)
		r.removeLocked(c)
		return false
	}
}

// removeLocked is idempotent; closing send tells the client's writer
// to shut the connection down.
func (r *Registry) removeLocked(c *client) {
	if _, ok := r.clients[c.id]; !ok {
		return
	}
	delete(r.clients, c.id)
	close(c.send)
}
