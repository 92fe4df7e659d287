// Package feed streams observable state to WebSocket clients.
//
// A Registry holds named sources. Publishing a source snapshots it and
// subscribes to it; every later change is forwarded to all connected
// clients. A Feed upgrades HTTP requests to WebSocket connections and
// replays the current snapshot of every source to each new client
// before forwarding live updates:
//
//	volume := observable.NewValue(40)
//	peers := observable.NewSet("a", "b")
//
//	registry := feed.NewRegistry(nil)
//	registry.Publish("volume", feed.ValueSource(volume))
//	registry.Publish("peers", feed.CollectionSource(peers))
//
//	http.Handle("/live", feed.New(registry, nil))
//
// # Protocol
//
// Every frame is a JSON object:
//
//	{"type":"snapshot","name":"volume","seq":1,"data":40}
//	{"type":"update","name":"volume","seq":2,"data":55}
//	{"type":"ping"}
//
// A client receives one snapshot frame per source on connect, then one
// update frame per change. Updates carry the complete state, not
// diffs; Seq increases by one per change of a source, so a client that
// observes a gap knows to treat the next frame as authoritative. Ping
// frames keep idle connections alive; clients must send something,
// anything, within ReadTimeout or be dropped.
//
// # Threading
//
// Publish, Unpublish, Close and every mutation of a published
// observable must happen on one goroutine. The registry and feed own
// their synchronization from there: snapshots are cached under a lock
// and handed to clients without ever touching the observables from
// HTTP goroutines. A client whose outbound queue fills up is dropped
// on the spot; a slow consumer never stalls the mutation goroutine.
package feed
