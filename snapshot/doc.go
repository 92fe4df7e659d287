// Package snapshot persists observable state through pluggable
// key-value stores.
//
// Values and collections are encoded as deterministic CBOR and written
// under caller-chosen keys:
//
//	store := snapshot.NewFileStore("/var/lib/app/state")
//	if err := snapshot.SaveValue(ctx, store, "config/mode", mode); err != nil {
//	    ...
//	}
//
// AutoSaveValue and AutoSaveSet subscribe to a source and persist it
// again after every real change, so the stored bytes track the live
// state without explicit save calls:
//
//	sub := snapshot.AutoSaveValue(ctx, store, "config/mode", mode)
//	defer sub.Unsubscribe()
//
// Stores are stateless and perform I/O on every call. FileStore writes
// atomically via a temp file and rename. The s3example build tag adds
// an S3-backed store.
package snapshot
