package snapshot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/johnmwilson82/observable"
)

// SaveValue encodes the cell's current value and stores it under key.
func SaveValue[T any](ctx context.Context, store Store, key string, v *observable.Value[T]) error {
	data, err := Marshal(v.Get())
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, key, err)
	}
	return store.Save(ctx, key, data)
}

// LoadValue decodes the bytes stored under key into the cell. The
// store goes through the cell's usual equality gate, so observers fire
// only if the loaded value differs from the current one. Loading into
// a bound cell fails with observable.ErrReadOnly.
func LoadValue[T any](ctx context.Context, store Store, key string, v *observable.Value[T]) error {
	data, err := store.Load(ctx, key)
	if err != nil {
		return err
	}

	var decoded T
	if err := Unmarshal(data, &decoded); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrLoadFailed, key, err)
	}

	_, err = v.Set(decoded)
	return err
}

// SaveSet encodes the collection's elements and stores them under key.
func SaveSet[T any, C observable.Container[T]](ctx context.Context, store Store, key string, col *observable.Collection[T, C]) error {
	data, err := Marshal(col.Elements())
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, key, err)
	}
	return store.Save(ctx, key, data)
}

// LoadElements decodes the element slice stored under key.
func LoadElements[T any](ctx context.Context, store Store, key string) ([]T, error) {
	data, err := store.Load(ctx, key)
	if err != nil {
		return nil, err
	}

	var elems []T
	if err := Unmarshal(data, &elems); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadFailed, key, err)
	}
	return elems, nil
}

// LoadSet inserts the elements stored under key into col one by one,
// firing the usual element notifications. Elements already present are
// skipped by the container. Loading into a bound collection fails with
// observable.ErrReadOnly.
func LoadSet[T any, C observable.Container[T]](ctx context.Context, store Store, key string, col *observable.Collection[T, C]) error {
	elems, err := LoadElements[T](ctx, store, key)
	if err != nil {
		return err
	}

	for _, e := range elems {
		if _, err := col.Insert(e); err != nil {
			return err
		}
	}
	return nil
}

// AutoConfig configures automatic persistence.
type AutoConfig struct {
	// Logger receives save failures when no OnError is installed.
	// Default: slog.Default().
	Logger *slog.Logger

	// OnError is invoked with every save failure. When set, nothing is
	// logged.
	OnError func(error)
}

// AutoOption configures automatic persistence.
type AutoOption func(*AutoConfig)

// WithLogger sets the logger for save failures.
func WithLogger(logger *slog.Logger) AutoOption {
	return func(c *AutoConfig) {
		c.Logger = logger
	}
}

// WithOnError installs a callback for save failures.
func WithOnError(fn func(error)) AutoOption {
	return func(c *AutoConfig) {
		c.OnError = fn
	}
}

func buildAutoConfig(opts []AutoOption) AutoConfig {
	config := AutoConfig{Logger: slog.Default()}
	for _, opt := range opts {
		opt(&config)
	}
	return config
}

func (c *AutoConfig) report(key string, err error) {
	if c.OnError != nil {
		c.OnError(err)
		return
	}
	c.Logger.Error("snapshot save failed", "key", key, "error", err)
}

// AutoSaveValue persists the cell under key immediately and again
// after every change. Save failures are reported through OnError or
// the logger and do not stop later saves. The returned subscription
// ends the persistence; ctx is passed to every save.
func AutoSaveValue[T any](ctx context.Context, store Store, key string, v *observable.Value[T], opts ...AutoOption) *observable.Subscription {
	config := buildAutoConfig(opts)

	return v.SubscribeAndCall(func() {
		if err := SaveValue(ctx, store, key, v); err != nil {
			config.report(key, err)
		}
	})
}

// AutoSaveSet persists the collection under key immediately and again
// after every mutation, including bulk replacement. Save failures are
// reported through OnError or the logger and do not stop later saves.
// The returned subscription ends the persistence; ctx is passed to
// every save.
func AutoSaveSet[T any, C observable.Container[T]](ctx context.Context, store Store, key string, col *observable.Collection[T, C], opts ...AutoOption) *observable.Subscription {
	config := buildAutoConfig(opts)

	return col.SubscribeAndCall(func() {
		if err := SaveSet(ctx, store, key, col); err != nil {
			config.report(key, err)
		}
	})
}
