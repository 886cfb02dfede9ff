package segtree

import (
	"fmt"

	"github.com/npillmayer/sumtrees/monoid"
)

// Config configures a segment tree.
type Config[S any] struct {
	// Monoid aggregates elements up the tree.
	Monoid monoid.Monoid[S]
}

func (cfg Config[S]) normalized() Config[S] {
	return cfg
}

func (cfg Config[S]) validate() error {
	cfg = cfg.normalized()
	if cfg.Monoid == nil {
		return fmt.Errorf("%w: monoid is required", ErrInvalidConfig)
	}
	return nil
}

// LazyConfig configures a lazy segment tree.
type LazyConfig[S, A any] struct {
	// Monoid aggregates elements up the tree.
	Monoid monoid.Monoid[S]
	// Action applies and composes range actions.
	Action Action[S, A]
}

func (cfg LazyConfig[S, A]) normalized() LazyConfig[S, A] {
	return cfg
}

func (cfg LazyConfig[S, A]) validate() error {
	cfg = cfg.normalized()
	if cfg.Monoid == nil {
		return fmt.Errorf("%w: monoid is required", ErrInvalidConfig)
	}
	if cfg.Action == nil {
		return fmt.Errorf("%w: action is required", ErrInvalidConfig)
	}
	if v, ok := cfg.Action.(interface{ validate() error }); ok {
		return v.validate()
	}
	return nil
}

func checkSize(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative size %d", ErrInvalidConfig, n)
	}
	return nil
}
