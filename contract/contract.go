// Copyright 2026 The floweq Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package contract provides the public API for the flow-equation
// contraction engine: commutators between rank-2 and rank-4 operators
// and their normal-ordering corrections.
//
// Example:
//
//	eng := contract.New()
//	c, err := eng.Contract(h2, eta, contract.Options{Symmetry: contract.Antisymmetric})
//	no, err := eng.ContractNO(h4, eta4, contract.FermiSea(n, n/2), contract.Options{})
package contract

import (
	"log/slog"

	"github.com/floweq-dev/floweq/internal/contract"
	"github.com/floweq-dev/floweq/internal/parallel"
)

// Engine routes contraction requests to the matching kernel.
// It is safe for concurrent use.
type Engine = contract.Engine

// Option configures an Engine.
type Option = contract.Option

// Options select the strategy and symmetry class for a contraction.
type Options = contract.Options

// Variant selects the computation strategy.
type Variant = contract.Variant

// Variant constants.
const (
	SymmetryOptimized Variant = contract.SymmetryOptimized
	Reference         Variant = contract.Reference
)

// Symmetry declares the symmetry class of a matrix commutator result.
type Symmetry = contract.Symmetry

// Symmetry constants.
const (
	Symmetric     Symmetry = contract.Symmetric
	Antisymmetric Symmetry = contract.Antisymmetric
)

// ReferenceState is an ordered sequence of occupation numbers in
// {0, 1} used by the normal-ordering routines.
type ReferenceState = contract.ReferenceState

// ParallelConfig controls the engine's loop-level parallelism.
type ParallelConfig = parallel.Config

// Sentinel errors.
var (
	ErrShapeMismatch        = contract.ErrShapeMismatch
	ErrUnsupportedOperation = contract.ErrUnsupportedOperation
	ErrBadReferenceState    = contract.ErrBadReferenceState
)

// New creates an Engine with defaults: parallelism derived once from
// the CPU count and diagnostics on the default slog logger.
func New(opts ...Option) *Engine {
	return contract.New(opts...)
}

// WithParallelism sets the engine's parallel execution configuration.
func WithParallelism(cfg ParallelConfig) Option {
	return contract.WithParallelism(cfg)
}

// WithLogger sets the logger used for engine diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return contract.WithLogger(logger)
}

// DefaultParallelConfig returns the parallelism defaults for this host.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// FermiSea returns a reference state with the first filled modes
// occupied.
func FermiSea(n, filled int) ReferenceState {
	return contract.FermiSea(n, filled)
}
