// Package domain contains the voting core: organizations and the player
// options fans vote on, per-organization vote budgets, vote records and
// redeemable codes. Entities expose no public fields; they are built through
// validating constructors, mutated through named methods and rebuilt from
// storage through the Restore* functions. Every time-dependent rule takes an
// explicit now so callers control the clock.
//
// The package performs no I/O. Persisting the results of an operation
// atomically is the job of the storage layer.
package domain
