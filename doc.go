// Package dto implements dynamic attribute containers: property bags that
// track original and dirty state, enforce per-type policies (read-only,
// fillable whitelists, override protection) on every mutation, and can be
// built best-effort from heterogeneous sources through a factory.
package dto
