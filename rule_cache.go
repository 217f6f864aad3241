package dto

// ProgramCache stores compiled guard-rule programs keyed by their expression
// text. Containers sharing a cache compile each rule once even when many
// instances carry the same guard; entries hold engine-specific program types
// and a miss simply recompiles.
type ProgramCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}

// WithProgramCache registers a program cache used by the container's rule
// evaluator. The cache may be shared across containers and engines.
func WithProgramCache(cache ProgramCache) Option {
	return func(cfg *containerConfig) {
		cfg.programCache = cache
	}
}
