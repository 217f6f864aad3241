package dto

import (
	"time"

	"github.com/goliatone/go-dto/pkg/activity"
)

// RuleContext carries the inputs handed to rule evaluators when an attribute
// write is validated or an ad-hoc expression runs against a container.
type RuleContext struct {
	// Attribute is the name being written; empty for ad-hoc evaluation.
	Attribute string
	// Value is the incoming attribute value; nil for ad-hoc evaluation.
	Value any
	// Snapshot is the current attribute map the expression can reference.
	Snapshot map[string]any

	Now      *time.Time
	Args     map[string]any
	Metadata map[string]any
}

func (ctx RuleContext) withDefaultNow() RuleContext {
	if ctx.Now != nil {
		return ctx
	}
	now := time.Now()
	ctx.Now = &now
	return ctx
}

func (ctx RuleContext) timestamp() time.Time {
	ctx = ctx.withDefaultNow()
	return *ctx.Now
}

func (ctx RuleContext) withDefaultMaps() RuleContext {
	if ctx.Args == nil {
		ctx.Args = map[string]any{}
	}
	if ctx.Metadata == nil {
		ctx.Metadata = map[string]any{}
	}
	if ctx.Snapshot == nil {
		ctx.Snapshot = map[string]any{}
	}
	return ctx
}

func (ctx RuleContext) withDefaults() RuleContext {
	return ctx.withDefaultNow().withDefaultMaps()
}

func (ctx RuleContext) attributeLabel() string {
	if ctx.Attribute == "" {
		return "<none>"
	}
	return ctx.Attribute
}

// Evaluator executes rule expressions against a rule context.
type Evaluator interface {
	Evaluate(ctx RuleContext, expr string) (any, error)
	Compile(expr string, opts ...CompileOption) (CompiledRule, error)
}

// CompiledRule represents a reusable expression program.
type CompiledRule interface {
	Evaluate(ctx RuleContext) (any, error)
}

// CompileOption configures evaluator compile behaviour.
type CompileOption interface {
	applyCompileOption(*compileConfig)
}

type compileConfig struct{}

type compileOptionFunc func(*compileConfig)

func (f compileOptionFunc) applyCompileOption(cfg *compileConfig) {
	if f != nil {
		f(cfg)
	}
}

// Option configures a container at construction time.
type Option func(*containerConfig)

type containerConfig struct {
	options       Options
	optionsSet    bool
	fillable      []string
	rules         []string
	evaluator     Evaluator
	programCache  ProgramCache
	functions     *FunctionRegistry
	logger        RuleLogger
	activityHooks activity.Hooks
}

func applyContainerOptions(opts []Option) containerConfig {
	cfg := containerConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithOptions sets the policy flags explicitly, bypassing capability
// resolution.
func WithOptions(options Options) Option {
	return func(cfg *containerConfig) {
		cfg.options = options
		cfg.optionsSet = true
	}
}

// WithReadOnly rejects mutations once the container has initialized.
func WithReadOnly() Option {
	return func(cfg *containerConfig) {
		cfg.options.ReadOnly = true
		cfg.optionsSet = true
	}
}

// WithForbidOverrides rejects overwriting attributes that already exist.
func WithForbidOverrides() Option {
	return func(cfg *containerConfig) {
		cfg.options.ForbidOverrides = true
		cfg.optionsSet = true
	}
}

// WithIgnoreUnknown makes reads of absent attributes yield nil instead of
// failing.
func WithIgnoreUnknown() Option {
	return func(cfg *containerConfig) {
		cfg.options.IgnoreUnknown = true
		cfg.optionsSet = true
	}
}

// WithFillable restricts assignable attribute names to the supplied
// whitelist.
func WithFillable(names ...string) Option {
	return func(cfg *containerConfig) {
		if len(names) == 0 {
			return
		}
		cfg.fillable = append([]string(nil), names...)
	}
}

// WithRule registers a guard expression evaluated on every write after the
// policy checks pass. The expression sees name, value, attrs, now, args and
// metadata; a non-true result rejects the write with ErrRuleRejected.
func WithRule(expr string) Option {
	return func(cfg *containerConfig) {
		if expr == "" {
			return
		}
		cfg.rules = append(cfg.rules, expr)
	}
}

// WithEvaluator configures the rule evaluator engine.
func WithEvaluator(e Evaluator) Option {
	return func(cfg *containerConfig) {
		cfg.evaluator = e
	}
}
