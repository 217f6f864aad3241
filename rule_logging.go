package dto

import "time"

// RuleLogEvent describes a rule evaluation attempt for logging.
type RuleLogEvent struct {
	Engine    string
	Expr      string
	Attribute string
	Duration  time.Duration
	Err       error
}

// RuleLogger records rule evaluation events.
type RuleLogger interface {
	LogRule(RuleLogEvent)
}

// RuleLoggerFunc adapts a function to RuleLogger.
type RuleLoggerFunc func(RuleLogEvent)

// LogRule implements RuleLogger.
func (f RuleLoggerFunc) LogRule(event RuleLogEvent) {
	if f != nil {
		f(event)
	}
}

type noopRuleLogger struct{}

func (noopRuleLogger) LogRule(RuleLogEvent) {}

// WithRuleLogger attaches a rule logger to the container.
func WithRuleLogger(logger RuleLogger) Option {
	return func(cfg *containerConfig) {
		if logger == nil {
			cfg.logger = noopRuleLogger{}
			return
		}
		cfg.logger = logger
	}
}
