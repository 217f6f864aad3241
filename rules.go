package dto

import (
	"fmt"
	"time"
)

// evaluateRules runs every configured guard expression against the incoming
// property. A rule passes only when it yields boolean true; false rejects
// the write with ErrRuleRejected and evaluation errors propagate wrapped.
func (d *Dto) evaluateRules(property Property) error {
	if len(d.cfg.rules) == 0 {
		return nil
	}
	evaluator, err := d.resolveEvaluator()
	if err != nil {
		return err
	}
	ctx := RuleContext{
		Attribute: property.Name,
		Value:     property.Value,
		Snapshot:  cloneAttributes(d.attributes),
	}.withDefaults()

	for _, rule := range d.cfg.rules {
		engine := evaluatorEngineName(evaluator)
		start := time.Now()
		result, evalErr := evaluator.Evaluate(ctx, rule)
		duration := time.Since(start)
		evalErr = wrapRuleEvaluationError(engine, rule, ctx.attributeLabel(), evalErr)
		d.ruleLogger().LogRule(RuleLogEvent{
			Engine:    engine,
			Expr:      rule,
			Attribute: property.Name,
			Duration:  duration,
			Err:       evalErr,
		})
		if evalErr != nil {
			return evalErr
		}
		if passed, ok := result.(bool); !ok || !passed {
			return attributeError(property.Name, ErrRuleRejected)
		}
	}
	return nil
}

// Evaluate runs expr against the current attribute map using the configured
// evaluator, defaulting to the expr engine.
func (d *Dto) Evaluate(expr string) (any, error) {
	if expr == "" {
		return nil, fmt.Errorf("dto: expression must not be empty")
	}
	evaluator, err := d.resolveEvaluator()
	if err != nil {
		return nil, err
	}
	d.ensure()
	ctx := RuleContext{Snapshot: cloneAttributes(d.attributes)}.withDefaults()
	engine := evaluatorEngineName(evaluator)
	start := time.Now()
	value, evalErr := evaluator.Evaluate(ctx, expr)
	duration := time.Since(start)
	evalErr = wrapRuleEvaluationError(engine, expr, ctx.attributeLabel(), evalErr)
	d.ruleLogger().LogRule(RuleLogEvent{
		Engine:   engine,
		Expr:     expr,
		Duration: duration,
		Err:      evalErr,
	})
	if evalErr != nil {
		return nil, evalErr
	}
	return value, nil
}

func (d *Dto) resolveEvaluator() (Evaluator, error) {
	if d.cfg.evaluator != nil {
		return d.cfg.evaluator, nil
	}
	var exprOpts []ExprEvaluatorOption
	if cache := d.cfg.programCache; cache != nil {
		exprOpts = append(exprOpts, ExprWithProgramCache(cache))
	}
	if registry := d.cfg.functions; registry != nil {
		exprOpts = append(exprOpts, ExprWithFunctionRegistry(registry))
	}
	d.cfg.evaluator = NewExprEvaluator(exprOpts...)
	return d.cfg.evaluator, nil
}

func (d *Dto) ruleLogger() RuleLogger {
	if d.cfg.logger != nil {
		return d.cfg.logger
	}
	return noopRuleLogger{}
}

func evaluatorEngineName(e Evaluator) string {
	if e == nil {
		return "unknown"
	}
	switch fmt.Sprintf("%T", e) {
	case "*dto.exprEvaluator":
		return "expr"
	case "*dto.celEvaluator":
		return "cel"
	case "*dto.jsEvaluator":
		return "js"
	default:
		return "custom"
	}
}
