package dto

import (
	"errors"
	"fmt"
	"strings"
)

// RuleError captures evaluator metadata alongside the originating error.
type RuleError struct {
	Engine    string
	Expr      string
	Attribute string
	Err       error
}

func (e *RuleError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("dto: %s evaluator %s attribute=%s: %v", e.Engine, describeExpression(e.Expr), e.Attribute, e.Err)
}

func (e *RuleError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func describeExpression(expr string) string {
	if expr == "" {
		return "expr=<empty>"
	}
	return fmt.Sprintf("expr=%q", expr)
}

func wrapRuleError(engine string, err error) error {
	if err == nil {
		return nil
	}

	var ruleErr *RuleError
	if errors.As(err, &ruleErr) {
		return err
	}

	if strings.HasPrefix(err.Error(), "dto:") {
		return err
	}
	return fmt.Errorf("dto: %s evaluator: %w", engine, err)
}

func wrapRuleEvaluationError(engine, expr, attribute string, err error) error {
	if err == nil {
		return nil
	}

	var ruleErr *RuleError
	if errors.As(err, &ruleErr) {
		if ruleErr.Engine == "" {
			ruleErr.Engine = engine
		}
		if ruleErr.Expr == "" {
			ruleErr.Expr = expr
		}
		if ruleErr.Attribute == "" {
			ruleErr.Attribute = attribute
		}
		return ruleErr
	}

	return &RuleError{
		Engine:    engine,
		Expr:      expr,
		Attribute: attribute,
		Err:       err,
	}
}
