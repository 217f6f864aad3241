package dto

import (
	"errors"
	"testing"
)

func TestWrapRuleEvaluationErrorCreatesMetadata(t *testing.T) {
	base := errors.New("boom")
	err := wrapRuleEvaluationError("expr", "value > 0", "age", base)

	var ruleErr *RuleError
	if !errors.As(err, &ruleErr) {
		t.Fatalf("expected RuleError, got %T", err)
	}
	if ruleErr.Engine != "expr" {
		t.Fatalf("expected engine expr, got %q", ruleErr.Engine)
	}
	if ruleErr.Expr != "value > 0" {
		t.Fatalf("expected expression metadata, got %q", ruleErr.Expr)
	}
	if ruleErr.Attribute != "age" {
		t.Fatalf("expected attribute metadata, got %q", ruleErr.Attribute)
	}
	if !errors.Is(ruleErr.Err, base) {
		t.Fatalf("wrapped error should unwrap to base error")
	}
}

func TestWrapRuleEvaluationErrorAugmentsExisting(t *testing.T) {
	base := errors.New("compile failure")
	existing := &RuleError{
		Engine: "expr",
		Err:    base,
	}

	err := wrapRuleEvaluationError("cel", "rule", "name", existing)
	if !errors.Is(err, base) {
		t.Fatalf("expected base error to unwrap")
	}
	if existing.Engine != "expr" {
		t.Fatalf("existing engine should not be overwritten, got %q", existing.Engine)
	}
	if existing.Expr != "rule" {
		t.Fatalf("expression should be filled, got %q", existing.Expr)
	}
	if existing.Attribute != "name" {
		t.Fatalf("attribute should be filled, got %q", existing.Attribute)
	}
}

func TestWrapRuleErrorPreservesPrefixedErrors(t *testing.T) {
	prefixed := errors.New("dto: already wrapped")
	if got := wrapRuleError("expr", prefixed); got != prefixed {
		t.Fatalf("expected prefixed error returned unchanged, got %v", got)
	}
	if got := wrapRuleError("expr", nil); got != nil {
		t.Fatalf("expected nil passthrough, got %v", got)
	}
}
