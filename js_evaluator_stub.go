//go:build !js_eval

package dto

// NewJSEvaluator is unavailable without the js_eval build tag; containers
// configured with its nil result fall back to the expr engine.
func NewJSEvaluator(opts ...JSEvaluatorOption) Evaluator {
	_ = applyJSEvaluatorOptions(opts)
	return nil
}

func jsEvaluatorAvailable() bool {
	return false
}
