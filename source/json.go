package source

import (
	"context"
	"encoding/json"
)

type jsonEvaluator struct{}

// NewJSONEvaluator constructs an Evaluator for JSON objects whose top-level
// keys are the module scope. Numbers decode as float64.
func NewJSONEvaluator() Evaluator {
	return jsonEvaluator{}
}

func (jsonEvaluator) Engine() string {
	return "json"
}

func (e jsonEvaluator) Evaluate(ctx context.Context, name string, src []byte, _ map[string]any) (Module, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, wrapEvaluationError(e.Engine(), name, err)
		}
	}
	var scope map[string]any
	if err := json.Unmarshal(src, &scope); err != nil {
		return nil, wrapEvaluationError(e.Engine(), name, err)
	}
	return MapModule(scope), nil
}
