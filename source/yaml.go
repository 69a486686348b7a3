package source

import (
	"context"

	"gopkg.in/yaml.v3"
)

type yamlEvaluator struct{}

// NewYAMLEvaluator constructs an Evaluator for YAML documents whose
// top-level mapping is the module scope.
func NewYAMLEvaluator() Evaluator {
	return yamlEvaluator{}
}

func (yamlEvaluator) Engine() string {
	return "yaml"
}

func (e yamlEvaluator) Evaluate(ctx context.Context, name string, src []byte, _ map[string]any) (Module, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, wrapEvaluationError(e.Engine(), name, err)
		}
	}
	var scope map[string]any
	if err := yaml.Unmarshal(src, &scope); err != nil {
		return nil, wrapEvaluationError(e.Engine(), name, err)
	}
	return MapModule(scope), nil
}
