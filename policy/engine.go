package policy

import (
	"context"
	"fmt"

	"github.com/open-policy-agent/opa/rego"
)

// Decisions returned by the run identifier policy.
const (
	DecisionAllow  = "allow"
	DecisionReject = "reject"
)

// Engine is the OPA policy engine.
type Engine struct {
	query rego.PreparedEvalQuery
}

// NewEngine creates a new policy engine with the given policy content.
func NewEngine(ctx context.Context, policyContent string) (*Engine, error) {
	r := rego.New(
		rego.Query("data.run_policy.decision"),
		rego.Module("run_policy.rego", policyContent),
	)

	query, err := r.PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare rego: %w", err)
	}

	return &Engine{query: query}, nil
}

// Evaluate runs the policy against input and returns the decision string.
// A policy that yields nothing is treated as a rejection.
func (e *Engine) Evaluate(ctx context.Context, input interface{}) (string, error) {
	results, err := e.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return "", fmt.Errorf("failed to evaluate policy: %w", err)
	}

	if len(results) == 0 || len(results[0].Expressions) == 0 {
		return DecisionReject, nil
	}

	if s, ok := results[0].Expressions[0].Value.(string); ok {
		return s, nil
	}
	return DecisionReject, nil
}

// AdmitRunID reports whether the identifier values pulled from a request
// form exactly one well-formed run identifier.
func (e *Engine) AdmitRunID(ctx context.Context, values []string) (bool, error) {
	if values == nil {
		values = []string{}
	}
	decision, err := e.Evaluate(ctx, map[string]interface{}{
		"values": values,
	})
	if err != nil {
		return false, err
	}
	return decision == DecisionAllow, nil
}

// DefaultPolicy is the default policy content.
const DefaultPolicy = `
package run_policy

default decision = "reject"

# Exactly one non-empty identifier without control characters.
decision = "allow" {
	count(input.values) == 1
	id := input.values[0]
	id != ""
	count(id) <= 256
	not regex.match("[\\x00-\\x1f\\x7f]", id)
}
`
