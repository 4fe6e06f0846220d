package planner

import (
	"fmt"

	"github.com/osalpekar/vision/internal/model"
)

// WorkflowGraph indexes a planned job sequence for validation and display
type WorkflowGraph struct {
	workflows []model.Workflow
}

// NewWorkflowGraph creates a new graph over a planned sequence
func NewWorkflowGraph(workflows []model.Workflow) *WorkflowGraph {
	return &WorkflowGraph{
		workflows: workflows,
	}
}

// Verify checks that workflow names are unique and that every requires
// edge points at an earlier entry of the sequence. CircleCI rejects
// forward references, so plan order is the dependency order.
func (g *WorkflowGraph) Verify() error {
	seen := make(map[string]bool, len(g.workflows))

	for _, workflow := range g.workflows {
		name := workflow.Spec.WorkflowName()
		if seen[name] {
			return fmt.Errorf("duplicate workflow name: %s", name)
		}

		for _, dep := range workflow.Spec.DependsOn() {
			if !seen[dep] {
				return fmt.Errorf("workflow %s requires %s before it is planned", name, dep)
			}
		}

		seen[name] = true
	}

	return nil
}

// Dependents maps each workflow name to the names that require it, in
// plan order. Entries without dependents map to an empty list.
func (g *WorkflowGraph) Dependents() map[string][]string {
	dependents := make(map[string][]string, len(g.workflows))

	for _, workflow := range g.workflows {
		name := workflow.Spec.WorkflowName()
		if _, exists := dependents[name]; !exists {
			dependents[name] = make([]string, 0)
		}

		for _, dep := range workflow.Spec.DependsOn() {
			dependents[dep] = append(dependents[dep], name)
		}
	}

	return dependents
}
