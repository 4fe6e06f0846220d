package render

import (
	"fmt"
	"strings"

	"github.com/osalpekar/vision/internal/model"
	"github.com/osalpekar/vision/internal/planner"
)

// MatrixViewer provides a human-readable tree view of a planned sequence
type MatrixViewer struct {
	workflows []model.Workflow
}

// NewMatrixViewer creates a new matrix viewer
func NewMatrixViewer(workflows []model.Workflow) *MatrixViewer {
	return &MatrixViewer{workflows: workflows}
}

// ViewDAG returns the build jobs in plan order with their dependent
// jobs nested underneath.
func (mv *MatrixViewer) ViewDAG() string {
	if len(mv.workflows) == 0 {
		return "No workflows planned\n"
	}

	byName := make(map[string]model.Workflow, len(mv.workflows))
	roots := make([]string, 0)
	for _, workflow := range mv.workflows {
		name := workflow.Spec.WorkflowName()
		byName[name] = workflow
		if len(workflow.Spec.DependsOn()) == 0 {
			roots = append(roots, name)
		}
	}

	dependents := planner.NewWorkflowGraph(mv.workflows).Dependents()

	var sb strings.Builder
	for i, root := range roots {
		prefix := "├─ "
		connector := "│  "
		if i == len(roots)-1 {
			prefix = "└─ "
			connector = "   "
		}

		sb.WriteString(fmt.Sprintf("%s%s [%s]\n", prefix, root, byName[root].Job))
		mv.writeDependents(&sb, connector, root, byName, dependents)
	}

	sb.WriteString("═══════════════════════════════════════════════════════════\n")
	sb.WriteString(fmt.Sprintf("Summary: %d jobs (%d builds)\n", len(mv.workflows), len(roots)))

	return sb.String()
}

// ViewDependencies lists every workflow in plan order with the jobs it
// requires.
func (mv *MatrixViewer) ViewDependencies() string {
	if len(mv.workflows) == 0 {
		return "No workflows planned\n"
	}

	var sb strings.Builder
	sb.WriteString("Workflow Dependencies\n")
	sb.WriteString("═══════════════════════════════════════════════════════════\n")

	for i, workflow := range mv.workflows {
		prefix := "├─ "
		connector := "│  "
		if i == len(mv.workflows)-1 {
			prefix = "└─ "
			connector = "   "
		}

		sb.WriteString(fmt.Sprintf("%s%s [%s]\n", prefix, workflow.Spec.WorkflowName(), workflow.Job))

		requires := workflow.Spec.DependsOn()
		if len(requires) == 0 {
			sb.WriteString(connector + "   (no dependencies)\n")
			continue
		}
		for _, required := range requires {
			sb.WriteString(fmt.Sprintf("%s   requires %s\n", connector, required))
		}
	}

	return sb.String()
}

// writeDependents recursively renders the jobs requiring name
func (mv *MatrixViewer) writeDependents(sb *strings.Builder, indent, name string, byName map[string]model.Workflow, dependents map[string][]string) {
	deps := dependents[name]
	for i, dep := range deps {
		prefix := indent + "├─ "
		connector := indent + "│  "
		if i == len(deps)-1 {
			prefix = indent + "└─ "
			connector = indent + "   "
		}

		sb.WriteString(fmt.Sprintf("%s%s [%s]\n", prefix, dep, byName[dep].Job))
		mv.writeDependents(sb, connector, dep, byName, dependents)
	}
}
