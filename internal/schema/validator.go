package schema

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// Embedded schema file names.
const (
	WorkflowsSchemaName     = "workflows.schema.json"
	ReleaseConfigSchemaName = "config.schema.json"
)

// Validator checks generated job lists and release configs against the
// embedded JSON schemas
type Validator struct {
	workflowsSchema     *jsonschema.Schema
	releaseConfigSchema *jsonschema.Schema
}

// NewValidator compiles the embedded schemas
func NewValidator() (*Validator, error) {
	workflowsSchema, err := compileSchema(WorkflowsSchemaName)
	if err != nil {
		return nil, fmt.Errorf("failed to load workflows schema: %w", err)
	}

	releaseConfigSchema, err := compileSchema(ReleaseConfigSchemaName)
	if err != nil {
		return nil, fmt.Errorf("failed to load release config schema: %w", err)
	}

	return &Validator{
		workflowsSchema:     workflowsSchema,
		releaseConfigSchema: releaseConfigSchema,
	}, nil
}

// ValidateWorkflows validates a rendered workflow job list (YAML text)
func (v *Validator) ValidateWorkflows(data []byte) error {
	doc, err := yamlToJSONValue(data)
	if err != nil {
		return err
	}

	if err := v.workflowsSchema.Validate(doc); err != nil {
		return fmt.Errorf("workflows document invalid: %w", err)
	}
	return nil
}

// ValidateReleaseConfig validates a release config document (YAML text)
func (v *Validator) ValidateReleaseConfig(data []byte) error {
	doc, err := yamlToJSONValue(data)
	if err != nil {
		return err
	}

	if err := v.releaseConfigSchema.Validate(doc); err != nil {
		return fmt.Errorf("release config invalid: %w", err)
	}
	return nil
}

// compileSchema loads and compiles one embedded schema file
func compileSchema(name string) (*jsonschema.Schema, error) {
	data, err := GetSchema(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	schema, err := jsonschema.CompileString(name, string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return schema, nil
}

// yamlToJSONValue parses YAML text into the JSON value form the schema
// library validates.
func yamlToJSONValue(data []byte) (interface{}, error) {
	var parsed interface{}
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	jsonData, err := json.Marshal(parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}

	var doc interface{}
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}

	return doc, nil
}
