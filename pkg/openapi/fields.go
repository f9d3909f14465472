package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formfield/pkg/i18n"
	"github.com/goliatone/go-formfield/pkg/rules"
)

// FieldDefinition is a form field derived from an OpenAPI request schema.
// Type resolves through the fieldtypes registry; Rules feeds rules.Merge,
// so a loaded operation plugs straight into the validation pipeline.
type FieldDefinition struct {
	Name     string
	Type     string
	Label    string
	Required bool
	Enum     []any
	Rules    *rules.RuleSet
}

// ValidationRules implements rules.Provider.
func (f FieldDefinition) ValidationRules() *rules.RuleSet {
	return f.Rules
}

var requestMediaTypes = []string{
	"application/json",
	"application/x-www-form-urlencoded",
	"multipart/form-data",
}

// Fields extracts field definitions from the request body of the named
// operation, ordered by property name.
func Fields(ctx context.Context, raw []byte, operationID string) ([]FieldDefinition, error) {
	if len(raw) == 0 {
		return nil, errors.New("openapi fields: document payload is empty")
	}
	if strings.TrimSpace(operationID) == "" {
		return nil, errors.New("openapi fields: operation id is required")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi fields: load document: %w", err)
	}

	operation := findOperation(spec, operationID)
	if operation == nil {
		return nil, fmt.Errorf("openapi fields: operation %q not found", operationID)
	}

	schema := requestSchema(operation.RequestBody)
	if schema == nil || len(schema.Properties) == 0 {
		return nil, nil
	}

	required := make(map[string]struct{}, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = struct{}{}
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]FieldDefinition, 0, len(names))
	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		_, isRequired := required[name]
		fields = append(fields, buildField(name, ref.Value, isRequired))
	}
	return fields, nil
}

func findOperation(spec *openapi3.T, operationID string) *openapi3.Operation {
	if spec.Paths == nil {
		return nil
	}
	for _, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for _, operation := range item.Operations() {
			if operation != nil && operation.OperationID == operationID {
				return operation
			}
		}
	}
	return nil
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range requestMediaTypes {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

func buildField(name string, schema *openapi3.Schema, required bool) FieldDefinition {
	field := FieldDefinition{
		Name:     name,
		Type:     fieldTypeName(schema),
		Label:    i18n.Humanize(name),
		Required: required,
	}
	if len(schema.Enum) > 0 {
		field.Enum = append([]any(nil), schema.Enum...)
	}

	expr := ruleExpression(schema, required)
	set := &rules.RuleSet{
		Attributes: map[string]string{name: field.Label},
	}
	if expr != "" {
		set.Rules = map[string]any{name: expr}
	}
	field.Rules = set
	return field
}

func fieldTypeName(schema *openapi3.Schema) string {
	switch schemaType(schema) {
	case "boolean":
		return "checkbox"
	case "integer", "number":
		return "number"
	case "array":
		return "collection"
	case "object":
		return "form"
	}

	if len(schema.Enum) > 0 {
		return "select"
	}
	switch strings.ToLower(schema.Format) {
	case "email":
		return "email"
	case "uri", "url":
		return "url"
	case "date":
		return "date"
	case "date-time":
		return "datetime-local"
	case "time":
		return "time"
	case "password":
		return "password"
	case "tel", "phone":
		return "tel"
	case "color":
		return "color"
	case "textarea":
		return "textarea"
	default:
		return "text"
	}
}

func schemaType(schema *openapi3.Schema) string {
	if schema.Type == nil {
		return ""
	}
	values := schema.Type.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func ruleExpression(schema *openapi3.Schema, required bool) string {
	var parts []string
	if required {
		parts = append(parts, "required")
	}

	switch schemaType(schema) {
	case "integer":
		parts = append(parts, "integer")
	case "number":
		parts = append(parts, "numeric")
	case "boolean":
		parts = append(parts, "boolean")
	case "array":
		parts = append(parts, "array")
	case "string":
		switch strings.ToLower(schema.Format) {
		case "email":
			parts = append(parts, "email")
		case "uri", "url":
			parts = append(parts, "url")
		case "date", "date-time":
			parts = append(parts, "date")
		}
	}

	if schema.Min != nil {
		parts = append(parts, "min:"+formatBound(*schema.Min))
	}
	if schema.Max != nil {
		parts = append(parts, "max:"+formatBound(*schema.Max))
	}
	if schema.MinLength > 0 {
		parts = append(parts, "min:"+strconv.FormatUint(schema.MinLength, 10))
	}
	if schema.MaxLength != nil {
		parts = append(parts, "max:"+strconv.FormatUint(*schema.MaxLength, 10))
	}
	if schema.Pattern != "" {
		parts = append(parts, "regex:"+schema.Pattern)
	}
	if len(schema.Enum) > 0 {
		values := make([]string, 0, len(schema.Enum))
		for _, value := range schema.Enum {
			values = append(values, fmt.Sprintf("%v", value))
		}
		parts = append(parts, "in:"+strings.Join(values, ","))
	}
	return strings.Join(parts, "|")
}

func formatBound(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
