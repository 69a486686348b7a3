package openapi

import (
	"strings"

	settings "github.com/goliatone/go-settings"
)

type generator struct {
	config generatorConfig
}

// NewGenerator constructs an OpenAPI-compatible schema generator. Each
// domain becomes an object schema under components.schemas.
func NewGenerator(opts ...GeneratorOption) settings.SchemaGenerator {
	cfg := defaultGeneratorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return generator{config: cfg}
}

// Option returns a settings.Option that wires the OpenAPI schema generator
// into a Manager.
func Option(opts ...GeneratorOption) settings.Option {
	return settings.WithSchemaGenerator(NewGenerator(opts...))
}

func (g generator) Generate(descriptors []settings.Descriptor) (settings.SchemaDocument, error) {
	components := map[string]*objectSchema{}
	var order []string
	for _, d := range descriptors {
		domain, name := splitURI(d.URI())
		if domain == "" {
			domain = g.config.defaultDomain
		}
		component, ok := components[domain]
		if !ok {
			component = &objectSchema{properties: map[string]any{}}
			components[domain] = component
			order = append(order, domain)
		}
		component.properties[name] = propertySchema(d)
		if d.Required() {
			component.required = append(component.required, name)
		}
	}

	document, err := newDocumentBuilder(g.config).build(order, components)
	if err != nil {
		return settings.SchemaDocument{}, err
	}
	return settings.SchemaDocument{
		Format:   settings.SchemaFormatOpenAPI,
		Document: document,
	}, nil
}

func propertySchema(d settings.Descriptor) map[string]any {
	schema := typeSchema(d.Type().Name())
	schema["x-uri"] = d.URI()
	if description := d.Description(); description != "" {
		schema["description"] = description
	}
	if value, ok := d.Default(); ok {
		if value == nil {
			schema["nullable"] = true
		}
		schema["default"] = value
	}
	validator := d.Validator()
	switch validator.Kind() {
	case settings.ValidatorPattern:
		schema["pattern"] = "^(?:" + validator.Source() + ")"
	case settings.ValidatorExpression, settings.ValidatorCEL:
		schema["x-validator"] = map[string]any{
			"kind": string(validator.Kind()),
			"rule": validator.Source(),
		}
	case settings.ValidatorPredicate:
		schema["x-validator"] = map[string]any{"kind": string(validator.Kind())}
	}
	return schema
}

func typeSchema(name string) map[string]any {
	switch name {
	case "string":
		return map[string]any{"type": "string"}
	case "bool":
		return map[string]any{"type": "boolean"}
	case "int":
		return map[string]any{"type": "integer"}
	case "float", "number":
		return map[string]any{"type": "number"}
	case "list":
		return map[string]any{"type": "array", "items": map[string]any{}}
	case "map":
		return map[string]any{"type": "object", "additionalProperties": true}
	case "any", "":
		return map[string]any{}
	default:
		return map[string]any{"x-go-type": name}
	}
}

func splitURI(uri string) (domain, name string) {
	domain, name, ok := strings.Cut(uri, "/")
	if !ok {
		return "", uri
	}
	return domain, name
}
