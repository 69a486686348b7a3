package settings

// SchemaFormat identifies the representation a schema document encodes.
type SchemaFormat string

const (
	// SchemaFormatDescriptors represents the flattened field descriptors.
	SchemaFormatDescriptors SchemaFormat = "descriptors"
	// SchemaFormatOpenAPI represents OpenAPI-compatible JSON Schema documents.
	SchemaFormatOpenAPI SchemaFormat = "openapi"
)

// SchemaDocument encapsulates a generated schema alongside its format.
// Document must be JSON serialisable.
type SchemaDocument struct {
	Format   SchemaFormat
	Document any
}

// SchemaGenerator describes registered descriptors. Implementations must
// accept an empty slice.
type SchemaGenerator interface {
	Generate(descriptors []Descriptor) (SchemaDocument, error)
}

// FieldDescriptor is the flattened view of one Descriptor.
type FieldDescriptor struct {
	URI         string        `json:"uri"`
	Type        string        `json:"type"`
	Policy      string        `json:"policy"`
	Default     any           `json:"default,omitempty"`
	Validator   ValidatorKind `json:"validator,omitempty"`
	Rule        string        `json:"rule,omitempty"`
	Description string        `json:"description,omitempty"`
}

// DefaultSchemaGenerator returns the built-in descriptor list generator.
func DefaultSchemaGenerator() SchemaGenerator {
	return descriptorGenerator{}
}

type descriptorGenerator struct{}

func (descriptorGenerator) Generate(descriptors []Descriptor) (SchemaDocument, error) {
	fields := make([]FieldDescriptor, 0, len(descriptors))
	for _, d := range descriptors {
		value, _ := d.Default()
		fields = append(fields, FieldDescriptor{
			URI:         d.URI(),
			Type:        d.Type().Name(),
			Policy:      d.Policy().String(),
			Default:     value,
			Validator:   d.Validator().Kind(),
			Rule:        d.Validator().Source(),
			Description: d.Description(),
		})
	}
	return SchemaDocument{
		Format:   SchemaFormatDescriptors,
		Document: fields,
	}, nil
}

// WithSchemaGenerator configures the generator used by Manager.Schema.
func WithSchemaGenerator(generator SchemaGenerator) Option {
	return func(cfg *managerConfig) {
		cfg.schemaGenerator = generator
	}
}

// Schema describes the registered descriptors in registration order.
func (m *Manager) Schema() (SchemaDocument, error) {
	generator := m.cfg.schemaGenerator
	if generator == nil {
		generator = DefaultSchemaGenerator()
	}
	return generator.Generate(m.registry.Descriptors())
}
