package settings

import "fmt"

// Policy describes how a descriptor behaves when the source omits it.
type Policy int

const (
	// PolicyOptional leaves absent options unresolved.
	PolicyOptional Policy = iota
	// PolicyRequired fails Load when the option is absent.
	PolicyRequired
	// PolicyDefault resolves absent options to the declared default.
	PolicyDefault
)

func (p Policy) String() string {
	switch p {
	case PolicyRequired:
		return "required"
	case PolicyDefault:
		return "default"
	default:
		return "optional"
	}
}

// Descriptor declares one configuration option.
type Descriptor struct {
	uri          string
	typ          Type
	validator    Validator
	policy       Policy
	defaultValue any
	description  string
}

// DescriptorOption configures a Descriptor during NewDescriptor.
type DescriptorOption func(*descriptorConfig)

type descriptorConfig struct {
	typ          Type
	validator    Validator
	required     bool
	hasDefault   bool
	defaultValue any
	description  string
}

// WithType sets the expected type. Descriptors default to String.
func WithType(t Type) DescriptorOption {
	return func(cfg *descriptorConfig) {
		cfg.typ = t
	}
}

// WithValidator attaches a custom validator applied after the type check.
func WithValidator(v Validator) DescriptorOption {
	return func(cfg *descriptorConfig) {
		cfg.validator = v
	}
}

// Required marks the option as mandatory. It cannot be combined with
// WithDefault.
func Required() DescriptorOption {
	return func(cfg *descriptorConfig) {
		cfg.required = true
	}
}

// WithDefault sets the value used when the source omits the option. nil is
// a valid default.
func WithDefault(value any) DescriptorOption {
	return func(cfg *descriptorConfig) {
		cfg.hasDefault = true
		cfg.defaultValue = value
	}
}

// WithDescription attaches documentation surfaced by schema generators.
func WithDescription(description string) DescriptorOption {
	return func(cfg *descriptorConfig) {
		cfg.description = description
	}
}

// NewDescriptor builds a Descriptor for uri, conventionally "<domain>/<name>".
func NewDescriptor(uri string, opts ...DescriptorOption) (Descriptor, error) {
	cfg := descriptorConfig{typ: String}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if uri == "" {
		return Descriptor{}, fmt.Errorf("%w: uri must not be empty", ErrInvalidDescriptor)
	}
	if cfg.required && cfg.hasDefault {
		return Descriptor{}, fmt.Errorf("%w: option %q cannot be required and have a default value", ErrInvalidDescriptor, uri)
	}
	if cfg.typ.isZero() {
		cfg.typ = String
	}

	policy := PolicyOptional
	switch {
	case cfg.required:
		policy = PolicyRequired
	case cfg.hasDefault:
		policy = PolicyDefault
	}

	return Descriptor{
		uri:          uri,
		typ:          cfg.typ,
		validator:    cfg.validator,
		policy:       policy,
		defaultValue: cfg.defaultValue,
		description:  cfg.description,
	}, nil
}

// MustDescriptor is NewDescriptor that panics on error.
func MustDescriptor(uri string, opts ...DescriptorOption) Descriptor {
	d, err := NewDescriptor(uri, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

// URI returns the option identifier, "<domain>/<name>" by convention.
func (d Descriptor) URI() string { return d.uri }

// Type returns the expected value type.
func (d Descriptor) Type() Type { return d.typ }

// Validator returns the custom validator, the zero Validator when none is set.
func (d Descriptor) Validator() Validator { return d.validator }

// Policy reports how an absent option is resolved.
func (d Descriptor) Policy() Policy { return d.policy }

// Required reports whether Load fails when the option is absent.
func (d Descriptor) Required() bool { return d.policy == PolicyRequired }

// Description returns the documentation attached with WithDescription.
func (d Descriptor) Description() string { return d.description }

// Default returns the declared default and whether one was declared.
func (d Descriptor) Default() (any, bool) {
	if d.policy != PolicyDefault {
		return nil, false
	}
	return d.defaultValue, true
}

// Validate checks value against the expected type and then the validator.
// Failures are returned as *ValidationError carrying the descriptor URI.
func (d Descriptor) Validate(value any) error {
	if !d.typ.Check(value) {
		return &ValidationError{
			URI:    d.uri,
			Value:  value,
			Reason: fmt.Sprintf("not an instance of %s", d.typ.Name()),
		}
	}
	if err := d.validator.apply(value); err != nil {
		return wrapValidationError(d.uri, value, err)
	}
	return nil
}
