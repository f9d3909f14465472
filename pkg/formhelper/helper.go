package formhelper

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/goliatone/go-formfield/pkg/fieldtypes"
	"github.com/goliatone/go-formfield/pkg/htmlattr"
	"github.com/goliatone/go-formfield/pkg/i18n"
	"github.com/goliatone/go-formfield/pkg/modelconv"
	"github.com/goliatone/go-formfield/pkg/naming"
	"github.com/goliatone/go-formfield/pkg/rules"
	"github.com/goliatone/go-formfield/pkg/view"
)

// ConfigSource is the consumed configuration contract: a nested mapping
// read through dotted-path lookups with a default fallback.
type ConfigSource interface {
	Get(key string, def any) any
}

// customFieldsKey is the configuration section mapping custom type names
// to field-class identifiers, registered at construction.
const customFieldsKey = "custom_fields"

// Helper bundles the per-request form helpers around shared collaborators.
type Helper struct {
	views      view.Renderer
	translator i18n.Translator
	config     ConfigSource
	types      *fieldtypes.Registry
	theme      *themeDefaults
	logger     *zap.Logger
}

// New constructs a Helper and registers every `custom_fields` entry found
// in the configuration source. Duplicate custom names fail construction.
func New(views view.Renderer, translator i18n.Translator, cfg ConfigSource, options ...Option) (*Helper, error) {
	helper := &Helper{
		views:      views,
		translator: translator,
		config:     cfg,
		types:      fieldtypes.NewRegistry(),
		logger:     zap.NewNop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(helper)
		}
	}

	if cfg != nil {
		custom := stringMap(cfg.Get(customFieldsKey, nil))
		names := make([]string, 0, len(custom))
		for name := range custom {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if err := helper.RegisterCustomField(name, fieldtypes.FieldClass(custom[name])); err != nil {
				return nil, fmt.Errorf("formhelper: configure custom fields: %w", err)
			}
		}
	}
	return helper, nil
}

// RegisterCustomField adds a custom type name to the registry. Custom
// names shadow built-ins on resolution; registering a name twice fails.
func (h *Helper) RegisterCustomField(name string, class fieldtypes.FieldClass) error {
	if err := h.types.Register(name, class); err != nil {
		return err
	}
	h.logger.Debug("registered custom field type",
		zap.String("type", name),
		zap.String("class", string(class)),
	)
	return nil
}

// FieldType resolves a type name to its field class, custom types first.
func (h *Helper) FieldType(name string) (fieldtypes.FieldClass, error) {
	class, err := h.types.Resolve(name)
	if err != nil {
		h.logger.Debug("field type resolution failed", zap.String("type", name), zap.Error(err))
		return "", err
	}
	return class, nil
}

// Types exposes the registry for callers that resolve repeatedly.
func (h *Helper) Types() *fieldtypes.Registry {
	return h.types
}

// AttributesToString serializes an attribute bag into markup form.
func (h *Helper) AttributesToString(attrs *htmlattr.Attributes) string {
	return attrs.String()
}

// FormatLabel translates a field name when the catalogue has it, falling
// back to humanized snake_case.
func (h *Helper) FormatLabel(name string) string {
	return i18n.Label(h.translator, name)
}

// MergeRules unions validation rule sets across fields, later fields
// winning on collisions.
func (h *Helper) MergeRules(providers ...rules.Provider) rules.RuleSet {
	return rules.Merge(providers...)
}

// DotPath converts a bracketed field name into dot-path notation.
func (h *Helper) DotPath(name string) string {
	return naming.DotPath(name)
}

// ValidateFieldName rejects blank and reserved field names, naming the
// owning form in the error.
func (h *Helper) ValidateFieldName(name, owner string) error {
	return naming.Validate(name, owner)
}

// ConvertModel flattens convertible records, materializes collections, and
// passes everything else through.
func (h *Helper) ConvertModel(value any) any {
	return modelconv.Convert(value)
}

// Views returns the stored view renderer.
func (h *Helper) Views() view.Renderer {
	return h.views
}

// Translator returns the stored translator.
func (h *Helper) Translator() i18n.Translator {
	return h.translator
}

// Config returns the stored configuration source.
func (h *Helper) Config() ConfigSource {
	return h.config
}

// ConfigValue reads a dotted-path configuration value with a default.
func (h *Helper) ConfigValue(key string, def any) any {
	if h.config == nil {
		return def
	}
	return h.config.Get(key, def)
}

func stringMap(raw any) map[string]string {
	switch node := raw.(type) {
	case nil:
		return nil
	case map[string]string:
		return node
	case map[string]any:
		out := make(map[string]string, len(node))
		for name, value := range node {
			if str, ok := value.(string); ok {
				out[name] = str
			}
		}
		return out
	case map[any]any:
		out := make(map[string]string, len(node))
		for key, value := range node {
			name, nameOK := key.(string)
			str, valueOK := value.(string)
			if nameOK && valueOK {
				out[name] = str
			}
		}
		return out
	default:
		return nil
	}
}
