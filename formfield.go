// Package formfield re-exports the helper facade and its collaborator
// contracts so most consumers only import the module root.
package formfield

import (
	internalconfig "github.com/goliatone/go-formfield/internal/config"
	"github.com/goliatone/go-formfield/pkg/fieldtypes"
	"github.com/goliatone/go-formfield/pkg/formhelper"
	"github.com/goliatone/go-formfield/pkg/htmlattr"
	"github.com/goliatone/go-formfield/pkg/i18n"
	"github.com/goliatone/go-formfield/pkg/rules"
	"github.com/goliatone/go-formfield/pkg/view"
)

// Helper is the form-building helper facade.
type Helper = formhelper.Helper

// Option configures a Helper during construction.
type Option = formhelper.Option

// ConfigSource is the dotted-path configuration contract the helper reads.
type ConfigSource = formhelper.ConfigSource

// Translator is the consumed translation contract.
type Translator = i18n.Translator

// FieldClass identifies the rendering implementation behind a type name.
type FieldClass = fieldtypes.FieldClass

// Attributes is the ordered attribute bag the serializer consumes.
type Attributes = htmlattr.Attributes

// RuleSet is the merged validation triple.
type RuleSet = rules.RuleSet

// New constructs a Helper around the supplied collaborators.
func New(views view.Renderer, translator i18n.Translator, cfg ConfigSource, options ...Option) (*Helper, error) {
	return formhelper.New(views, translator, cfg, options...)
}

// WithLogger forwards the logger option from the root package.
var WithLogger = formhelper.WithLogger

// WithRegistry forwards the registry option from the root package.
var WithRegistry = formhelper.WithRegistry

// WithThemeSelection forwards the theme option from the root package.
var WithThemeSelection = formhelper.WithThemeSelection

// LoadConfig reads a YAML configuration file (with .env pre-loading and
// ${VAR} expansion) into a ConfigSource.
func LoadConfig(path string, envFiles ...string) (ConfigSource, error) {
	return internalconfig.Load(path, envFiles...)
}

// ConfigFromMap wraps an in-process configuration map.
func ConfigFromMap(values map[string]any) ConfigSource {
	return internalconfig.FromMap(values)
}

// Attrs returns an empty attribute bag, saving the htmlattr import for
// quick call sites.
func Attrs() *htmlattr.Attributes {
	return htmlattr.New()
}
