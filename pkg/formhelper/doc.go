// Package formhelper is the form-building helper facade: it resolves field
// type names to field classes (built-in table plus config-registered custom
// types), serializes attribute bags, translates or humanizes labels, merges
// per-field validation rules, normalizes bracketed field names into dot
// paths, guards reserved names, and flattens model-like values. It stores
// the view renderer and translator the surrounding form layer hands it and
// exposes them back untouched; rendering itself happens elsewhere.
package formhelper
