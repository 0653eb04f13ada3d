// Package config defines the format-agnostic description of a study: the
// variables, the relations and models built over them, and the comparisons to
// run between models, along with the Loader interface that produces it.
//
// The `config.Study` is the single source of truth for the `app` package.
// Concrete implementations of the Loader, such as for HCL, are provided in
// separate packages.
package config
