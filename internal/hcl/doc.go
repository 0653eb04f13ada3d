// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It is responsible for file discovery, parsing, decoding into the
// schema structs, and translating them into the format-agnostic study.
package hcl
