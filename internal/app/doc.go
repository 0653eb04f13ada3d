// Package app contains the core application logic. It turns a loaded study
// into a variable catalog, shared relations and models, evaluates every
// model and comparison, and renders the report, decoupled from any specific
// entrypoint like a CLI or server.
package app
