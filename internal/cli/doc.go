// Package cli parses command-line arguments into the application's Config.
// It validates user input and reports failures as ExitError values carrying
// the process exit code.
package cli
