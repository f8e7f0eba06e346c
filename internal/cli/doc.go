// Package cli defines the Cobra command tree for the gene CLI. The root
// command creates a project; subcommands add single files to an existing
// project or manage settings. Commands only parse flags and format output;
// the work happens in internal/generator.
package cli
