// Package manifest handles the gene.yaml file that describes a template set:
// which top-level files to render, which directories to create, and which
// template backs each generated file category. Manifests are validated
// against an embedded JSON Schema before use.
package manifest
