// Package config manages user-level settings stored at ~/.gene/config.yaml.
// Values can also come from GENE_* environment variables, e.g. GENE_AUTHOR
// overrides the author key.
package config
