// Package assets carries the data files compiled into the binary.
package assets

import _ "embed"

// DefaultCatalog is the country catalog compiled into the binary. The
// bot falls back to it when no catalog file exists at the configured
// path.
//
//go:embed data/countries.json
var DefaultCatalog []byte
