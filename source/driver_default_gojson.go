// Package source switches the process-wide JSON driver to goccy/go-json when
// imported for side effects (build with -tags gojson for the real driver).
package source

import (
	schemanode "github.com/reoring/schemanode"
	drvgojson "github.com/reoring/schemanode/source/gojson"
)

// init in a separate package to avoid import cycle in root. This sets go-json as default driver.
func init() { schemanode.SetJSONDriver(drvgojson.Driver()) }
