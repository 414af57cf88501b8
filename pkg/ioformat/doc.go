// Package ioformat saves and loads the two external file formats a route
// search consumes and produces: a map descriptor (the placed tiles and
// tokens a search runs against) and a routes report (the outcome of an
// optimiser run), both YAML, matching the teacher's config-file convention
// of plain structs tagged for gopkg.in/yaml.v3.
package ioformat
