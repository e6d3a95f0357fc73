// Package schemas embeds the JSON Schemas used to shape-check imported documents.
package schemas

import _ "embed"

// AppData is the schema for the resume package (resume plus cover letter).
//
//go:embed app_data.schema.json
var AppData string

// Resume is the schema for a single resume.
//
//go:embed resume.schema.json
var Resume string
