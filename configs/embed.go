// Package configs provides the embedded configuration template for strfind.
//
// The template is embedded at build time with //go:embed so it ships with
// every distribution, source builds and binary releases alike. It is written
// out by `strfind config init` as .strfind.yaml.
package configs

import _ "embed"

// ConfigTemplate is the annotated template for .strfind.yaml.
//
//go:embed config.example.yaml
var ConfigTemplate string
