// Package gen holds the types, chi router and strict server interface
// generated from spec/openapi.yaml. Regenerate with go generate after
// editing the spec; never edit api.gen.go by hand.
package gen

//go:generate oapi-codegen --config=cfg.yaml ../../../spec/openapi.yaml
