// Package hcl implements the config.Loader interface for HCL manifest
// files. It parses `module` blocks with hclparse, decodes them into the
// schema structs, and translates the result into the format-agnostic
// config model.
package hcl
