// Package registry provides the central glue for the module system.
//
// The Registry stores the loaded module objects: for each module name, a
// Handle mapping exported callable names to the compiled Go functions that
// implement them. It also holds the parsed, format-agnostic manifest
// definitions for those modules.
//
// During startup the registry is populated by each module's Register entry
// point and then validated, so that a mismatch between a module's manifest
// and its Go surface is caught before anything is invoked.
package registry
