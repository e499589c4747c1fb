// Package config defines the format-agnostic manifest model for the module
// host, along with the Loader interface for producing it from a concrete
// source format.
//
// The config.Model is the single source of truth the registry validates its
// Go registrations against. Concrete loaders, such as the HCL one, live in
// separate packages.
package config
