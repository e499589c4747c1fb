// Package app wires the host together: configuration, an isolated logger,
// manifest loading, module installation, and registry validation. Each App
// instance is self-contained, so tests can boot as many as they need
// without shared state.
package app
