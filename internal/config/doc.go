// Package config loads, merges, and validates the configuration of the
// nurse-notes client and of the development Auth API server.
//
// Configuration is assembled from the following sources, later sources
// overriding non-zero fields of earlier ones:
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file (path taken from CONFIG or -c/-config)
//
// The entry points are [GetClientConfig] and [GetServerConfig], which map the
// merged [StructuredConfig] onto a validated per-binary view.
package config
