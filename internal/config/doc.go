// Package config provides configuration loading, merging, and validation
// for the user-directory server and client.
//
// Configuration is assembled from multiple sources. Earlier sources win
// over later ones for non-zero fields:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetServerConfig] and [GetClientConfig], both
// built on top of [GetStructuredConfig].
package config
