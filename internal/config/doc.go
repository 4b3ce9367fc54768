// Package config provides configuration loading, merging, and validation
// facilities for the portfolio server and the admin client.
//
// Configuration is assembled from multiple sources. For every field the
// first source that sets a non-zero value wins:
//  1. Environment variables (a .env file in the working directory is loaded
//     first and never overrides variables that are already set)
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the admin client.
package config
