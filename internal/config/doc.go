// Package config provides configuration loading, merging, and validation
// facilities for the toolbox-vault processes.
//
// Configuration is assembled from multiple sources; later sources override
// earlier non-zero fields:
//  1. Built-in defaults
//  2. JSON5 config file
//  3. Environment variables (TOOLBOX_ prefix)
//  4. Command-line flags
//
// The main entry points are [GetHostConfig] for the host process and
// [GetCallerConfig] for the render-side caller.
package config
