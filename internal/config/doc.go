// Package config provides configuration loading, merging, and validation
// facilities for the agent.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win; later sources only fill fields still unset):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// The main entry point is [GetAgentConfig], which merges all sources and
// projects the view the agent runtime consumes.
package config
