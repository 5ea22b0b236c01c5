// Package config provides configuration loading, merging, and validation
// facilities for the engagement-pulse client.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetClientConfig]. Request timeouts and retry
// limits are compile-time constants of the apiclient package and are not
// part of the configuration surface.
package config
