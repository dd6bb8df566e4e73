// Package server runs the agent's loopback facade server.
//
// It owns the HTTP server lifecycle: startup, OS signal handling, and
// graceful shutdown so in-flight submissions finish before the process
// exits.
package server
