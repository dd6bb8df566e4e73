// Package http implements the local facade of the agent.
//
// It exposes route wiring, request handlers, and middleware used by the
// loopback REST API that device software talks to. Cross-cutting concerns
// such as request tracing, access logging, response compression, and request
// metrics are handled in this package before requests are delegated to the
// service layer.
package http
