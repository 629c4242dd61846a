// Package http contains the Gin HTTP handlers for the public API surface:
// catalog browsing/search, the patient timeline, and the chat simulation.
package http
