// Command server runs the CareMixer API: patient timeline, chat
// simulation, and the external catalog cache-and-search layer.
package main
