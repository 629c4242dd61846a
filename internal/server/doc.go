// Package server wires the application together.
//
// Lifecycle:
//  1. Load configuration from the environment
//  2. Initialize the logger (production or development)
//  3. Create the metrics collector and catalog service
//  4. Seed the timeline store and chat responder
//  5. Set up routes and middleware (recovery, request IDs, metrics,
//     CORS, rate limiting)
//  6. Serve until a shutdown signal arrives
package server
