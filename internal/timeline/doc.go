// Package timeline serves the patient timeline: a fixed, in-memory ordered
// sequence of care events with type and limit filtering. The store is
// read-only after seeding; there is no persistence.
package timeline
