// Package component defines lifecycle interfaces for long-lived pieces such
// as the HTTP client, and a Registry that starts them in order and stops
// them in reverse.
//
//   - Component: Name, Start, Stop, Health.
//   - Describable: optional one-line summary for startup output.
package component
