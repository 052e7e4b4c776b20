// Package models implements the population probability densities for
// gravitational-wave source parameters: redshift evolution, primary
// mass, and spin.
//
// Every model evaluates a density over its parameter, normalized
// against the model's support, not against the dataset it is handed.
// All array arithmetic goes through the active compute backend, read
// at call time, so a backend switch applies to instances constructed
// earlier.
//
// Redshift models carry a per-instance cache for the interpolated
// volume term; concurrent Probability calls on one instance race on
// that slot and must be serialized by the caller. Distinct instances
// are independent.
package models
