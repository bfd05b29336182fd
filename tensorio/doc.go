// Package tensorio serializes rank-1 covariant tensors (linear
// functionals) to and from files: one CSV row of injectively encoded
// fields, or an Arrow IPC stream with one float64 column.
//
// Both writers accept only the rank-1 covariant shape; anything else —
// higher rank, contravariant, or a construction failure — writes nothing
// and reports zero rows, never an error. Readers consume only the first
// row or record batch. Environment faults (missing files, undecodable
// rows) surface as ordinary Go errors, never as Err tensors.
package tensorio
