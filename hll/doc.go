// Package hll implements a compact HyperLogLog cardinality sketch used
// as the per-node neighborhood estimator of the hyperball package.
//
// What
//
//   - New: a sketch with 2^precision registers of 5 or 6 bits each,
//     packed into uint32 words; unsupported combinations are rejected
//     with ErrUnsupportedConfig.
//   - Insert: hashes an item with xxhash and keeps the per-register
//     maximum rank; inserting a duplicate never changes the sketch.
//   - Union: per-register maximum merge, the sketch equivalent of set
//     union.
//   - Estimate: alpha-corrected harmonic-mean estimate with
//     linear-counting correction in the small range.
//   - Equal / Clone / CopyFrom: structural helpers; Equal doubles as
//     the fixed-point test for iterated unions, since union is
//     monotone per register.
//
// Accuracy
//
//	The relative standard error of the raw estimator is about
//	1.04/sqrt(2^precision): precision 12 gives roughly 1.6%. The 5-bit
//	register width saturates ranks above 31, which is safe for
//	cardinalities well beyond 2^31 at the supported precisions.
//
// Complexity (m = 2^precision registers)
//
//   - Insert:          O(1)
//   - Union, Estimate: O(m)
//   - Memory:          m*bits/8 bytes, packed
package hll
