/*
Package pixel provides the canonical 4-axis pixel array used by all
conversion packages in this repository, together with dimension
inference, shape normalization, and coordinate-to-offset indexing.

A PixelArray always has exactly four axes in fixed order: width (x),
height (y), depth (z), and channel (c).  Storage is a flat float64
sequence in row-major order with x varying fastest, then y, z, and c.

All operations are synchronous and pure: each call is a bounded function
of its inputs, allocates its own results, and never mutates caller-owned
data, so independent calls may be run concurrently without locking.

Heuristic results (guessed dimensions, inferred axis meaning) are not
errors.  They succeed but carry an Advisory so callers can tell that a
guess rather than an explicit specification determined the result.
*/
package pixel
