// Package hash provides the checksum of snapshot bodies.
//
// Snapshots use CRC32-Castagnoli (CRC32C). Go's crc32 package uses the
// hardware instructions on x86-64 (SSE4.2) and arm64 when available.
//
//	checksum := hash.CRC32C(body)
//
// CRC32C detects accidental corruption only; it is not a cryptographic
// digest.
package hash
