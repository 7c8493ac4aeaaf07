// Package bitmap provides the row set used by containers to track deleted
// elements, backed by a 32-bit Roaring Bitmap.
package bitmap
