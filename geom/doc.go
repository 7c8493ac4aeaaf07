// Package geom provides the small value types stored inside mesh components:
// points, colors, texture coordinates and principal curvatures.
//
// These are plain values. They carry no references and are copied freely.
package geom
