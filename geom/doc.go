// Package geom provides the geometry shared by display lists and the
// backend scene builder.
//
// Two coordinate systems are used:
//
//   - App units ([Au]), the integer unit layout works in. One CSS pixel is
//     [AuPerPx] app units.
//   - Layout pixels (float32), the unit the rendering backend consumes.
//
// Conversion is one way, from app units to layout pixels, through the
// ToLayout methods.
package geom
