// Package chart renders measurement series as an SVG line chart.
//
// The chart layout lives in an embedded template asset, included at
// compile time for single-binary deployment. Geometry (point scaling,
// axis ticks, legend placement) is computed here; the template only lays
// out the precomputed shapes.
//
// Skipped readings produce gaps: line segments break at nil slots instead
// of interpolating across them, so the fixed-width time axis stays honest.
package chart
