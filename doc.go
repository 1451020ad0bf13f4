// Package heatgrid turns two-dimensional numeric data into a color-shaded
// grid — a deterministic heatmap engine with no rendering, I/O, or UI
// concerns of its own.
//
// 🚀 What is heatgrid?
//
//	A small, pure library that brings together:
//		• Color scales: discrete breakpoint lookup & continuous interpolation
//		• Grid assembly: dense matrices and sparse positioned entries,
//		  normalized into one rectangular grid of optional cells
//		• Resolution: every position mapped to a concrete color, with
//		  NaN, missing-data and hover-darkening handled at resolve time
//		• Palettes: ready-made hue ramps, hex parsing, HCL gradients and
//		  data-driven breakpoint generators
//
// ✨ Why choose heatgrid?
//
//   - Total functions – NaN, ±Inf, empty scales and empty grids all have
//     defined outcomes; nothing panics on data
//   - Immutable values – scales and grids never change after construction,
//     safe to share across goroutines
//   - Deterministic – identical input always yields the identical grid
//
// Everything is organized under three subpackages:
//
//	scale/   — Color, Breakpoint, Discrete & Continuous scales, Darken/Lerp
//	grid/    — Cell, Grid, AssembleDense/AssembleSparse, Resolve, Selection
//	palette/ — built-in palettes, hex parsing, gradient & breakpoint helpers
//
// Quick sketch:
//
//	entries ──▶ grid.AssembleSparse ──▶ Grid ──▶ Grid.Resolve ──▶ colors
//	                                              ▲
//	                        scale.NewDiscrete ────┘
//
// The consumer (HTML table, terminal cells, image raster — out of scope
// here) walks the resolved grid and paints.
//
//	go get github.com/katalvlaran/heatgrid
package heatgrid
