// Package rtree computes disk usage for a target path.
//
// For a directory it reports one item per immediate child, walking each
// subdirectory with fastwalk to sum the sizes of the regular files below it.
// Children are processed by a bounded worker pool, one subtree per worker.
// Errors below the target are tolerated: permission errors are skipped
// silently and anything else is reported as a warning.
package rtree
