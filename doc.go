// Package gridpath finds shortest paths on four-connected passability grids.
//
// It exposes the following entry points:
//
//   - FindPath: fill a caller-provided buffer with the path and return its length.
//   - Search: run the algorithm to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//   - SearchAll: run many independent searches over one grid in parallel.
//
// The search is best-first, ordered by distance travelled plus Manhattan
// distance to the goal, with ties broken by row and then column. Neighbours
// are visited west, north, east, south, and the path is recovered by walking
// the distance map back from the goal in that same order, so results are
// deterministic. The engine holds no state between calls and never logs.
package gridpath
