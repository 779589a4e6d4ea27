// Package geo adapts the A* search to graphs whose nodes sit on the Earth's
// surface, such as road networks.
//
// What:
//
//   - Position is a WGS84 latitude/longitude pair in degrees.
//   - Index snaps arbitrary positions to the nearest graph node using an
//     R-tree, refined by great-circle distance.
//   - GreatCircle is a heuristic estimating the remaining cost as the
//     great-circle distance divided by the number of meters per cost unit.
//     It is admissible whenever no edge is cheaper than its own
//     great-circle length under the same scale.
//   - EncodePath renders a found path as a Google encoded polyline.
//   - Route ties these together: snap both ends, search, encode.
//
// Complexity:
//
//   - NewIndex: O(n log n). Nearest: O(log n) expected.
//   - GreatCircle estimate: O(1) per call.
//   - EncodePath: O(len(path)).
package geo
