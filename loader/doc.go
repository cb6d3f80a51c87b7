// Package loader reads and writes road graphs in the line-oriented text
// format used by the map extracts:
//
//	parentLon,parentLat:childLon,childLat,weight;childLon,childLat,weight;...
//
// One line describes one parent node and any number of weighted roads to
// child nodes. Every road is inserted in both directions. Nodes are created
// on first sight and reused afterwards (coordinates are matched at ten
// fractional digits, see core.Graph.AddNode).
//
// Parsing is forgiving:
//
//   - Blank lines and blank edge segments (a trailing ';') are ignored.
//   - A line without ':' declares the parent node only.
//   - A malformed parent skips the whole line.
//   - A malformed edge triple skips that triple only; the rest of the line
//     still applies.
//
// Every skip is logged as a warning on the configured *slog.Logger and
// counted in Stats. Only I/O failures are returned as errors.
package loader
