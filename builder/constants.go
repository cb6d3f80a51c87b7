// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodLine is the canonical name for the Line constructor.
	MethodLine = "Line"
	// MethodRandomGeometric is the canonical name for the RandomGeometric constructor.
	MethodRandomGeometric = "RandomGeometric"

	// MethodRaster is the canonical name for the Raster constructor.
	MethodRaster = "Raster"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinGridDim is the smallest allowed dimension (rows or cols) for a Grid.
// A grid of size 1×1 has no edges, but is considered valid.
const MinGridDim = 1

// MinLineNodes is the smallest meaningful size for a Line.
// A line of fewer than 2 nodes has no edges.
const MinLineNodes = 2

// MinRandomNodes is the smallest node count accepted by RandomGeometric.
const MinRandomNodes = 1

//-----------------------------------------------------------------------------
// Geometry
//-----------------------------------------------------------------------------

// defaultStep is the lattice spacing in degrees (~1.1 km of latitude).
const defaultStep = 0.01

// minStep keeps distinct lattice points distinct in the 1e-10 coordinate index.
const minStep = 1e-9
