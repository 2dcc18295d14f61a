// Package builder defines shared constants used by the constructors, ensuring
// consistent validation across topologies.
package builder

//-----------------------------------------------------------------------------
// Constructor Method Names
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodCompleteBipartite is the canonical name for the CompleteBipartite constructor.
	MethodCompleteBipartite = "CompleteBipartite"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodFromEdges is the canonical name for the FromEdges constructor.
	MethodFromEdges = "FromEdges"
)

//-----------------------------------------------------------------------------
// Size Bounds
//-----------------------------------------------------------------------------

// MaxVertices bounds every constructor. A Max-Cut instance on n vertices
// needs a 2^n-entry state vector, so anything wider is never simulated.
const MaxVertices = 30

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
const MinCycleNodes = 3

// MinPathNodes is the smallest meaningful size for a simple path.
const MinPathNodes = 2

// MinStarNodes is the smallest meaningful size for a star (center + 1 leaf).
const MinStarNodes = 2

// MinWheelNodes is the smallest wheel: an outer 3-cycle plus the hub.
const MinWheelNodes = 4

// MinGridDim is the smallest allowed dimension (rows or cols) for a 2D grid.
// A 1×1 grid has no edges but is valid.
const MinGridDim = 1

// MinProbability is the inclusive lower bound of RandomSparse's p.
const MinProbability = 0.0

// MaxProbability is the inclusive upper bound of RandomSparse's p.
const MaxProbability = 1.0
