// Package builder defines shared constants used by layer builders, ensuring
// consistent defaults and validation across all constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodRandom is the canonical name for the Random constructor.
	MethodRandom = "Random"
	// MethodClusters is the canonical name for the Clusters constructor.
	MethodClusters = "Clusters"
	// MethodStatic is the canonical name for the Static constructor.
	MethodStatic = "Static"
)

//-----------------------------------------------------------------------------
// Minimum Agent Counts
//-----------------------------------------------------------------------------

// MinRandomAgents is the smallest population for Random: one agent cannot
// have a partner without a self-loop.
const MinRandomAgents = 2

// MinClusterAgents is the smallest population for Clusters.
const MinClusterAgents = 1

// MinClusterSize is the size every drawn cluster is raised to.
const MinClusterSize = 1

//-----------------------------------------------------------------------------
// Sampling
//-----------------------------------------------------------------------------

// poissonNormalCutoff is the mean above which Poisson draws switch from
// Knuth's product method to a rounded normal approximation.
const poissonNormalCutoff = 30.0

// maxRedraws bounds the self-loop redraw loop of Random.
const maxRedraws = 64
