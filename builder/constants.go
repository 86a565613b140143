// SPDX-License-Identifier: MIT
// Package: cliquecover/builder

package builder

// Method tags used as error-context prefixes.
const (
	methodEmpty        = "Empty"
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"
	methodDisjoint     = "Disjoint"
	methodCycle        = "Cycle"
	methodPath         = "Path"
	methodStar         = "Star"

	methodCompleteBipartite = "CompleteBipartite"
	methodBuild             = "Build"
)

// Parameter domains.
const (
	// MaxVertices is the largest order representable by a uint16 vertex count.
	MaxVertices = 1<<16 - 1

	minVertices = 0
	minPartSize = 1
	probMin     = 0.0
	probMax     = 1.0
)
