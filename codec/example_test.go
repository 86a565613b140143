package codec_test

import (
	"fmt"

	"github.com/katalvlaran/cliquecover/cliquecover"
	"github.com/katalvlaran/cliquecover/codec"
)

// ExampleDecodeGraph decodes the packed triangle and prints its single-clique
// partition as a result token.
func ExampleDecodeGraph() {
	adj, err := codec.DecodeGraph("AwAW")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	p := cliquecover.RunBest(adj, 1, nil)
	out, _ := codec.FormatPartition(p)
	fmt.Println(adj.Order(), adj.Edges())
	fmt.Println(out)

	// Output:
	// 3 3
	// AwAAAAEAAgA=
}
