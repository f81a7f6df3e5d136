package eval_test

import (
	"fmt"

	"github.com/netgenlab/synthnet/eval"
	"github.com/netgenlab/synthnet/matrix"
)

// ExampleEvaluate scores a synthetic network that happens to be identical
// to the observed one: every KS statistic, and therefore the energy, is 0.
func ExampleEvaluate() {
	// Observed: the path 0—1—2—3.
	observed, _ := matrix.NewSquare(4)
	_ = matrix.SetEdge(observed, 0, 1)
	_ = matrix.SetEdge(observed, 1, 2)
	_ = matrix.SetEdge(observed, 2, 3)

	// Uniform unit distances between distinct nodes.
	d, _ := matrix.NewSquare(4)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if i != j {
				_ = d.Set(i, j, 1)
			}
		}
	}

	res, err := eval.Evaluate(observed, observed.Clone(), d)
	if err != nil {
		fmt.Println("evaluate:", err)
		return
	}

	fmt.Println("energy:", res.Energy)
	// Output:
	// energy: 0
}
