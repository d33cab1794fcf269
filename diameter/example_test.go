package diameter_test

import (
	"fmt"

	"github.com/AnacletoLAB/ensmallen-sub003/diameter"
	"github.com/AnacletoLAB/ensmallen-sub003/gen"
)

// ExampleDiameter computes the exact diameter of the path graph
// 0—1—2—3—4 through the iFUB fast path.
func ExampleDiameter() {
	g, _ := gen.Path(5)
	d, _ := diameter.Diameter(g)
	fmt.Println("diameter:", d)
	// Output: diameter: 4
}

// ExampleFourSweep shows the cheap lower bound on the same graph; on a
// path the four sweeps land exactly on the true diameter.
func ExampleFourSweep() {
	g, _ := gen.Path(5)
	lower, _, _ := diameter.FourSweep(g)
	fmt.Println("lower bound:", lower)
	// Output: lower bound: 4
}
