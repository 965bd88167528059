// example.go
package qphase

import (
	"context"
	"fmt"
	"math"
)

// Example demonstrates usage of the estimator against the reference backend
func Example() {
	// Estimate a single known eigenphase
	eigenstate := NewEigenstate(1)
	oracle := RotationOracle(math.Pi / 3)

	estimate, err := EstimatePhase(8, oracle, eigenstate)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Estimated phase: %f (true %f)\n", estimate, math.Pi/3)

	// Sweep a grid of phases concurrently; each request runs independently
	// with its own ancilla and random source
	requests := make([]SweepRequest, 0, 10)
	for k := 0; k < 10; k++ {
		phi := 2 * math.Pi * float64(k-5) / 12
		requests = append(requests, SweepRequest{
			ID:            fmt.Sprintf("phase_%d", k),
			BitsPrecision: 10,
			Oracle:        RotationOracle(phi),
			Eigenstate:    NewEigenstate(1),
		})
	}

	for _, result := range Sweep(context.Background(), requests, 4) {
		if result.Error != nil {
			fmt.Printf("%s failed: %v\n", result.ID, result.Error)
			continue
		}
		fmt.Printf("%s estimated at %f\n", result.ID, result.Estimate)
	}
}
