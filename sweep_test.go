package qphase

import (
	"context"
	"fmt"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSweep(t *testing.T) {
	Convey("Given a batch of independent estimation requests", t, func() {
		phases := make([]float64, 6)
		requests := make([]SweepRequest, 6)
		for k := range requests {
			phases[k] = 2 * math.Pi * float64(k-3) / 8
			requests[k] = SweepRequest{
				ID:            fmt.Sprintf("phase_%d", k),
				BitsPrecision: 8,
				Oracle:        RotationOracle(phases[k]),
				Eigenstate:    NewEigenstate(1),
				Seed:          int64(100 + k),
			}
		}

		Convey("It should resolve every request, in request order", func() {
			results := Sweep(context.Background(), requests, 3)
			So(len(results), ShouldEqual, len(requests))

			failures := 0
			for k, result := range results {
				So(result.ID, ShouldEqual, requests[k].ID)
				So(result.Error, ShouldBeNil)
				if math.Abs(result.Estimate-phases[k]) >= 0.05 {
					failures++
				}
			}
			So(failures, ShouldBeLessThanOrEqualTo, 1)
		})

		Convey("A single worker should degrade to sequential execution", func() {
			results := Sweep(context.Background(), requests[:2], 1)
			So(results[0].Error, ShouldBeNil)
			So(results[1].Error, ShouldBeNil)
		})

		Convey("Seeded requests should be reproducible across sweeps", func() {
			first := Sweep(context.Background(), requests, 2)
			second := Sweep(context.Background(), requests, 4)
			for k := range first {
				So(first[k].Estimate, ShouldEqual, second[k].Estimate)
			}
		})

		Convey("A cancelled context should fail the batch without partial estimates", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			results := Sweep(ctx, requests, 2)
			So(len(results), ShouldEqual, len(requests))
			for k, result := range results {
				So(result.ID, ShouldEqual, requests[k].ID)
				So(result.Error, ShouldNotBeNil)
				So(result.Estimate, ShouldEqual, 0)
			}
		})

		Convey("An invalid request should fail alone, not the batch", func() {
			mixed := append([]SweepRequest{}, requests...)
			mixed[2].BitsPrecision = 0

			results := Sweep(context.Background(), mixed, 3)
			So(results[2].Error, ShouldNotBeNil)
			for k, result := range results {
				if k == 2 {
					continue
				}
				So(result.Error, ShouldBeNil)
			}
		})
	})
}
