// entmin.go runs the variational search for each entry in the cartesian
// product of a collection of tuning parameters, e.g. mixing angle and
// penalty strength, and outputs a CSV of the converged cost and diagnostics
// for each combination. The fixed input state is (|0⟩+|1⟩)/√2.
package main

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"os"

	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/photonlab/entmin/entmin"
	"github.com/photonlab/entmin/entmin/fock"
)

var (
	cutoff = flag.Int("cutoff", 30, "The Fock-basis truncation dimension.")
	thetas = flag.Float64Slice("thetas", []float64{math.Pi / 4},
		"The beamsplitter mixing angles to sweep.")
	penalties = flag.Float64Slice("penalties", []float64{entmin.DefaultPenaltyStrength},
		"The zero-displacement penalty strengths to sweep.")
	iters = flag.Int("iters", entmin.DefaultIters,
		"The fixed iteration budget per run.")
	rate     = flag.Float64("rate", entmin.DefaultLearnRate, "The Adam base step size.")
	seed     = flag.Int64("seed", 42, "The seed for the random initial guess.")
	traceOut = flag.String("trace-out", "",
		"If non-empty, a path to dump the per-run cost traces as JSON.")
)

const header = "Theta, Penalty, Cost, MeanPhotons, Squeezing, FinalNorm, Last50Mean, Last50Spread"

// A runDump pairs a parameterization with its cost trace for the JSON dump.
type runDump struct {
	Theta   float64   `json:"theta"`
	Penalty float64   `json:"penalty"`
	Iters   int       `json:"iters"`
	Cost    float64   `json:"cost"`
	Trace   []float64 `json:"trace"`
}

func main() {
	flag.Parse()
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	fmt.Println(header)
	var dumps []runDump
	for _, theta := range *thetas {
		for _, penalty := range *penalties {
			res, err := entmin.Optimize(entmin.Opts{
				Cutoff:          *cutoff,
				Theta:           theta,
				Fixed:           fock.Superposition01(*cutoff),
				PenaltyStrength: penalty,
				Iters:           *iters,
				LearnRate:       *rate,
				Rand:            rand.New(rand.NewSource(*seed)),
				Logger:          &logger,
			})
			if err != nil {
				logger.Fatal().Err(err).
					Float64("theta", theta).Float64("penalty", penalty).
					Msg("optimization failed")
			}
			tail := res.Trace
			if len(tail) > 50 {
				tail = tail[len(tail)-50:]
			}
			fmt.Printf("%.4f, %.1f, %.6f, %.4f, %.4f, %.6f, %.6f, %.2e\n",
				theta, penalty, res.Cost, res.MeanPhotons, res.Squeezing,
				res.FinalNorm, stat.Mean(tail, nil), floats.Max(tail)-floats.Min(tail))
			dumps = append(dumps, runDump{
				Theta:   theta,
				Penalty: penalty,
				Iters:   *iters,
				Cost:    res.Cost,
				Trace:   res.Trace,
			})
		}
	}

	if *traceOut == "" {
		return
	}
	buf, err := json.Marshal(dumps)
	if err != nil {
		logger.Fatal().Err(err).Msg("marshalling traces")
	}
	if err := os.WriteFile(*traceOut, buf, 0644); err != nil {
		logger.Fatal().Err(err).Msg("writing traces")
	}
}
