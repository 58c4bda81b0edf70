// Command exactmat runs the factorization engines over problem-numbered
// matrix files in a directory:
//
//	exactmat [flags] {make_lu|lu_gauss|make_qr|qr_gauss|find_poly|gen} DIR PROBLEM
//
// Problem N reads AmatN.m (and bvecN.m for the solve operations) and
// writes LmatN.m/UmatN.m, QmatN.m/RmatN.m, xvecN.m or cvecN.m next to
// them. The solve operations reuse on-disk factors when they are still
// fresh for the current AmatN.m, and refactor otherwise.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/montanaflynn/stats"
)

var (
	repeat  = flag.Int("repeat", 1, "run the operation this many times and report timing statistics")
	seed    = flag.String("seed", "", "generation seed for the gen operation; empty uses system entropy")
	size    = flag.Int("size", 8, "matrix size for the gen operation")
	tridiag = flag.Bool("tridiag", false, "generate a tridiagonal matrix in the gen operation")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(),
		"usage: exactmat [flags] {make_lu|lu_gauss|make_qr|qr_gauss|find_poly|gen} DIR PROBLEM\n")
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 3 {
		usage()
		os.Exit(2)
	}

	operation := flag.Arg(0)
	dir := flag.Arg(1)
	problem, err := strconv.Atoi(flag.Arg(2))
	if err != nil {
		log.Fatalf("invalid problem number %q: %v", flag.Arg(2), err)
	}

	var op func(dir string, problem int) error
	switch operation {
	case "make_lu":
		op = makeLU
	case "lu_gauss":
		op = luGauss
	case "make_qr":
		op = makeQR
	case "qr_gauss":
		op = qrGauss
	case "find_poly":
		op = findPoly
	case "gen":
		op = generate
	default:
		log.Fatalf("%s: unknown operation", operation)
	}

	durations := make([]float64, 0, *repeat)
	for i := 0; i < *repeat; i++ {
		start := time.Now()
		if err := op(dir, problem); err != nil {
			log.Fatalf("Error: %v", err)
		}
		durations = append(durations, float64(time.Since(start).Microseconds()))
	}

	if *repeat > 1 {
		mean, _ := stats.Mean(durations)
		median, _ := stats.Median(durations)
		stddev, _ := stats.StandardDeviation(durations)
		fmt.Printf("%d runs: mean %.0fμs, median %.0fμs, stddev %.0fμs\n",
			*repeat, mean, median, stddev)
	}

	fmt.Println("Done!")
}
