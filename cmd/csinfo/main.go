// Command csinfo prints diagnostics of Fourier-wavelet sensing operators.
//
// For every selected wavelet it builds a sampling pattern, constructs the
// operator A = P F W* and reports how well A and its adjoint agree, how far
// A* A is from the identity and the dominant eigenvalue of A* A. It also
// reports how much energy of a smooth test image the pattern captures and how
// much of the image's wavelet energy sits in the approximation band.
//
// Usage:
//
//	csinfo [flags] [wavelet-name ...]
//
// Without arguments it prints diagnostics for all known wavelets.
//
// Examples:
//
//	csinfo haar db4
//	csinfo -size 128 -levels 4 -pattern gaussian -rate 0.2
//	csinfo -pattern line -lines 48 db2
//	csinfo -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-sensing/dsp/fourier"
	"github.com/cwbudde/algo-sensing/dsp/pattern"
	"github.com/cwbudde/algo-sensing/dsp/sensing"
	"github.com/cwbudde/algo-sensing/dsp/tensor"
	"github.com/cwbudde/algo-sensing/dsp/wavelet"
	"github.com/cwbudde/algo-sensing/measure/adjoint"
	"github.com/cwbudde/algo-sensing/measure/eigen"
	"github.com/cwbudde/algo-sensing/stats/kspace"
	"github.com/cwbudde/algo-sensing/stats/subband"
)

var errUsage = errors.New("csinfo: invalid arguments")

type config struct {
	size    int
	levels  int
	pattern string
	rate    float64
	lines   int
	iter    int
	seed    int64
	trials  int
}

func main() {
	var cfg config
	flag.IntVar(&cfg.size, "size", 64, "grid size (power of two)")
	flag.IntVar(&cfg.levels, "levels", 3, "wavelet decomposition levels")
	flag.StringVar(&cfg.pattern, "pattern", "uniform", "sampling pattern: uniform, gaussian, level, line")
	flag.Float64Var(&cfg.rate, "rate", 0.3, "target sampling rate for uniform, gaussian and level patterns")
	flag.IntVar(&cfg.lines, "lines", 32, "number of radial lines for the line pattern")
	flag.IntVar(&cfg.iter, "iter", 50, "power iterations for the eigenvalue estimate")
	flag.Int64Var(&cfg.seed, "seed", 1, "random seed for patterns and test vectors")
	flag.IntVar(&cfg.trials, "trials", 3, "dot-test trials")
	list := flag.Bool("list", false, "list available wavelet names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: csinfo [flags] [wavelet-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints diagnostics of Fourier-wavelet sensing operators.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints diagnostics for all wavelets.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  csinfo haar db4\n")
		fmt.Fprintf(os.Stderr, "  csinfo -size 128 -pattern gaussian -rate 0.2\n")
		fmt.Fprintf(os.Stderr, "  csinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList(os.Stdout)
		return
	}

	if err := run(os.Stdout, os.Stderr, cfg, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printList(w io.Writer) {
	for _, n := range wavelet.Names() {
		fmt.Fprintln(w, n)
	}
}

func run(w, errw io.Writer, cfg config, names []string) error {
	if len(names) == 0 {
		names = wavelet.Names()
	}

	var families []wavelet.Wavelet
	seen := make(map[string]bool)
	for _, name := range names {
		fam, err := wavelet.Lookup(strings.TrimSpace(name))
		if err != nil {
			fmt.Fprintf(errw, "warning: unknown wavelet %q (use -list to see available)\n", name)
			continue
		}
		// Aliases such as db1 resolve to an already listed family.
		if seen[fam.Name()] {
			continue
		}
		seen[fam.Name()] = true
		families = append(families, fam)
	}
	if len(families) == 0 {
		return fmt.Errorf("%w: no matching wavelets", errUsage)
	}

	grid, err := buildPattern(cfg)
	if err != nil {
		return err
	}
	mask, err := grid.Mask()
	if err != nil {
		return err
	}
	img := testImage(cfg.size)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Wavelet\tSize\tLevels\tPattern\tRate\tCaptured [%%]\tDot residual\tFull-mask residual\tλmax(A*A)\tcA energy [%%]\n")
	fmt.Fprintf(tw, "-------\t----\t------\t-------\t----\t------------\t------------\t------------------\t---------\t-------------\n")

	captured, err := capturedEnergy(mask, img)
	if err != nil {
		return err
	}

	for _, fam := range families {
		r, err := analyze(fam, mask, img, cfg)
		if err != nil {
			return fmt.Errorf("%s: %w", fam.Name(), err)
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%.4f\t%.2f\t%.2e\t%.2e\t%.6f\t%.2f\n",
			fam.Name(),
			cfg.size,
			cfg.levels,
			cfg.pattern,
			mask.Rate(),
			100*captured,
			r.dot,
			r.inverse,
			r.lambda,
			100*r.approx,
		)
	}
	return tw.Flush()
}

type report struct {
	dot     float64
	inverse float64
	lambda  float64
	approx  float64
}

func analyze(fam wavelet.Wavelet, mask *sensing.Mask, img *tensor.Dense[complex128], cfg config) (report, error) {
	op, err := sensing.NewFourierWavelet(fam, cfg.levels, mask)
	if err != nil {
		return report{}, err
	}
	dot, err := adjoint.RandomDotTest(op, cfg.trials, cfg.seed)
	if err != nil {
		return report{}, err
	}

	full, err := sensing.NewFourierWavelet(fam, cfg.levels, sensing.FullMask(cfg.size, cfg.size))
	if err != nil {
		return report{}, err
	}
	// With a full mask the adjoint maps the image's unitary spectrum back
	// to its wavelet decomposition.
	coeffs, err := full.Adjoint(img)
	if err != nil {
		return report{}, err
	}
	inverse, err := adjoint.InverseResidual(full, coeffs)
	if err != nil {
		return report{}, err
	}

	eig, err := eigen.EstimatePair(op, eigen.WithIterations(cfg.iter), eigen.WithSeed(cfg.seed))
	if err != nil {
		return report{}, err
	}

	bands, err := subband.CalculateComplex(coeffs, cfg.levels)
	if err != nil {
		return report{}, err
	}

	return report{
		dot:     dot.Residual,
		inverse: inverse,
		lambda:  real(eig.Value),
		approx:  bands[0].EnergyFraction,
	}, nil
}

func buildPattern(cfg config) (pattern.Grid, error) {
	if !fourier.IsPowerOf2(cfg.size) {
		return pattern.Grid{}, fmt.Errorf("%w: size %d is not a power of two", errUsage, cfg.size)
	}
	rng := rand.New(rand.NewSource(cfg.seed))
	n := cfg.size

	switch strings.ToLower(cfg.pattern) {
	case "uniform":
		return pattern.Uniform(n, n, cfg.rate, rng)
	case "gaussian":
		return pattern.Gaussian(n, n, int(math.Round(cfg.rate*float64(n*n))), 5, rng)
	case "level":
		// Fully sample the centre, then thin out towards the edges.
		return pattern.Level(n, n, []float64{1, cfg.rate, cfg.rate / 2}, rng)
	case "line":
		return pattern.Line(n, n, cfg.lines, 1, true)
	default:
		return pattern.Grid{}, fmt.Errorf("%w: unknown pattern %q", errUsage, cfg.pattern)
	}
}

// testImage returns the unitary spectrum of a smooth synthetic image with
// a sharp-edged square, in DFT order.
func testImage(n int) *tensor.Dense[complex128] {
	data := make([]complex128, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			x := float64(c) / float64(n)
			y := float64(r) / float64(n)
			v := math.Cos(2*math.Pi*x) + 0.5*math.Sin(2*math.Pi*(x+y))
			if r >= n/4 && r < n/2 && c >= n/4 && c < n/2 {
				v++
			}
			data[r*n+c] = complex(v, 0)
		}
	}

	plan, err := fourier.NewPlan2D(n, n)
	if err != nil {
		panic(err)
	}
	if err := plan.Forward(data, data); err != nil {
		panic(err)
	}
	spec, err := tensor.FromSlice(data, n, n)
	if err != nil {
		panic(err)
	}
	scale := 1 / math.Sqrt(float64(n*n))
	for i, v := range spec.Data() {
		spec.Data()[i] = v * complex(scale, 0)
	}
	return spec
}

func capturedEnergy(mask *sensing.Mask, spectrum *tensor.Dense[complex128]) (float64, error) {
	s, err := kspace.Calculate(mask, spectrum)
	if err != nil {
		return 0, err
	}
	return s.EnergyFraction, nil
}
