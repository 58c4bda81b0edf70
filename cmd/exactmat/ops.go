package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/exactmat/exactmat/charpoly"
	"github.com/exactmat/exactmat/factor"
	"github.com/exactmat/exactmat/mat"
	"github.com/exactmat/exactmat/matio"
	"github.com/exactmat/exactmat/num"
	"github.com/exactmat/exactmat/sampling"
)

// rootBoundPrec is the big.Float precision used when bounding the
// eigenvalue interval from an exact characteristic polynomial.
const rootBoundPrec = 128

var errStaleFactors = errors.New("factor files missing or stale")

func pathFor(dir, stem string, problem int) string {
	return filepath.Join(dir, fmt.Sprintf("%s%d.m", stem, problem))
}

func sumPathFor(dir, stem string, problem int) string {
	return filepath.Join(dir, fmt.Sprintf("%s%d.sum", stem, problem))
}

// writeSum records the digest of the source matrix file next to the
// factor files derived from it.
func writeSum(dir, stem string, problem int) error {
	digest, err := matio.DigestFile(pathFor(dir, "Amat", problem))
	if err != nil {
		return err
	}
	return os.WriteFile(sumPathFor(dir, stem, problem), []byte(digest+"\n"), 0o644)
}

// sumFresh reports whether the recorded digest still matches the source
// matrix file.
func sumFresh(dir, stem string, problem int) bool {
	recorded, err := os.ReadFile(sumPathFor(dir, stem, problem))
	if err != nil {
		return false
	}
	digest, err := matio.DigestFile(pathFor(dir, "Amat", problem))
	if err != nil {
		return false
	}
	return string(recorded) == digest+"\n"
}

// asMatrix returns the file's matrix as a Matrix[T], lifting a real
// matrix into the wider scalar type when T is not num.Real.
func asMatrix[T num.Value[T]](f *matio.File) (*mat.Matrix[T], error) {
	if f.IsComplex() {
		m, ok := any(f.Complex).(*mat.Matrix[T])
		if !ok {
			return nil, fmt.Errorf("complex matrix where a real one is expected: %w", mat.ErrUnsupportedOperation)
		}
		return m, nil
	}
	if m, ok := any(f.Real).(*mat.Matrix[T]); ok {
		return m, nil
	}
	return mat.FromReal[T](f.Real), nil
}

// fileFor wraps a factored matrix for writing, choosing the real or
// complex encoding from the scalar type.
func fileFor[T num.Value[T]](m *mat.Matrix[T]) *matio.File {
	switch v := any(m).(type) {
	case *mat.Matrix[num.Real]:
		return &matio.File{Real: v}
	case *mat.Matrix[num.Complex]:
		return &matio.File{Complex: v}
	default:
		panic(fmt.Sprintf("no file encoding for %T", m))
	}
}

// residual returns ‖M·x - b‖ for the verification printouts.
func residual[T num.Value[T]](m, x, b *mat.Matrix[T]) (float64, error) {
	prod, err := m.Mul(x)
	if err != nil {
		return 0, err
	}
	diff, err := prod.Sub(b)
	if err != nil {
		return 0, err
	}
	return diff.Norm(), nil
}

func makeLU(dir string, problem int) error {
	af, err := matio.ReadFile(pathFor(dir, "Amat", problem))
	if err != nil {
		return err
	}
	if af.IsComplex() {
		return makeLUAs[num.Complex](dir, problem, af)
	}
	return makeLUAs[num.Real](dir, problem, af)
}

func makeLUAs[T num.Value[T]](dir string, problem int, af *matio.File) error {
	a, err := asMatrix[T](af)
	if err != nil {
		return err
	}

	start := time.Now()
	l, u, err := factor.LU(a)
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("problem %d: %w", problem, err)
	}

	if err := matio.WriteFile(pathFor(dir, "Lmat", problem), fileFor(l)); err != nil {
		return err
	}
	if err := matio.WriteFile(pathFor(dir, "Umat", problem), fileFor(u)); err != nil {
		return err
	}
	if err := writeSum(dir, "LUsum", problem); err != nil {
		return err
	}

	res, err := residual(l, u, a)
	if err != nil {
		return err
	}
	fmt.Printf("Problem %d: LU in %dμs, ‖L·U - A‖ = %g\n", problem, elapsed.Microseconds(), res)
	return nil
}

// loadLU reads factor files back, but only while their recorded digest
// still matches the source matrix.
func loadLU[T num.Value[T]](dir string, problem int) (l, u *mat.Matrix[T], err error) {
	if !sumFresh(dir, "LUsum", problem) {
		return nil, nil, errStaleFactors
	}
	lf, err := matio.ReadFile(pathFor(dir, "Lmat", problem))
	if err != nil {
		return nil, nil, err
	}
	uf, err := matio.ReadFile(pathFor(dir, "Umat", problem))
	if err != nil {
		return nil, nil, err
	}
	if l, err = asMatrix[T](lf); err != nil {
		return nil, nil, err
	}
	if u, err = asMatrix[T](uf); err != nil {
		return nil, nil, err
	}
	return l, u, nil
}

func luGauss(dir string, problem int) error {
	af, err := matio.ReadFile(pathFor(dir, "Amat", problem))
	if err != nil {
		return err
	}
	bf, err := matio.ReadFile(pathFor(dir, "bvec", problem))
	if err != nil {
		return err
	}
	if af.IsComplex() || bf.IsComplex() {
		return luGaussAs[num.Complex](dir, problem, af, bf)
	}
	return luGaussAs[num.Real](dir, problem, af, bf)
}

func luGaussAs[T num.Value[T]](dir string, problem int, af, bf *matio.File) error {
	a, err := asMatrix[T](af)
	if err != nil {
		return err
	}
	b, err := asMatrix[T](bf)
	if err != nil {
		return err
	}

	l, u, err := loadLU[T](dir, problem)
	if err != nil {
		if l, u, err = factor.LU(a); err != nil {
			return fmt.Errorf("problem %d: %w", problem, err)
		}
		if err := matio.WriteFile(pathFor(dir, "Lmat", problem), fileFor(l)); err != nil {
			return err
		}
		if err := matio.WriteFile(pathFor(dir, "Umat", problem), fileFor(u)); err != nil {
			return err
		}
		if err := writeSum(dir, "LUsum", problem); err != nil {
			return err
		}
	}

	start := time.Now()
	x, err := factor.SolveLU(l, u, b)
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("problem %d: %w", problem, err)
	}

	if err := matio.WriteFile(pathFor(dir, "xvec", problem), fileFor(x)); err != nil {
		return err
	}

	res, err := residual(a, x, b)
	if err != nil {
		return err
	}
	fmt.Printf("Problem %d: LU solve in %dμs, ‖A·x - b‖ = %g\n", problem, elapsed.Microseconds(), res)
	return nil
}

func makeQR(dir string, problem int) error {
	af, err := matio.ReadFile(pathFor(dir, "Amat", problem))
	if err != nil {
		return err
	}
	if af.IsComplex() {
		return makeQRAs[num.Complex](dir, problem, af)
	}
	return makeQRAs[num.Real](dir, problem, af)
}

// makeQRMethod resolves the file's selector. A file without one factors
// by Gram-Schmidt; only the qr_gauss refactor fallback assumes
// Householder.
func makeQRMethod(f *matio.File) factor.QRMethod {
	if f.Method != 0 {
		return f.Method
	}
	return factor.GramSchmidt
}

func makeQRAs[T num.Value[T]](dir string, problem int, af *matio.File) error {
	a, err := asMatrix[T](af)
	if err != nil {
		return err
	}
	method := makeQRMethod(af)

	start := time.Now()
	q, r, err := factor.QR(a, method)
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("problem %d: %w", problem, err)
	}

	if err := matio.WriteFile(pathFor(dir, "Qmat", problem), fileFor(q)); err != nil {
		return err
	}
	if err := matio.WriteFile(pathFor(dir, "Rmat", problem), fileFor(r)); err != nil {
		return err
	}
	if err := writeSum(dir, "QRsum", problem); err != nil {
		return err
	}

	res, err := residual(q, r, a)
	if err != nil {
		return err
	}
	fmt.Printf("Problem %d: QR (%s) in %dμs, ‖Q·R - A‖ = %g\n", problem, method, elapsed.Microseconds(), res)
	return nil
}

func loadQR[T num.Value[T]](dir string, problem int) (q, r *mat.Matrix[T], err error) {
	if !sumFresh(dir, "QRsum", problem) {
		return nil, nil, errStaleFactors
	}
	qf, err := matio.ReadFile(pathFor(dir, "Qmat", problem))
	if err != nil {
		return nil, nil, err
	}
	rf, err := matio.ReadFile(pathFor(dir, "Rmat", problem))
	if err != nil {
		return nil, nil, err
	}
	if q, err = asMatrix[T](qf); err != nil {
		return nil, nil, err
	}
	if r, err = asMatrix[T](rf); err != nil {
		return nil, nil, err
	}
	return q, r, nil
}

func qrGauss(dir string, problem int) error {
	af, err := matio.ReadFile(pathFor(dir, "Amat", problem))
	if err != nil {
		return err
	}
	bf, err := matio.ReadFile(pathFor(dir, "bvec", problem))
	if err != nil {
		return err
	}
	if af.IsComplex() || bf.IsComplex() {
		return qrGaussAs[num.Complex](dir, problem, af, bf)
	}
	return qrGaussAs[num.Real](dir, problem, af, bf)
}

func qrGaussAs[T num.Value[T]](dir string, problem int, af, bf *matio.File) error {
	a, err := asMatrix[T](af)
	if err != nil {
		return err
	}
	b, err := asMatrix[T](bf)
	if err != nil {
		return err
	}

	q, r, err := loadQR[T](dir, problem)
	if err != nil {
		method := af.Method
		if method == 0 {
			method = factor.Householder
		}
		if q, r, err = factor.QR(a, method); err != nil {
			return fmt.Errorf("problem %d: %w", problem, err)
		}
		if err := matio.WriteFile(pathFor(dir, "Qmat", problem), fileFor(q)); err != nil {
			return err
		}
		if err := matio.WriteFile(pathFor(dir, "Rmat", problem), fileFor(r)); err != nil {
			return err
		}
		if err := writeSum(dir, "QRsum", problem); err != nil {
			return err
		}
	}

	start := time.Now()
	x, err := factor.SolveQR(q, r, b)
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("problem %d: %w", problem, err)
	}

	if err := matio.WriteFile(pathFor(dir, "xvec", problem), fileFor(x)); err != nil {
		return err
	}

	res, err := residual(a, x, b)
	if err != nil {
		return err
	}
	fmt.Printf("Problem %d: QR solve in %dμs, ‖A·x - b‖ = %g\n", problem, elapsed.Microseconds(), res)
	return nil
}

func findPoly(dir string, problem int) error {
	af, err := matio.ReadFile(pathFor(dir, "Amat", problem))
	if err != nil {
		return err
	}
	if af.IsComplex() {
		return fmt.Errorf("characteristic polynomials need integer entries: %w", mat.ErrUnsupportedOperation)
	}

	// Entries are truncated into exact integers so the recurrence runs
	// without rounding.
	a := mat.FromReal[num.LongInt](af.Real)

	start := time.Now()
	p, err := charpoly.Characteristic(a)
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("problem %d: %w", problem, err)
	}

	out, err := os.Create(pathFor(dir, "cvec", problem))
	if err != nil {
		return err
	}
	defer out.Close()
	if err := matio.WritePoly(out, p); err != nil {
		return err
	}

	bound := charpoly.RootBound(p, rootBoundPrec)
	fmt.Printf("Problem %d: characteristic polynomial of degree %d in %dμs\n",
		problem, p.Degree(), elapsed.Microseconds())
	fmt.Printf("\teigenvalues lie in [%s, %s]\n", bound.A.Text('g', 6), bound.B.Text('g', 6))
	return nil
}

func generate(dir string, problem int) error {
	var prng sampling.PRNG
	var err error
	if *seed != "" {
		prng, err = sampling.NewKeyedPRNG([]byte(*seed))
	} else {
		prng, err = sampling.NewPRNG()
	}
	if err != nil {
		return err
	}

	var a *mat.Matrix[num.Real]
	if *tridiag {
		// Tridiagonal problems feed find_poly, which wants exact
		// integer entries.
		a = roundEntries(sampling.Tridiagonal(prng, *size, -9, 9))
	} else {
		a = sampling.DiagonallyDominant(prng, *size, -9, 9)
	}
	if err := matio.WriteFile(pathFor(dir, "Amat", problem), &matio.File{Real: a}); err != nil {
		return err
	}

	b := sampling.Matrix(prng, 1, *size, -9, 9)
	if err := matio.WriteFile(pathFor(dir, "bvec", problem), &matio.File{Real: b}); err != nil {
		return err
	}

	fmt.Printf("Problem %d: generated %dx%d system\n", problem, *size, *size)
	return nil
}

func roundEntries(m *mat.Matrix[num.Real]) *mat.Matrix[num.Real] {
	for i := 0; i < m.Height(); i++ {
		for j := 0; j < m.Width(); j++ {
			m.Set(i, j, num.NewReal(math.Round(m.Get(i, j).Float64())))
		}
	}
	return m
}
