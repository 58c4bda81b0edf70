package factor

import (
	"fmt"
	"math"

	"github.com/exactmat/exactmat/mat"
	"github.com/exactmat/exactmat/num"
)

// QRMethod selects one of the three QR factorization algorithms.
type QRMethod int

const (
	// Householder reflections; defined for real and complex matrices.
	Householder QRMethod = iota + 1
	// Givens rotations; defined for real matrices only.
	Givens
	// GramSchmidt with re-orthogonalization passes.
	GramSchmidt
)

func (m QRMethod) String() string {
	switch m {
	case Householder:
		return "householder"
	case Givens:
		return "givens"
	case GramSchmidt:
		return "gram-schmidt"
	default:
		return fmt.Sprintf("QRMethod(%d)", int(m))
	}
}

// DefaultReorthoEpsilon is the Gram-Schmidt re-orthogonalization
// threshold used when the caller does not supply one.
const DefaultReorthoEpsilon = 0.1

// QR factors m with the selected method. Gram-Schmidt runs with
// DefaultReorthoEpsilon.
func QR[T num.Value[T]](m *mat.Matrix[T], method QRMethod) (q, r *mat.Matrix[T], err error) {
	switch method {
	case Householder:
		return QRHouseholder(m)
	case Givens:
		return QRGivens(m)
	case GramSchmidt:
		return QRGramSchmidt(m, DefaultReorthoEpsilon)
	default:
		return nil, nil, fmt.Errorf("unknown QR method %d: %w", int(method), mat.ErrUnsupportedOperation)
	}
}

// QRHouseholder factors the square matrix m into Q·R by successive
// Householder reflections. It is defined for real and complex scalars;
// the inner products conjugate the reflection vector.
func QRHouseholder[T num.Value[T]](m *mat.Matrix[T]) (q, r *mat.Matrix[T], err error) {
	width := m.Width()
	if width != m.Height() {
		return nil, nil, mat.ErrNotSquare
	}

	r = m.CopyNew()
	q = mat.Identity[T](width)

	for layer := 0; layer < width; layer++ {
		var columnNorm float64
		for i := layer; i < width; i++ {
			columnNorm += r.Get(i, layer).NormSquared()
		}

		v := mat.New[T](1, width)

		// The pivot entry is perturbed away from zero along its own
		// phase; when it is exactly zero the perturbation is skipped.
		a := r.Get(layer, layer)
		if num.Norm(a) != 0 {
			scale := a.Div(num.FromFloat64[T](num.Norm(a))).Mul(num.FromFloat64[T](math.Sqrt(columnNorm)))
			v.Set(layer, 0, a.Add(scale))
		}
		for i := layer + 1; i < width; i++ {
			v.Set(i, 0, r.Get(i, layer))
		}
		v = v.DivScalar(num.FromFloat64[T](v.Norm()))

		mirror(r, v)
		mirror(q, v)
	}

	return q.Transpose(), r, nil
}

// mirror applies the Householder reflection I - 2·v·vᴴ to every column
// of vecs in place.
func mirror[T num.Value[T]](vecs, direction *mat.Matrix[T]) {
	minusTwo := num.FromFloat64[T](-2)
	for i := 0; i < vecs.Width(); i++ {
		dot := num.Zero[T]()
		for j := 0; j < vecs.Height(); j++ {
			dot = dot.Add(direction.Get(j, 0).Conjugate().Mul(vecs.Get(j, i)))
		}

		for j := 0; j < vecs.Height(); j++ {
			vecs.Set(j, i, direction.Get(j, 0).Mul(dot).Mul(minusTwo).Add(vecs.Get(j, i)))
		}
	}
}

// QRGivens factors the square matrix m into Q·R by Givens rotations.
// Rotations are only defined for real scalars; any other scalar type
// fails with mat.ErrUnsupportedOperation.
func QRGivens[T num.Value[T]](m *mat.Matrix[T]) (q, r *mat.Matrix[T], err error) {
	rm, ok := any(m).(*mat.Matrix[num.Real])
	if !ok {
		return nil, nil, fmt.Errorf("givens rotations require a real-valued matrix: %w", mat.ErrUnsupportedOperation)
	}

	qq, rr, err := qrGivensReal(rm)
	if err != nil {
		return nil, nil, err
	}
	return any(qq).(*mat.Matrix[T]), any(rr).(*mat.Matrix[T]), nil
}

func qrGivensReal(m *mat.Matrix[num.Real]) (q, r *mat.Matrix[num.Real], err error) {
	width := m.Width()
	if width != m.Height() {
		return nil, nil, mat.ErrNotSquare
	}

	r = m.CopyNew()
	q = mat.Identity[num.Real](width)

	for i := 1; i < width; i++ {
		for j := 0; j < i; j++ {
			rotateToZero(q, r, i, j)
		}
	}

	return q.Transpose(), r, nil
}

// rotateToZero eliminates r[row, col] with a 2x2 rotation of rows col
// and row, applied across every column of both r and the accumulating q.
func rotateToZero(q, r *mat.Matrix[num.Real], row, col int) {
	a := float64(r.Get(col, col))
	b := float64(r.Get(row, col))
	hyp := math.Sqrt(a*a + b*b)
	cos := num.Real(a / hyp)
	sin := num.Real(-b / hyp)

	for i := 0; i < r.Width(); i++ {
		ra, rb := r.Get(col, i), r.Get(row, i)
		r.Set(col, i, ra*cos-rb*sin)
		r.Set(row, i, ra*sin+rb*cos)

		qa, qb := q.Get(col, i), q.Get(row, i)
		q.Set(col, i, qa*cos-qb*sin)
		q.Set(row, i, qa*sin+qb*cos)
	}
}

// QRGramSchmidt factors the square matrix m into Q·R by the Gram-Schmidt
// process with re-orthogonalization: each working column is repeatedly
// projected against the finalized columns until the total squared change
// of a full pass drops below reorthoEpsilon.
func QRGramSchmidt[T num.Value[T]](m *mat.Matrix[T], reorthoEpsilon float64) (q, r *mat.Matrix[T], err error) {
	width := m.Width()
	if width != m.Height() {
		return nil, nil, mat.ErrNotSquare
	}

	q = mat.New[T](width, width)
	r = mat.New[T](width, width)

	for j := 0; j < width; j++ {
		p := m.Column(j)

		for {
			var delta float64
			for i := 0; i < j; i++ {
				dot := num.Zero[T]()
				for k := 0; k < width; k++ {
					dot = dot.Add(q.Get(k, i).Conjugate().Mul(p.Get(k, 0)))
				}

				for k := 0; k < width; k++ {
					a := p.Get(k, 0).Sub(q.Get(k, i).Mul(dot))
					delta += a.Sub(p.Get(k, 0)).NormSquared()
					p.Set(k, 0, a)
				}
			}
			if delta < reorthoEpsilon {
				break
			}
		}

		norm := num.FromFloat64[T](p.Norm())
		for i := 0; i < width; i++ {
			q.Set(i, j, p.Get(i, 0).Div(norm))
		}

		for i := 0; i <= j; i++ {
			dot := num.Zero[T]()
			for k := 0; k < width; k++ {
				dot = dot.Add(q.Get(k, i).Conjugate().Mul(m.Get(k, j)))
			}
			r.Set(i, j, dot)
		}
	}

	return q, r, nil
}

// SolveQR solves Q·R·x = b by applying Qᴴ to b and back-substituting
// against R. Q and R must be square of equal size and b a column vector
// of matching height, else mat.ErrSizeMismatch.
func SolveQR[T num.Value[T]](q, r, b *mat.Matrix[T]) (*mat.Matrix[T], error) {
	if q.Width() != q.Height() ||
		r.Width() != r.Height() ||
		b.Width() != 1 ||
		b.Height() != q.Height() ||
		r.Width() != q.Width() {
		return nil, mat.ErrSizeMismatch
	}

	v, err := q.ConjugateTranspose().Mul(b)
	if err != nil {
		return nil, err
	}
	return backSubstitute(r, v), nil
}
