package mat

import "errors"

// Typed failure kinds returned by every shape- or precondition-sensitive
// operation. They propagate to the caller unchanged; no operation
// recovers locally or substitutes a default.
var (
	// ErrNotSquare reports a factorization requested on a non-square matrix.
	ErrNotSquare = errors.New("matrix is not square")

	// ErrNotRegular reports a zero pivot during LU factorization. No row
	// exchange is ever attempted.
	ErrNotRegular = errors.New("matrix is not regular")

	// ErrNotTridiagonal reports an off-band entry above the tridiagonal
	// tolerance.
	ErrNotTridiagonal = errors.New("matrix is not tridiagonal")

	// ErrSizeMismatch reports a dimension-incompatible binary operation.
	ErrSizeMismatch = errors.New("matrix dimensions mismatch")

	// ErrUnsupportedOperation reports an operation undefined for the
	// scalar type, such as a Givens factorization of a complex matrix.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)
