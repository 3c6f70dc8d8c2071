package matrix

import "errors"

// Sentinel errors returned by the package. Callers match them with
// errors.Is; functions wrap them with fmt.Errorf("...: %w", Err...) to add
// context.
var (
	// ErrInvalidShape is returned when a negative row or column count is
	// requested at construction. Zero is a legal dimension.
	ErrInvalidShape = errors.New("matrix: rows and cols must be >= 0")

	// ErrIndexOutOfRange is returned when a row or column index falls
	// outside [0, dim) after negative-index normalization.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch is returned on incompatible operand shapes,
	// e.g. Mul where a.Cols() != b.Rows(), or a submatrix stop before its
	// start.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrReadOnlyView is returned when attempting to assign an element
	// through a RowView.
	ErrReadOnlyView = errors.New("matrix: row views are read-only")

	// ErrTypeMismatch is returned when a value that cannot be converted to
	// an integer is passed where an integer is required.
	ErrTypeMismatch = errors.New("matrix: value is not an integer")

	// ErrNonPositiveModulus is returned by the modular-reduction kernels
	// when q <= 0.
	ErrNonPositiveModulus = errors.New("matrix: modulus must be > 0")

	// ErrRaggedInput is returned by the ingestion adapters when input rows
	// do not all have the same width.
	ErrRaggedInput = errors.New("matrix: input rows have inconsistent widths")
)
