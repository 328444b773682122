package block

// Errors reported by the fallible operations. Everything else in the
// algebra is total over well-formed blocks; failures are never retried and
// always surface to the immediate caller.
var (
	ErrInvalidInterval            = &BlockError{"interval endpoints are not ordered values"}
	ErrEmptyIntersection          = &BlockError{"blocks do not intersect"}
	ErrInsufficientBoundaryPoints = &BlockError{"wrong number of boundary points for subtraction"}
)

type BlockError struct {
	Msg string
}

func (e *BlockError) Error() string {
	return e.Msg
}

func (e *BlockError) Is(target error) bool {
	if targetErr, ok := target.(*BlockError); ok {
		return e.Msg == targetErr.Msg
	}
	return false
}
