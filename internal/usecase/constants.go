package usecase

const (
	// DefaultPageSize is used when list requests omit a limit.
	DefaultPageSize = 50

	// MaxPageSize caps list requests.
	MaxPageSize = 1000
)

// ClampPagination normalizes limit/offset to safe bounds.
func ClampPagination(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
