package memutils

import (
	"strconv"
	"strings"

	cerrors "github.com/cockroachdb/errors"
	"golang.org/x/exp/slices"
)

type Number interface {
	~int | ~int32 | ~int64
}

// CheckNonNegative returns ErrInvalidInput, annotated with the name and position of the first
// offending value, if any value in the slice is negative
func CheckNonNegative[T Number](values []T, name string) error {
	for i, value := range values {
		if value < 0 {
			return cerrors.Wrapf(ErrInvalidInput, "%s[%d] is %d", name, i, value)
		}
	}
	return nil
}

// CloneSizes returns a working copy of the provided sizes. The result is never nil, so that
// an empty input produces an empty, non-nil result.
func CloneSizes(values []int) []int {
	if len(values) == 0 {
		return []int{}
	}
	return slices.Clone(values)
}

// ParseSizes converts comma-separated text such as "100, 500, 200" into a slice of sizes.
// Whitespace around each token is ignored and blank text produces an empty slice. A token that
// is empty, non-numeric, or negative produces ErrInvalidInput; nothing is returned in that case.
func ParseSizes(text string, name string) ([]int, error) {
	if strings.TrimSpace(text) == "" {
		return []int{}, nil
	}

	tokens := strings.Split(text, ",")
	sizes := make([]int, 0, len(tokens))
	for i, token := range tokens {
		token = strings.TrimSpace(token)
		value, err := strconv.Atoi(token)
		if err != nil {
			return nil, cerrors.Wrapf(ErrInvalidInput, "%s[%d] is %q", name, i, token)
		}
		sizes = append(sizes, value)
	}

	if err := CheckNonNegative(sizes, name); err != nil {
		return nil, err
	}
	return sizes, nil
}
