//go:build debug_mem_utils

package memutils

// DebugValidate will call Validate on the provided object and panics if any errors are returned. This
// method no-ops unless the debug_mem_utils build tag is present
func DebugValidate(validatable Validatable) {
	err := validatable.Validate()
	if err != nil {
		panic(err)
	}
}

// DebugCheckNonNegative will verify that every value passed in is non-negative, and panics if one is not.
// This method no-ops unless the debug_mem_utils build tag is present.
func DebugCheckNonNegative[T Number](values []T, name string) {
	err := CheckNonNegative[T](values, name)
	if err != nil {
		panic(err)
	}
}
