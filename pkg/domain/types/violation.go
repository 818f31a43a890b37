package types

// ViolationKind classifies a content integrity violation found at load time
type ViolationKind string

const (
	ViolationDuplicateID        ViolationKind = "duplicate-id"
	ViolationDanglingReference  ViolationKind = "dangling-reference"
	ViolationDuplicateReference ViolationKind = "duplicate-reference"
	ViolationNonContiguousStep  ViolationKind = "non-contiguous-step"
	ViolationMissingField       ViolationKind = "missing-field"
	ViolationInvalidID          ViolationKind = "invalid-id"
	ViolationInvalidValue       ViolationKind = "invalid-value"
	ViolationAsymmetricLink     ViolationKind = "asymmetric-link"
)

// String returns the string representation of the violation kind
func (k ViolationKind) String() string {
	return string(k)
}
