package serialization

// Policy decides what happens to input that is valid but unexpected
type Policy int

const (
	// Tolerate accepts the input; unreferenced records are logged and skipped
	Tolerate Policy = iota
	// Reject fails the load
	Reject
)

func (p Policy) String() string {
	if p == Reject {
		return "reject"
	}
	return "tolerate"
}

// DeserializeOptions tunes how strictly a document is read
type DeserializeOptions struct {
	// UnreferencedRecords covers records not reachable from any entry point
	UnreferencedRecords Policy
	// UnknownFields covers JSON keys that no record kind defines
	UnknownFields Policy
}

// DefaultDeserializeOptions tolerates unreferenced records and unknown fields
func DefaultDeserializeOptions() DeserializeOptions {
	return DeserializeOptions{
		UnreferencedRecords: Tolerate,
		UnknownFields:       Tolerate,
	}
}

// StrictDeserializeOptions rejects anything unexpected
func StrictDeserializeOptions() DeserializeOptions {
	return DeserializeOptions{
		UnreferencedRecords: Reject,
		UnknownFields:       Reject,
	}
}
