package entities

// Record is implemented by every content type stored in its own table keyed by id.
//
// NaturalKey is the value fixtures are matched on when importing into an environment
// that already has content (slug for routed content, name for the rest).
type Record interface {
	RecordID() string
	NaturalKey() string
}
