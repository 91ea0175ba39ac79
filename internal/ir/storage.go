package ir

// StorageOperation declares which storage accesses a storage-backed
// function is permitted to perform.
type StorageOperation uint8

const (
	// StorageReads marks a function that only reads contract storage.
	StorageReads StorageOperation = iota
	// StorageWrites marks a function that only writes contract storage.
	StorageWrites
	// StorageReadsWrites marks a function that does both.
	StorageReadsWrites
)

// String returns the label used in attributes and diagnostics.
func (op StorageOperation) String() string {
	switch op {
	case StorageReads:
		return "read"
	case StorageWrites:
		return "write"
	case StorageReadsWrites:
		return "readwrite"
	default:
		return "unknown"
	}
}
