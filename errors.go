package encryptconfig

import "fmt"

// ConflictKind classifies a borrow-discipline violation.
type ConflictKind string

const (
	ConflictReadWhileWriting  ConflictKind = "read_while_writing"
	ConflictWriteWhileReading ConflictKind = "write_while_reading"
	ConflictWriteWhileWriting ConflictKind = "write_while_writing"
	ConflictTakeWhileWriting  ConflictKind = "take_while_writing"
	ConflictTooManyReaders    ConflictKind = "too_many_readers"

	ConflictInvalidateWhileWriting ConflictKind = "invalidate_while_writing"
)

// ConflictError is the panic value raised on a borrow conflict: asking for
// access that cannot be granted immediately. It signals a bug in calling
// code (a guard held too long, or overlapping tuple acquisitions), so it is
// deliberately loud — callers are not expected to recover from it.
type ConflictError struct {
	Type string // Go type of the cached value, e.g. "main.Counter"
	Kind ConflictKind
}

func (e *ConflictError) Error() string {
	switch e.Kind {
	case ConflictReadWhileWriting:
		return fmt.Sprintf("encryptconfig: cannot get <%s> while an exclusive guard is outstanding", e.Type)
	case ConflictWriteWhileReading:
		return fmt.Sprintf("encryptconfig: cannot get <%s> mutably while shared guards are outstanding", e.Type)
	case ConflictWriteWhileWriting:
		return fmt.Sprintf("encryptconfig: cannot get <%s> mutably while an exclusive guard is outstanding", e.Type)
	case ConflictTakeWhileWriting:
		return fmt.Sprintf("encryptconfig: cannot take <%s> while an exclusive guard is outstanding", e.Type)
	case ConflictInvalidateWhileWriting:
		return fmt.Sprintf("encryptconfig: cannot invalidate <%s> while an exclusive guard is outstanding", e.Type)
	case ConflictTooManyReaders:
		return fmt.Sprintf("encryptconfig: too many concurrent readers of <%s> (max %d)", e.Type, MaxReaders)
	default:
		return fmt.Sprintf("encryptconfig: access conflict on <%s>: %s", e.Type, e.Kind)
	}
}

// SaveError wraps a failure to persist a value through its Source.
// Returned by Save and Flush; write-back failures during eviction are
// reported through the Logger and Hooks instead, because the caller that
// caused the dirtiness may already be gone.
type SaveError struct {
	Type string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("encryptconfig: save <%s>: %v", e.Type, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }
