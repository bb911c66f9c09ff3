package encryptconfig

import "sync/atomic"

// Flag layout of the per-entry access word. The low three bits are state
// flags; bits 3..7 hold the shared reader count.
const (
	flagValid   uint32 = 1 << 0 // entry holds live data
	flagDirty   uint32 = 1 << 1 // mutated since the last successful write-back
	flagWriting uint32 = 1 << 2 // an exclusive guard is outstanding

	readerShift        = 3
	readerOne   uint32 = 1 << readerShift
	readerMask  uint32 = 0x1f << readerShift
)

// MaxReaders bounds the number of shared guards outstanding on a single
// entry. Exceeding it is a caller error, not silent wraparound.
const MaxReaders = 31

// accessWord arbitrates concurrent access to one cache entry. Every
// transition is a single CAS or fetch-op; nothing ever blocks. Invariants
// held at every transition:
//   - writing and readers>0 are never set together
//   - dirty implies valid
type accessWord struct {
	w atomic.Uint32
}

func readerCount(w uint32) int { return int((w & readerMask) >> readerShift) }

// acquireShared registers one shared reader. A non-nil result means the
// claim was refused: an exclusive guard is outstanding or the reader bound
// is reached. The caller turns that into a panic; the word never blocks.
func (a *accessWord) acquireShared(typ string) *ConflictError {
	for {
		cur := a.w.Load()
		if cur&flagWriting != 0 {
			return &ConflictError{Type: typ, Kind: ConflictReadWhileWriting}
		}
		if readerCount(cur) == MaxReaders {
			return &ConflictError{Type: typ, Kind: ConflictTooManyReaders}
		}
		if a.w.CompareAndSwap(cur, cur+readerOne) {
			return nil
		}
	}
}

// acquireExclusive claims the writer bit. Refused when any guard, shared
// or exclusive, is outstanding.
func (a *accessWord) acquireExclusive(typ string) *ConflictError {
	for {
		cur := a.w.Load()
		if cur&flagWriting != 0 {
			return &ConflictError{Type: typ, Kind: ConflictWriteWhileWriting}
		}
		if readerCount(cur) > 0 {
			return &ConflictError{Type: typ, Kind: ConflictWriteWhileReading}
		}
		if a.w.CompareAndSwap(cur, cur|flagWriting) {
			return nil
		}
	}
}

func (a *accessWord) releaseShared()    { a.w.Add(^(readerOne - 1)) }
func (a *accessWord) releaseExclusive() { a.w.And(^flagWriting) }

// markDirty records a mutation. Guards call it on every mutable access;
// the bit stays up until a successful write-back.
func (a *accessWord) markDirty() { a.w.Or(flagDirty) }

// invalidate drops valid together with dirty, preserving dirty ⇒ valid.
// A stale entry has nothing worth persisting.
func (a *accessWord) invalidate() { a.w.And(^(flagValid | flagDirty)) }

// revalidate raises valid after an in-place reload.
func (a *accessWord) revalidate() { a.w.Or(flagValid) }

func (a *accessWord) valid() bool   { return a.w.Load()&flagValid != 0 }
func (a *accessWord) dirty() bool   { return a.w.Load()&flagDirty != 0 }
func (a *accessWord) writing() bool { return a.w.Load()&flagWriting != 0 }
