package chatsweep

import (
	"sync/atomic"
)

// StopFlag is a cooperative cancellation signal. A run checks it once before
// each page fetch, so a page that is being deleted always finishes.
type StopFlag struct {
	raised atomic.Bool
}

func NewStopFlag() *StopFlag {
	return &StopFlag{}
}

func (f *StopFlag) Raise() {
	f.raised.Store(true)
}

func (f *StopFlag) Raised() bool {
	return f.raised.Load()
}

func (f *StopFlag) Reset() {
	f.raised.Store(false)
}
