package testingx

import (
	"sync"
	"time"
)

// TimeDeterministic is a fake clock for code taking a `TimeNow func() time.Time`
// hook. Every call to Now returns a moment in time that occurs one Step after
// the moment returned by the previous call.
//
// It's safe to use this struct from multiple goroutine contexts.
type TimeDeterministic struct {
	// Step is the OPTIONAL interval between two calls. The zero value
	// makes the clock advance by one second.
	Step time.Duration

	// ticks counts the calls to Now.
	ticks int64

	// mu protects fields in this structure from concurrent access.
	mu sync.Mutex

	// zeroTime is the lazy-initialized zero time. The first call to Now
	// will initialize this field with the current time.
	zeroTime time.Time
}

// NewTimeDeterministic creates a new instance using the given zeroTime value.
func NewTimeDeterministic(zeroTime time.Time) *TimeDeterministic {
	return &TimeDeterministic{zeroTime: zeroTime}
}

// Now is like time.Now but deterministic. The first call returns the
// configured zeroTime.
func (td *TimeDeterministic) Now() time.Time {
	td.mu.Lock()
	defer td.mu.Unlock()
	if td.zeroTime.IsZero() {
		td.zeroTime = time.Now()
	}
	step := td.Step
	if step <= 0 {
		step = time.Second
	}
	res := td.zeroTime.Add(time.Duration(td.ticks) * step)
	td.ticks++
	return res
}
