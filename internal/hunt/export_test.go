package hunt

import "time"

// TestHooks exposes internals for white-box tests
var TestHooks = struct {
	SetClock func(s Service, now func() time.Time)
	SetSeed  func(s Service, seedFn func() int64)
}{
	SetClock: func(s Service, now func() time.Time) {
		s.(*service).now = now
	},
	SetSeed: func(s Service, seedFn func() int64) {
		s.(*service).seedFn = seedFn
	},
}
