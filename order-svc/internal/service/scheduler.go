package service

import "time"

// Clock abstracts the time source so tests can pin it.
type Clock interface {
	Now() time.Time
}

// Scheduler defers a callback. The production implementation wraps
// time.AfterFunc; tests substitute a fake that advances virtual time.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

type TimerScheduler struct{}

func (TimerScheduler) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}
