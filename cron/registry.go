package cron

import (
	"sync"
)

// Job holds schedule and run function.
type Job struct {
	Schedule string
	Run      func(...string)
}

var (
	mu     sync.Mutex
	locked bool
	jobs   = make(map[string]Job)
)

// Register adds a cron job. Call from init() in job packages. Panics if registry is locked.
func Register(name string, schedule string, run func(...string)) {
	mu.Lock()
	defer mu.Unlock()
	if locked {
		panic("cron/registry: locked (register only during init before StartCron)")
	}
	if _, ok := jobs[name]; ok {
		panic("cron/registry: duplicate job " + name)
	}
	jobs[name] = Job{Schedule: schedule, Run: run}
}

// Unregister removes a job and unlocks the registry (for tests).
func Unregister(name string) {
	mu.Lock()
	defer mu.Unlock()
	locked = false
	delete(jobs, name)
}

// Jobs returns a copy of all registered jobs. Locks the registry (immutable after).
func Jobs() map[string]Job {
	mu.Lock()
	defer mu.Unlock()
	locked = true
	out := make(map[string]Job, len(jobs))
	for k, v := range jobs {
		out[k] = v
	}
	return out
}
