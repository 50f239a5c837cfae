package domain

import "time"

// Job is a persisted optimization request and, once solved, its result.
type Job struct {
	ID        string
	Title     string
	Instance  Instance
	Metric    string
	Seed      int64
	Result    *Solution
	CreatedAt time.Time
}
