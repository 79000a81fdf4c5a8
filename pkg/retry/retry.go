// Package retry reruns short synchronous operations a bounded number
// of times. It backs the best-effort snapshot writes, where a transient
// filesystem error should not surface to the caller.
package retry

import "time"

const defaultDelay = 50 * time.Millisecond

type Config struct {
	MaxAttempts int
	Delay       time.Duration
}

func (c *Config) normalize() {
	if c.MaxAttempts < 1 {
		c.MaxAttempts = 1
	}
	if c.Delay == 0 {
		c.Delay = defaultDelay
	}
}

// Do invokes fn until it succeeds or MaxAttempts is reached,
// sleeping Delay between attempts. Returns the last error.
func Do(c Config, fn func() error) error {
	c.normalize()

	var err error
	for attempt := 1; attempt <= c.MaxAttempts; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}
		if attempt < c.MaxAttempts {
			time.Sleep(c.Delay)
		}
	}
	return err
}
