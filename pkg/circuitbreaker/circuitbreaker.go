package circuitbreaker

import (
	"errors"
	"sync"
	"time"
)

// ErrCircuitOpen is returned without invoking the guarded call while the
// circuit is open.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// CircuitState is the current circuit breaker state.
type CircuitState int

const (
	// Closed allows requests to pass through
	Closed CircuitState = iota
	// Open blocks all requests
	Open
	// HalfOpen allows limited requests to test recovery
	HalfOpen
)

// CircuitBreaker guards calls and opens the circuit after repeated failures.
type CircuitBreaker interface {
	Call(func() error) error
	State() CircuitState
	Reset()
}

type Config struct {
	FailureThreshold int           // Number of failures before opening
	RecoveryTimeout  time.Duration // Time to wait before trying HalfOpen
	SuccessThreshold int           // Number of successes needed to close from HalfOpen
}

func DefaultConfig() *Config {
	return &Config{
		FailureThreshold: 5,
		RecoveryTimeout:  60 * time.Second,
		SuccessThreshold: 3,
	}
}

type circuitBreaker struct {
	config    *Config
	state     CircuitState
	failures  int
	successes int

	nextAttempt time.Time
	mutex       sync.Mutex
}

// NewCircuitBreaker returns a circuit breaker and applies defaults when
// config is nil.
func NewCircuitBreaker(config *Config) CircuitBreaker {
	if config == nil {
		config = DefaultConfig()
	}

	return &circuitBreaker{
		config: config,
		state:  Closed,
	}
}

func (cb *circuitBreaker) Call(fn func() error) error {
	cb.mutex.Lock()
	// Transition Open -> HalfOpen after the recovery timeout.
	if cb.state == Open && time.Now().After(cb.nextAttempt) {
		cb.state = HalfOpen
		cb.successes = 0
	}
	blocked := cb.state == Open
	cb.mutex.Unlock()

	if blocked {
		return ErrCircuitOpen
	}

	// Never call user code while holding the lock.
	err := fn()

	cb.mutex.Lock()
	defer cb.mutex.Unlock()

	if err != nil {
		cb.failures++
		if cb.state == HalfOpen || cb.failures >= cb.config.FailureThreshold {
			cb.state = Open
			cb.nextAttempt = time.Now().Add(cb.config.RecoveryTimeout)
		}
		return err
	}

	switch cb.state {
	case HalfOpen:
		cb.successes++
		if cb.successes >= cb.config.SuccessThreshold {
			cb.state = Closed
			cb.failures = 0
		}
	case Closed:
		cb.failures = 0
	}

	return nil
}

func (cb *circuitBreaker) State() CircuitState {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()
	return cb.state
}

func (cb *circuitBreaker) Reset() {
	cb.mutex.Lock()
	defer cb.mutex.Unlock()
	cb.state = Closed
	cb.failures = 0
	cb.successes = 0
}
