package dispatch

import (
	"sync"

	"github.com/pharmassist/pharmassist-api/models"
)

// AssignmentPolicy picks a delivery agent from the available pool. The pool
// is never empty when Select is called.
type AssignmentPolicy interface {
	Select(agents []models.User) models.User
}

// FirstAvailable always assigns the first agent in the pool
type FirstAvailable struct{}

// Select returns the first agent
func (FirstAvailable) Select(agents []models.User) models.User {
	return agents[0]
}

// RoundRobin rotates assignments across the pool so no single agent absorbs
// every order. The cursor survives pool size changes by wrapping on modulo.
type RoundRobin struct {
	mu   sync.Mutex
	next int
}

// NewRoundRobin creates a round-robin assignment policy
func NewRoundRobin() *RoundRobin {
	return &RoundRobin{}
}

// Select returns the next agent in rotation
func (p *RoundRobin) Select(agents []models.User) models.User {
	p.mu.Lock()
	defer p.mu.Unlock()

	agent := agents[p.next%len(agents)]
	p.next++
	return agent
}
