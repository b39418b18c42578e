package sim

import "fmt"

// InitCond implements filter.InitCond
type InitCond struct {
	state float64
	cov   float64
}

// NewInitCond creates new InitCond and returns it
func NewInitCond(state, cov float64) *InitCond {
	return &InitCond{
		state: state,
		cov:   cov,
	}
}

// State returns initial state
func (c *InitCond) State() float64 {
	return c.state
}

// Cov returns initial variance
func (c *InitCond) Cov() float64 {
	return c.cov
}

// String implements the Stringer interface.
func (c *InitCond) String() string {
	return fmt.Sprintf("InitCond{State=%v Cov=%v}", c.state, c.cov)
}
