package sim

import "math"

// Signal is a deterministic scalar signal
type Signal interface {
	// At returns signal value at time t
	At(t float64) float64
}

// Sinusoid is a sine wave with a DC offset
type Sinusoid struct {
	// Magnitude is sine wave amplitude
	Magnitude float64
	// Freq is frequency in Hz
	Freq float64
	// Phase is phase lag in radians
	Phase float64
	// Offset is DC offset
	Offset float64
}

// At returns Magnitude*sin(2*pi*Freq*t - Phase) + Offset
func (s *Sinusoid) At(t float64) float64 {
	return s.Magnitude*math.Sin(2*math.Pi*s.Freq*t-s.Phase) + s.Offset
}
