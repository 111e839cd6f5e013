package world

// Simulation turns variable frame times into fixed ticks.
type Simulation struct {
	Timestep    float32
	MaxSubsteps int

	accumulator float32
	dropped     uint64
}

func NewSimulation(timestep float32, maxSubsteps int) *Simulation {
	return &Simulation{Timestep: timestep, MaxSubsteps: maxSubsteps}
}

// Advance banks frameTime and runs step once per whole timestep banked, at
// most MaxSubsteps times. Whole ticks still banked past the clamp are dropped.
func (s *Simulation) Advance(frameTime float32, step func(deltaTime float32)) int {
	if s.Timestep <= 0 {
		return 0
	}
	if frameTime > 0 {
		s.accumulator += frameTime
	}

	steps := 0
	for s.accumulator >= s.Timestep && steps < s.MaxSubsteps {
		step(s.Timestep)
		s.accumulator -= s.Timestep
		steps++
	}

	if s.accumulator >= s.Timestep {
		backlog := uint64(s.accumulator / s.Timestep)
		s.dropped += backlog
		s.accumulator -= float32(backlog) * s.Timestep
	}
	return steps
}

// Alpha is how far the simulation sits between its last tick and the next,
// for interpolating drawn positions.
func (s *Simulation) Alpha() float32 {
	if s.Timestep <= 0 {
		return 0
	}
	return s.accumulator / s.Timestep
}

// Dropped is the number of ticks skipped by the substep clamp so far.
func (s *Simulation) Dropped() uint64 {
	return s.dropped
}
