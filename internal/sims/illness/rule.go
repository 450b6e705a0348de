package illness

import "math"

const (
	// Healthy is the value of an uninfected cell.
	Healthy uint8 = 0
	// Illed is the saturated value; every other non-zero value is infected.
	Illed uint8 = 255
)

// State is the macro-state a cell value falls into.
type State uint8

const (
	StateHealthy State = iota
	StateInfected
	StateIlled
)

// Classify maps a cell value to its macro-state.
func Classify(v uint8) State {
	switch v {
	case Healthy:
		return StateHealthy
	case Illed:
		return StateIlled
	default:
		return StateInfected
	}
}

func (s State) String() string {
	switch s {
	case StateHealthy:
		return "healthy"
	case StateInfected:
		return "infected"
	case StateIlled:
		return "illed"
	default:
		return "unknown"
	}
}

// Neighborhood holds the eight Moore neighbours in NW, N, NE, W, E, SW, S, SE order.
type Neighborhood [8]uint8

// CountInfected counts neighbours strictly between healthy and illed.
func (n Neighborhood) CountInfected() uint8 {
	var count uint8
	for _, v := range n {
		if v > Healthy && v < Illed {
			count++
		}
	}
	return count
}

// CountIlled counts neighbours at the saturated value.
func (n Neighborhood) CountIlled() uint8 {
	var count uint8
	for _, v := range n {
		if v == Illed {
			count++
		}
	}
	return count
}

// Sum adds the neighbour values. It does not include the centre cell.
func (n Neighborhood) Sum() uint16 {
	var sum uint16
	for _, v := range n {
		sum += uint16(v)
	}
	return sum
}

// Next computes the value a cell takes in the following generation from its
// current value and neighbourhood.
func Next(value uint8, n Neighborhood, p Params) uint8 {
	switch value {
	case Illed:
		return Healthy
	case Healthy:
		infected := float32(n.CountInfected())
		illed := float32(n.CountIlled())
		return saturate(floorClamp(infected/p.K1) + floorClamp(illed/p.K2))
	}

	infected := n.CountInfected()
	if infected == 0 {
		if p.ZeroInfected == ZeroInfectedSaturate {
			return Illed
		}
		return value
	}
	sum := float32(n.Sum() + uint16(value))
	return saturate(floorClamp(sum/float32(infected)) + int(p.G))
}

// floorClamp floors f into [0, 255]; anything at or above 255 (including
// +Inf) collapses to 255 so later additions cannot overflow.
func floorClamp(f float32) int {
	if math.IsNaN(float64(f)) || f <= 0 {
		return 0
	}
	if f >= 255 {
		return 255
	}
	return int(math.Floor(float64(f)))
}

func saturate(v int) uint8 {
	if v > int(Illed) {
		return Illed
	}
	if v < 0 {
		return Healthy
	}
	return uint8(v)
}
