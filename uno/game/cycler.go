package game

const (
	left  = -1
	right = 1
)

// Cycler walks seat numbers 0..seats-1 in the current direction.
type Cycler struct {
	seats     int
	current   int
	direction int
}

func NewCycler(seats int) *Cycler {
	return &Cycler{
		seats:     seats,
		current:   0,
		direction: right,
	}
}

func (c *Cycler) Current() int {
	return c.current
}

func (c *Cycler) Direction() int {
	return c.direction
}

// Peek returns the seat steps ahead without moving.
func (c *Cycler) Peek(steps int) int {
	return ((c.current+c.direction*steps)%c.seats + c.seats) % c.seats
}

func (c *Cycler) Advance(steps int) int {
	c.current = c.Peek(steps)
	return c.current
}

func (c *Cycler) Reverse() {
	switch c.direction {
	case right:
		c.direction = left
	case left:
		c.direction = right
	}
}
