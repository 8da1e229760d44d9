package shared

import "fmt"

// NumSeats is the number of players at the table.
const NumSeats = 4

// Seat is a position at the table, 0..3, clockwise.
type Seat int

// Next returns the seat to the left (clockwise).
func (s Seat) Next() Seat {
	return (s + 1) % NumSeats
}

// Partner returns the seat across the table.
func (s Seat) Partner() Seat {
	return (s + 2) % NumSeats
}

// Team returns the partnership the seat belongs to.
func (s Seat) Team() TeamEnum {
	if s%2 == 0 {
		return TeamA
	}
	return TeamB
}

// Valid reports whether the seat exists.
func (s Seat) Valid() bool {
	return s >= 0 && s < NumSeats
}

func (s Seat) String() string {
	return fmt.Sprintf("seat %d", int(s))
}

// SeatsFrom returns all four seats in play order starting at first.
func SeatsFrom(first Seat) [NumSeats]Seat {
	var order [NumSeats]Seat
	for i := range order {
		order[i] = (first + Seat(i)) % NumSeats
	}
	return order
}
