package main

// Fuel returns the fuel needed to lift mass: floor(mass/3) - 2.
func Fuel(mass int64) int64 {
	q := mass / 3
	if mass%3 != 0 && mass < 0 {
		q--
	}

	return q - 2
}

// TotalFuel returns the fuel for mass plus the fuel needed to carry that
// fuel, repeated until the extra amount is zero or negative.
func TotalFuel(mass int64) int64 {
	var total int64
	for f := Fuel(mass); f > 0; f = Fuel(f) {
		total += f
	}

	return total
}

// Chain returns the positive fuel terms summed by TotalFuel, largest first.
func Chain(mass int64) []int64 {
	var terms []int64
	for f := Fuel(mass); f > 0; f = Fuel(f) {
		terms = append(terms, f)
	}

	return terms
}

type Mode int

const (
	Recursive Mode = iota
	Simple
)

func (m Mode) String() string {
	if m == Simple {
		return "simple"
	}

	return "recursive"
}

// Of returns the fuel mode m requires for mass.
func (m Mode) Of(mass int64) int64 {
	if m == Simple {
		return Fuel(mass)
	}

	return TotalFuel(mass)
}
