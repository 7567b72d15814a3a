package colormap

// a is shorthand for an anchor whose value is continuous at x.
func a(x, v float64) Anchor { return Anchor{X: x, Below: v, Above: v} }

var registry = map[string]*Segmented{}

func register(name string, red, green, blue []Anchor) {
	m, err := NewSegmented(name, red, green, blue)
	if err != nil {
		panic(err)
	}
	registry[name] = m
}

func init() {
	register("jet",
		[]Anchor{a(0, 0), a(0.35, 0), a(0.66, 1), a(0.89, 1), a(1, 0.5)},
		[]Anchor{a(0, 0), a(0.125, 0), a(0.375, 1), a(0.64, 1), a(0.91, 0), a(1, 0)},
		[]Anchor{a(0, 0.5), a(0.11, 1), a(0.34, 1), a(0.65, 0), a(1, 0)},
	)
	register("hot",
		[]Anchor{a(0, 0.0416), a(0.365079, 1), a(1, 1)},
		[]Anchor{a(0, 0), a(0.365079, 0), a(0.746032, 1), a(1, 1)},
		[]Anchor{a(0, 0), a(0.746032, 0), a(1, 1)},
	)
	register("cool",
		[]Anchor{a(0, 0), a(1, 1)},
		[]Anchor{a(0, 1), a(1, 0)},
		[]Anchor{a(0, 1), a(1, 1)},
	)
	register("spring",
		[]Anchor{a(0, 1), a(1, 1)},
		[]Anchor{a(0, 0), a(1, 1)},
		[]Anchor{a(0, 1), a(1, 0)},
	)
	register("summer",
		[]Anchor{a(0, 0), a(1, 1)},
		[]Anchor{a(0, 0.5), a(1, 1)},
		[]Anchor{a(0, 0.4), a(1, 0.4)},
	)
	register("autumn",
		[]Anchor{a(0, 1), a(1, 1)},
		[]Anchor{a(0, 0), a(1, 1)},
		[]Anchor{a(0, 0), a(1, 0)},
	)
	register("winter",
		[]Anchor{a(0, 0), a(1, 0)},
		[]Anchor{a(0, 0), a(1, 1)},
		[]Anchor{a(0, 1), a(1, 0.5)},
	)
	gray := []Anchor{a(0, 0), a(1, 1)}
	register("gray", gray, gray, gray)
	register("grey", gray, gray, gray)
	binary := []Anchor{a(0, 1), a(1, 0)}
	register("binary", binary, binary, binary)
	register("bone",
		[]Anchor{a(0, 0), a(0.746032, 0.652778), a(1, 1)},
		[]Anchor{a(0, 0), a(0.365079, 0.319444), a(0.746032, 0.777778), a(1, 1)},
		[]Anchor{a(0, 0), a(0.365079, 0.444444), a(1, 1)},
	)
	register("copper",
		[]Anchor{a(0, 0), a(0.809524, 1), a(1, 1)},
		[]Anchor{a(0, 0), a(1, 0.7812)},
		[]Anchor{a(0, 0), a(1, 0.4975)},
	)
}
