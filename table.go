package uconv

// factor is a unit's scale relative to its category's base unit.
type factor struct {
	name  string
	scale float64
}

// table is an immutable set of units sharing a base unit. The first entry is
// the base unit and must have a scale of 1.
type table struct {
	order []factor
	index map[string]float64
}

func newTable(ff ...factor) *table {
	if len(ff) == 0 || ff[0].scale != 1 {
		panic("uconv: table must start with its base unit")
	}
	t := &table{
		order: ff,
		index: make(map[string]float64, len(ff)),
	}
	for _, f := range ff {
		if f.scale <= 0 {
			panic("uconv: non-positive scale for " + f.name)
		}
		t.index[f.name] = f.scale
	}
	return t
}

func (t *table) contains(name string) (ok bool) {
	_, ok = t.index[name]
	return
}

func (t *table) base() string {
	return t.order[0].name
}

func (t *table) names() []string {
	s := make([]string, len(t.order))
	for i, f := range t.order {
		s[i] = f.name
	}
	return s
}

// convert rescales v from one unit to another through the base unit. Both
// names must be in t. Converting a unit to itself returns v exactly.
func (t *table) convert(v float64, from, to string) float64 {
	if from == to {
		return v
	}
	return v * t.index[from] / t.index[to]
}

// Meters per unit.
var lengthUnits = newTable(
	factor{"meter", 1},
	factor{"feet", 0.3048},
	factor{"kilometer", 1000},
	factor{"mile", 1609.344},
	factor{"centimeter", 0.01},
	factor{"inch", 0.0254},
	factor{"yard", 0.9144},
)

// Kilograms per unit.
var massUnits = newTable(
	factor{"kilogram", 1},
	factor{"gram", 0.001},
	factor{"pound", 0.453592},
	factor{"ounce", 0.0283495},
	factor{"ton", 1000},
	factor{"stone", 6.35029},
)
