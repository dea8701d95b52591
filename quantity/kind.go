package quantity

import "sync"

// Kind is the physical quantity kind of a unit.
type Kind int8

// Kinds of units known to wording templates. Area and Volume are derived
// from Length.
const (
	Length Kind = iota
	Mass
	Capacity
	Currency
	Area
	Volume
)

var kindNames = [...]string{"length", "mass", "capacity", "currency", "area", "volume"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind returns the kind for a name like "length" or "area".
func ParseKind(s string) (Kind, bool) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), true
		}
	}
	return Length, false
}

// Derived is true for kinds which are expressed by a length unit raised to a
// power.
func (k Kind) Derived() bool {
	return k == Area || k == Volume
}

// Exponent is 2 for areas, 3 for volumes, and 1 otherwise.
func (k Kind) Exponent() int {
	switch k {
	case Area:
		return 2
	case Volume:
		return 3
	}
	return 1
}

// --- Catalog ---------------------------------------------------------------

// Catalog holds the candidate unit symbols per kind. Derived kinds have no
// candidates of their own; they use the ones for Length.
type Catalog struct {
	sync.RWMutex
	units map[Kind][]string
	kinds map[string]Kind
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		units: make(map[Kind][]string),
		kinds: make(map[string]Kind),
	}
}

// DefaultCatalog contains the metric units used in exercises.
var DefaultCatalog = makeDefaultCatalog()

func makeDefaultCatalog() *Catalog {
	c := NewCatalog()
	c.Add(Length, "km", "hm", "dam", "m", "dm", "cm", "mm")
	c.Add(Mass, "t", "kg", "hg", "dag", "g", "dg", "cg", "mg")
	c.Add(Capacity, "hL", "daL", "L", "dL", "cL", "mL")
	return c
}

// Add appends candidate symbols for kind k.
func (c *Catalog) Add(k Kind, symbols ...string) {
	c.Lock()
	defer c.Unlock()
	if k.Derived() {
		k = Length
	}
	c.units[k] = append(c.units[k], symbols...)
	for _, s := range symbols {
		c.kinds[s] = k
	}
}

// Candidates returns the unit symbols to draw from for kind k.
func (c *Catalog) Candidates(k Kind) []string {
	c.RLock()
	defer c.RUnlock()
	if k.Derived() {
		k = Length
	}
	return c.units[k]
}

// KindOf returns the kind of a unit symbol.
func (c *Catalog) KindOf(symbol string) (Kind, bool) {
	c.RLock()
	defer c.RUnlock()
	k, ok := c.kinds[symbol]
	return k, ok
}
