package catalog

// Catalog is an ordered, read-only collection of plants. Narrowing
// operations return new catalogs and never modify the receiver. A nil
// *Catalog behaves as an empty one.
type Catalog struct {
	plants []Plant
}

// New creates a catalog holding a copy of plants, cleaned like loaded rows.
func New(plants []Plant) *Catalog {
	out := make([]Plant, len(plants))
	copy(out, plants)
	for i := range out {
		out[i].clean()
	}
	return &Catalog{plants: out}
}

// Len returns the number of plants.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.plants)
}

// Plants returns the plants in catalog order.
func (c *Catalog) Plants() []Plant {
	if c == nil {
		return nil
	}
	return append([]Plant(nil), c.plants...)
}

// DisplayNames returns the display name of every plant in catalog order.
func (c *Catalog) DisplayNames() []string {
	out := make([]string, 0, c.Len())
	for _, p := range c.Plants() {
		out = append(out, p.DisplayName())
	}
	return out
}

// Find returns the first plant with the given display name.
func (c *Catalog) Find(displayName string) (Plant, bool) {
	if c == nil {
		return Plant{}, false
	}
	for _, p := range c.plants {
		if p.DisplayName() == displayName {
			return p, true
		}
	}
	return Plant{}, false
}

// Where returns the plants satisfying keep, in catalog order.
func (c *Catalog) Where(keep func(Plant) bool) *Catalog {
	out := &Catalog{}
	if c == nil {
		return out
	}
	for _, p := range c.plants {
		if keep(p) {
			out.plants = append(out.plants, p)
		}
	}
	return out
}
