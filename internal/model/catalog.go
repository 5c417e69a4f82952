package model

// Catalog maps package names to their resolved contract sources, preserving
// the order in which package names were first seen.
type Catalog struct {
	order   []string
	entries map[string]Entry
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{entries: make(map[string]Entry)}
}

// Set stores the entry under its package name. A later entry for a name that
// is already present replaces the earlier one but keeps its position.
func (c *Catalog) Set(entry Entry) (replaced bool) {
	if _, ok := c.entries[entry.Package]; ok {
		replaced = true
	} else {
		c.order = append(c.order, entry.Package)
	}

	c.entries[entry.Package] = entry

	return replaced
}

// Get returns the entry registered for name.
func (c *Catalog) Get(name string) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}

	entry, ok := c.entries[name]

	return entry, ok
}

// Has reports whether name is a catalogued package.
func (c *Catalog) Has(name string) bool {
	_, ok := c.Get(name)
	return ok
}

// Len returns the number of packages.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}

	return len(c.order)
}

// Names returns the package names in insertion order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}

	names := make([]string, len(c.order))
	copy(names, c.order)

	return names
}

// Entries returns a copy of all entries in insertion order.
func (c *Catalog) Entries() []Entry {
	if c == nil {
		return nil
	}

	entries := make([]Entry, 0, len(c.order))
	for _, name := range c.order {
		entries = append(entries, c.entries[name])
	}

	return entries
}

// LongestName returns the length of the longest package name.
func (c *Catalog) LongestName() int {
	longest := 0

	for _, name := range c.Names() {
		if len(name) > longest {
			longest = len(name)
		}
	}

	return longest
}
