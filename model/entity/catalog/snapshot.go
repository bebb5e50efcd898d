package catalog

// Snapshot is the product set of one catalog load, in document order, unique by id.
// A new load produces a new Snapshot; snapshots are never updated in place.
type Snapshot struct {
	products []Product
	index    map[ID]int
}

// NewSnapshot builds a snapshot from products. When ids repeat, the first record wins.
func NewSnapshot(products []Product) *Snapshot {
	s := &Snapshot{
		products: make([]Product, 0, len(products)),
		index:    make(map[ID]int, len(products)),
	}
	for _, p := range products {
		if _, dup := s.index[p.ID]; dup {
			continue
		}
		s.index[p.ID] = len(s.products)
		s.products = append(s.products, p)
	}
	return s
}

// Find returns the product with id.
func (s *Snapshot) Find(id ID) (Product, bool) {
	if s == nil {
		return Product{}, false
	}
	i, ok := s.index[id]
	if !ok {
		return Product{}, false
	}
	return s.products[i], true
}

// Products returns a copy of the products in document order.
func (s *Snapshot) Products() []Product {
	if s == nil {
		return nil
	}
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.products)
}
