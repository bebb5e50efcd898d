package selection

import "storefront.GO/model/entity/catalog"

// Entry is one selected product. Favorites entries carry no quantity.
type Entry struct {
	ID       catalog.ID `json:"id"`
	Name     string     `json:"name"`
	Quantity int        `json:"quantity,omitempty"`
}

// Qty returns the entry quantity; a missing quantity counts as 1.
func (e Entry) Qty() int {
	if e.Quantity < 1 {
		return 1
	}
	return e.Quantity
}

// Ledger is the persisted selection, in insertion order, unique by id.
type Ledger []Entry

// Index returns the position of id, or -1.
func (l Ledger) Index(id catalog.ID) int {
	for i, e := range l {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (l Ledger) Contains(id catalog.ID) bool {
	return l.Index(id) >= 0
}
