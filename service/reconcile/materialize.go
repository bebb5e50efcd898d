// Package reconcile joins a selection ledger with the current catalog snapshot.
package reconcile

import (
	"storefront.GO/model/entity/catalog"
	"storefront.GO/model/entity/selection"
)

// LineItem is a ledger entry resolved against the catalog.
type LineItem struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Subtotal is price times quantity.
func (l LineItem) Subtotal() float64 {
	return l.Product.Price * float64(l.Quantity)
}

// Materialize returns one line per ledger entry whose id is in snap, in ledger order.
// Entries missing from snap are skipped; the ledger itself is never modified.
func Materialize(ledger selection.Ledger, snap *catalog.Snapshot) []LineItem {
	lines := make([]LineItem, 0, len(ledger))
	for _, e := range ledger {
		p, ok := snap.Find(e.ID)
		if !ok {
			continue
		}
		lines = append(lines, LineItem{Product: p, Quantity: e.Qty()})
	}
	return lines
}

// Missing returns the ledger ids that snap does not know.
func Missing(ledger selection.Ledger, snap *catalog.Snapshot) []catalog.ID {
	var ids []catalog.ID
	for _, e := range ledger {
		if _, ok := snap.Find(e.ID); !ok {
			ids = append(ids, e.ID)
		}
	}
	return ids
}
