// Package selection keeps the visitor's cart and favorites: durable ledgers of product ids
// that live independently of the catalog.
package selection

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"storefront.GO/core/notify"
	"storefront.GO/model/entity/catalog"
	"storefront.GO/model/entity/selection"
	"storefront.GO/model/repository/storage"
)

// Storage keys of the two ledgers.
const (
	CartKey      = "cartItems"
	FavoritesKey = "favoritesItems"
)

// ErrPersistence wraps ledger write failures.
var ErrPersistence = errors.New("selection persistence failure")

// Kind selects the ledger semantics.
type Kind int

const (
	// Cart entries carry a quantity; adding an existing id increments it.
	Cart Kind = iota
	// Favorites entries have no quantity; adding an existing id is rejected.
	Favorites
)

// Store is one persisted ledger. Every operation reads the ledger from storage, applies
// the change and writes it back before returning.
type Store struct {
	kind     Kind
	key      string
	storage  storage.Storage
	notifier notify.Notifier
}

func newStore(kind Kind, key string, s storage.Storage, n notify.Notifier) *Store {
	if n == nil {
		n = notify.Discard
	}
	return &Store{kind: kind, key: key, storage: s, notifier: n}
}

// NewCart returns the cart ledger stored under CartKey.
func NewCart(s storage.Storage, n notify.Notifier) *Store {
	return newStore(Cart, CartKey, s, n)
}

// NewFavorites returns the favorites ledger stored under FavoritesKey.
func NewFavorites(s storage.Storage, n notify.Notifier) *Store {
	return newStore(Favorites, FavoritesKey, s, n)
}

func (s *Store) Kind() Kind { return s.kind }

// GetAll returns the persisted ledger. Unreadable or corrupt data yields an empty ledger.
func (s *Store) GetAll() selection.Ledger {
	raw, ok, err := s.storage.GetItem(s.key)
	if err != nil {
		log.Printf("selection: failed to read %s: %v", s.key, err)
		return selection.Ledger{}
	}
	if !ok || raw == "" {
		return selection.Ledger{}
	}
	var entries []selection.Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		log.Printf("selection: corrupt %s ignored: %v", s.key, err)
		return selection.Ledger{}
	}
	ledger := make(selection.Ledger, 0, len(entries))
	for _, e := range entries {
		if e.ID.IsZero() || ledger.Contains(e.ID) {
			continue
		}
		ledger = append(ledger, e)
	}
	return ledger
}

func (s *Store) save(ledger selection.Ledger) error {
	if s.kind == Favorites {
		for i := range ledger {
			ledger[i].Quantity = 0
		}
	}
	data, err := json.Marshal(ledger)
	if err == nil {
		err = s.storage.SetItem(s.key, string(data))
	}
	if err != nil {
		log.Printf("selection: failed to write %s: %v", s.key, err)
		s.notifier.Notify("Could not save your changes, please try again")
		return fmt.Errorf("%w: %s: %v", ErrPersistence, s.key, err)
	}
	return nil
}

// Add puts id in the ledger. In the cart an existing entry's quantity grows by one; in
// favorites an existing entry is left alone and the visitor is told.
func (s *Store) Add(id catalog.ID, name string) error {
	ledger := s.GetAll()
	if i := ledger.Index(id); i >= 0 {
		if s.kind == Favorites {
			s.notifier.Notify(fmt.Sprintf("%s is already in favorites", name))
			return nil
		}
		ledger[i].Quantity = ledger[i].Qty() + 1
	} else {
		e := selection.Entry{ID: id, Name: name}
		if s.kind == Cart {
			e.Quantity = 1
		}
		ledger = append(ledger, e)
	}
	if err := s.save(ledger); err != nil {
		return err
	}
	if s.kind == Favorites {
		s.notifier.Notify(fmt.Sprintf("Added %s to favorites", name))
	} else {
		s.notifier.Notify(fmt.Sprintf("Added %s to cart", name))
	}
	return nil
}

// Remove deletes id. Removing an absent id changes nothing and says nothing.
func (s *Store) Remove(id catalog.ID) error {
	ledger := s.GetAll()
	i := ledger.Index(id)
	if i < 0 {
		return nil
	}
	removed := ledger[i]
	ledger = append(ledger[:i], ledger[i+1:]...)
	if err := s.save(ledger); err != nil {
		return err
	}
	if s.kind == Favorites {
		s.notifier.Notify(fmt.Sprintf("Removed %s from favorites", removed.Name))
	} else {
		s.notifier.Notify(fmt.Sprintf("Removed %s from cart", removed.Name))
	}
	return nil
}

// UpdateQuantity sets the quantity of an existing cart entry and confirms it. Quantities
// below one, absent ids and the favorites ledger are silently ignored.
func (s *Store) UpdateQuantity(id catalog.ID, quantity int) error {
	if s.kind != Cart || quantity <= 0 {
		return nil
	}
	ledger := s.GetAll()
	i := ledger.Index(id)
	if i < 0 || ledger[i].Quantity == quantity {
		return nil
	}
	ledger[i].Quantity = quantity
	if err := s.save(ledger); err != nil {
		return err
	}
	s.notifier.Notify("Quantity updated")
	return nil
}

// Clear empties the ledger.
func (s *Store) Clear() error {
	if err := s.storage.RemoveItem(s.key); err != nil {
		log.Printf("selection: failed to clear %s: %v", s.key, err)
		s.notifier.Notify("Could not save your changes, please try again")
		return fmt.Errorf("%w: %s: %v", ErrPersistence, s.key, err)
	}
	return nil
}

func (s *Store) Contains(id catalog.ID) bool {
	return s.GetAll().Contains(id)
}

// Count is the badge number: total quantity for the cart, entry count for favorites.
func (s *Store) Count() int {
	ledger := s.GetAll()
	if s.kind == Favorites {
		return len(ledger)
	}
	n := 0
	for _, e := range ledger {
		n += e.Qty()
	}
	return n
}

// Toggle removes id when present and adds it otherwise. It reports whether id is in the
// ledger afterwards.
func (s *Store) Toggle(id catalog.ID, name string) (bool, error) {
	if s.Contains(id) {
		return false, s.Remove(id)
	}
	if err := s.Add(id, name); err != nil {
		return false, err
	}
	return true, nil
}
