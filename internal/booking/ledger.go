package booking

import (
	"festly/internal/catalog"

	"github.com/google/uuid"
)

// SelectionLedger maps catalog item ids to selected quantities for one
// booking. A quantity of zero is never stored: removing a selection
// deletes the entry, which keeps "is this item chosen" checks honest.
// Mandatory-category items are pinned at quantity 1 and cannot be
// cleared by the guest.
type SelectionLedger struct {
	quantities map[uuid.UUID]int
	items      map[uuid.UUID]catalog.Item
}

// NewSelectionLedger builds an empty ledger over a venue's catalog
func NewSelectionLedger(items []catalog.Item) *SelectionLedger {
	return NewSelectionLedgerWithQuantities(items, nil)
}

// NewSelectionLedgerWithQuantities restores a ledger from previously
// saved quantities (a booking session being reloaded)
func NewSelectionLedgerWithQuantities(items []catalog.Item, quantities map[uuid.UUID]int) *SelectionLedger {
	index := make(map[uuid.UUID]catalog.Item, len(items))
	for _, item := range items {
		index[item.ID] = item
	}

	l := &SelectionLedger{
		quantities: make(map[uuid.UUID]int, len(quantities)),
		items:      index,
	}
	for id, qty := range quantities {
		if qty > 0 {
			l.quantities[id] = qty
		}
	}
	return l
}

// InitializeMandatory inserts every mandatory-category item that is not
// already present at quantity 1. Idempotent: re-running never resets or
// duplicates an existing entry.
func (l *SelectionLedger) InitializeMandatory() {
	for id, item := range l.items {
		if !item.IsMandatory() {
			continue
		}
		if _, present := l.quantities[id]; !present {
			l.quantities[id] = 1
		}
	}
}

// MinQuantity returns the floor quantity for an item: 1 for mandatory
// items, 0 otherwise.
func (l *SelectionLedger) MinQuantity(itemID uuid.UUID) int {
	if item, ok := l.items[itemID]; ok && item.IsMandatory() {
		return 1
	}
	return 0
}

// SetQuantity sets the selected quantity for an item. Non-positive
// quantities remove the entry, except for mandatory items, where the
// call is ignored. Positive quantities are clamped to the item's stock.
func (l *SelectionLedger) SetQuantity(itemID uuid.UUID, qty int) {
	item, known := l.items[itemID]

	if qty <= 0 {
		if known && item.IsMandatory() {
			return // mandatory items cannot be cleared
		}
		delete(l.quantities, itemID)
		return
	}

	if known && item.IsMandatory() {
		// mandatory items exist only at quantity 1
		l.quantities[itemID] = 1
		return
	}

	if min := l.MinQuantity(itemID); qty < min {
		qty = min
	}
	if known && item.Stock != nil && qty > *item.Stock {
		qty = *item.Stock
	}
	if qty <= 0 {
		delete(l.quantities, itemID)
		return
	}

	l.quantities[itemID] = qty
}

// ApplyExclusiveSelection chooses an item within a single-choice
// subcategory (table models, chair models): any other selection in the
// same subcategory is cleared before the new quantity is applied.
func (l *SelectionLedger) ApplyExclusiveSelection(subcategory string, itemID uuid.UUID, qty int) {
	if subcategory != "" {
		for id, item := range l.items {
			if id == itemID || item.Subcategory != subcategory || item.IsMandatory() {
				continue
			}
			delete(l.quantities, id)
		}
	}
	l.SetQuantity(itemID, qty)
}

// Quantity returns the selected quantity for an item, 0 when absent
func (l *SelectionLedger) Quantity(itemID uuid.UUID) int {
	return l.quantities[itemID]
}

// Quantities returns a copy of the ledger's entries
func (l *SelectionLedger) Quantities() map[uuid.UUID]int {
	out := make(map[uuid.UUID]int, len(l.quantities))
	for id, qty := range l.quantities {
		out[id] = qty
	}
	return out
}

// Items returns every catalog item the ledger selects from
func (l *SelectionLedger) Items() []catalog.Item {
	out := make([]catalog.Item, 0, len(l.items))
	for _, item := range l.items {
		out = append(out, item)
	}
	return out
}

// Item looks up a catalog item known to the ledger
func (l *SelectionLedger) Item(itemID uuid.UUID) (catalog.Item, bool) {
	item, ok := l.items[itemID]
	return item, ok
}

// Len returns the number of selected entries, mandatory ones included
func (l *SelectionLedger) Len() int {
	return len(l.quantities)
}
