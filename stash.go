package kit

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/item/inventory"

	"github.com/oriumgames/kit/files"
	kititem "github.com/oriumgames/kit/item"
	"github.com/oriumgames/kit/jsonval"
	"github.com/oriumgames/kit/tag"
)

// ErrNotFound is returned when a stash has no entry under a key.
var ErrNotFound = errors.New("kit: stash entry not found")

// StashOption configures a Stash.
type StashOption func(*Stash)

// WithStashLogger sets the logger used to report slots that cannot be
// restored. Default: slog.Default().
func WithStashLogger(l *slog.Logger) StashOption {
	return func(s *Stash) {
		if l != nil {
			s.log = l
		}
	}
}

// Stash is a named store of item stacks and inventories kept in a JSON file.
// Every change is saved immediately. A Stash is safe for concurrent use.
type Stash struct {
	file *files.File
	log  *slog.Logger
}

// NewStash returns a Stash that stores its entries in f.
func NewStash(f *files.File, opts ...StashOption) *Stash {
	s := &Stash{file: f, log: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// File returns the file backing the stash.
func (s *Stash) File() *files.File {
	return s.file
}

// Keys returns the keys of all entries.
func (s *Stash) Keys() []string {
	return s.file.Keys()
}

// Put stores it under key and saves the file.
func (s *Stash) Put(key string, it item.Stack) error {
	obj, err := kititem.ToJSON(it)
	if err != nil {
		return fmt.Errorf("kit: stash %q: %w", key, err)
	}
	s.file.Set(key, obj)
	return s.save(key)
}

// Get returns the stack stored under key. It reports false when there is no
// entry for key.
func (s *Stash) Get(key string) (item.Stack, bool, error) {
	v, ok := s.file.Value(key)
	if !ok {
		return item.Stack{}, false, nil
	}
	obj, ok := v.(*jsonval.Object)
	if !ok {
		return item.Stack{}, true, fmt.Errorf("kit: stash %q holds a %s, not an item", key, v.Kind())
	}
	it, err := kititem.FromJSON(obj)
	if err != nil {
		return item.Stack{}, true, fmt.Errorf("kit: stash %q: %w", key, err)
	}
	return it, true, nil
}

// Delete removes the entry under key and saves the file.
func (s *Stash) Delete(key string) error {
	if err := s.file.Remove(key); err != nil {
		return fmt.Errorf("kit: stash %q: %w", key, err)
	}
	return nil
}

// PutInventory stores the non-empty slots of inv under key, as a compound
// keyed by slot index, and saves the file.
func (s *Stash) PutInventory(key string, inv *inventory.Inventory) error {
	c := tag.NewCompound()
	for slot, it := range inv.Slots() {
		if it.Empty() {
			continue
		}
		itemTag, err := kititem.ToTag(it)
		if err != nil {
			return fmt.Errorf("kit: stash %q: slot %d: %w", key, slot, err)
		}
		c.Set(strconv.Itoa(slot), itemTag)
	}
	s.file.SetTag(key, c)
	return s.save(key)
}

// RestoreInventory clears inv and fills it with the slots stored under key.
// Slots that no longer fit inv, or hold items that are not registered, are
// skipped and logged. ErrNotFound is returned, leaving inv untouched, when
// there is no entry for key.
func (s *Stash) RestoreInventory(key string, inv *inventory.Inventory) error {
	c, ok, err := s.file.Tag(key)
	if err != nil {
		return fmt.Errorf("kit: stash %q: %w", key, err)
	}
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, key)
	}

	inv.Clear()
	for k, t := range c.All() {
		slot, err := strconv.Atoi(k)
		itemTag, isCompound := t.(*tag.Compound)
		if err != nil || !isCompound {
			s.log.Warn("kit: skipping malformed stash slot", "key", key, "slot", k)
			continue
		}
		it := kititem.FromTag(itemTag)
		if it.Empty() {
			s.log.Warn("kit: skipping unknown item", "key", key, "slot", slot, "item", itemTag.GetString("Name"))
			continue
		}
		if err := inv.SetItem(slot, it); err != nil {
			s.log.Warn("kit: skipping stash slot", "key", key, "slot", slot, "error", err)
		}
	}
	return nil
}

func (s *Stash) save(key string) error {
	if err := s.file.Save(); err != nil {
		return fmt.Errorf("kit: stash %q: %w", key, err)
	}
	return nil
}
