// Package item converts Dragonfly item stacks to and from tag trees, binary
// NBT and the suffix-tagged JSON form of package tag.
//
// Stacks are written in Dragonfly's own disk format, the one it uses for
// player inventories in the world database, so everything Dragonfly persists
// about a stack (enchantments, custom name, lore, damage, anvil cost and
// values set with Stack.WithValue) is carried over.
package item

import (
	"fmt"
	_ "unsafe"

	// Links in nbtconv, which block imports, and registers block items.
	_ "github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/sandertv/gophertunnel/minecraft/nbt"

	"github.com/oriumgames/kit/jsonval"
	"github.com/oriumgames/kit/tag"
)

// noinspection ALL
//
//go:linkname writeItem github.com/df-mc/dragonfly/server/internal/nbtconv.WriteItem
func writeItem(s item.Stack, disk bool) map[string]any

// noinspection ALL
//
//go:linkname readItem github.com/df-mc/dragonfly/server/internal/nbtconv.Item
func readItem(data map[string]any, s *item.Stack) item.Stack

// ToTag returns the disk NBT of s as a compound. An empty stack yields an
// empty compound.
func ToTag(s item.Stack) (*tag.Compound, error) {
	if s.Empty() {
		return tag.NewCompound(), nil
	}
	c, err := tag.FromNBT(writeItem(s, true))
	if err != nil {
		return nil, fmt.Errorf("item: %s: %w", name(s), err)
	}
	return c, nil
}

// FromTag returns the stack described by c. A compound without a "Name", or
// naming an item that is not registered, yields an empty stack.
//
// Numeric widths lost on the way through JSON are restored for the fields of
// the stack format before the compound is handed to Dragonfly.
func FromTag(c *tag.Compound) item.Stack {
	if c == nil || c.GetString("Name") == "" {
		return item.Stack{}
	}
	c = normalise(c)
	return readItem(roundTrip(tag.ToNBT(c)), nil)
}

// roundTrip passes m through the binary encoding, so Dragonfly sees the same
// Go types it sees when reading stacks from its database.
func roundTrip(m map[string]any) map[string]any {
	data, err := nbt.MarshalEncoding(m, nbt.LittleEndian)
	if err != nil {
		return m
	}
	var out map[string]any
	if err := nbt.UnmarshalEncoding(data, &out, nbt.LittleEndian); err != nil {
		return m
	}
	return out
}

// Encode writes s as a binary NBT compound using enc.
func Encode(s item.Stack, enc nbt.Encoding) ([]byte, error) {
	c, err := ToTag(s)
	if err != nil {
		return nil, err
	}
	return tag.MarshalNBT(c, enc)
}

// Decode reads a stack written by Encode.
func Decode(data []byte, enc nbt.Encoding) (item.Stack, error) {
	c, err := tag.UnmarshalNBT(data, enc)
	if err != nil {
		return item.Stack{}, fmt.Errorf("item: %w", err)
	}
	return FromTag(c), nil
}

// ToJSON returns s in the JSON form of tag.EncodeJSON.
func ToJSON(s item.Stack) (*jsonval.Object, error) {
	c, err := ToTag(s)
	if err != nil {
		return nil, err
	}
	return tag.EncodeJSON(c), nil
}

// FromJSON reads a stack written by ToJSON.
func FromJSON(obj *jsonval.Object) (item.Stack, error) {
	c, err := tag.DecodeJSON(obj)
	if err != nil {
		return item.Stack{}, fmt.Errorf("item: %w", err)
	}
	return FromTag(c), nil
}

func name(s item.Stack) string {
	n, _ := s.Item().EncodeItem()
	return n
}
