package item

import (
	"github.com/oriumgames/kit/tag"
)

// width converts a numeric tag to the type a field is stored as.
type width func(tag.Numeric) tag.Tag

func asByte(n tag.Numeric) tag.Tag  { return tag.Byte(n.AsByte()) }
func asShort(n tag.Numeric) tag.Tag { return tag.Short(n.AsShort()) }
func asInt(n tag.Numeric) tag.Tag   { return tag.Int(n.AsInt()) }

var (
	stackFields = map[string]width{
		"Count":       asByte,
		"Damage":      asShort,
		"WasPickedUp": asByte,
		"Slot":        asByte,
	}
	userFields = map[string]width{
		"Damage":      asInt,
		"RepairCost":  asInt,
		"Unbreakable": asByte,
	}
	enchantmentFields = map[string]width{
		"id":  asShort,
		"lvl": asShort,
	}
)

// normalise returns a copy of c with the numeric fields of the item stack
// format converted back to their stored widths, and with list entries that
// were flattened to SNBT text parsed back into compounds.
func normalise(c *tag.Compound) *tag.Compound {
	c = c.Clone()
	applyWidths(c, stackFields)

	if user := c.GetCompound("tag"); user != nil {
		applyWidths(user, userFields)
		if ench := user.GetList("ench"); ench != nil {
			user.Set("ench", compounds(ench, enchantmentFields))
		}
		if display := user.GetCompound("display"); display != nil {
			if lore := display.GetList("Lore"); lore != nil {
				display.Set("Lore", lines(lore))
			}
		}
	}
	return c
}

func applyWidths(c *tag.Compound, fields map[string]width) {
	for key, w := range fields {
		t, ok := c.Get(key)
		if !ok {
			continue
		}
		if n, ok := t.(tag.Numeric); ok {
			c.Set(key, w(n))
		}
	}
}

// compounds parses the SNBT strings of l into compounds. Entries that do not
// parse are dropped, as Dragonfly would skip them anyway.
func compounds(l tag.List, fields map[string]width) tag.List {
	out := make(tag.List, 0, len(l))
	for _, e := range l {
		var c *tag.Compound
		switch e := e.(type) {
		case *tag.Compound:
			c = e
		case tag.String:
			parsed, err := tag.ParseCompound(string(e))
			if err != nil {
				continue
			}
			c = parsed
		default:
			continue
		}
		applyWidths(c, fields)
		out = append(out, c)
	}
	return out
}

// lines converts every entry of l to a String.
func lines(l tag.List) tag.List {
	out := make(tag.List, len(l))
	for i, e := range l {
		if s, ok := e.(tag.String); ok {
			out[i] = s
			continue
		}
		out[i] = tag.String(e.String())
	}
	return out
}
