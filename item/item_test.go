package item

import (
	"encoding/base64"
	"testing"

	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/item/enchantment"
	"github.com/google/uuid"
	"github.com/sandertv/gophertunnel/minecraft/nbt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oriumgames/kit/jsonval"
	"github.com/oriumgames/kit/tag"
)

func sword() item.Stack {
	return item.NewStack(item.Sword{Tier: item.ToolTierDiamond}, 1).
		WithCustomName("Blade").
		WithLore("first", "second").
		WithEnchantments(item.NewEnchantment(enchantment.Sharpness, 2))
}

func assertSword(t *testing.T, s item.Stack) {
	t.Helper()
	require.False(t, s.Empty())
	assert.IsType(t, item.Sword{}, s.Item())
	assert.Equal(t, 1, s.Count())
	assert.Equal(t, "Blade", s.CustomName())
	assert.Equal(t, []string{"first", "second"}, s.Lore())
	require.Len(t, s.Enchantments(), 1)
	assert.Equal(t, 2, s.Enchantments()[0].Level())
}

func TestTagRoundTrip(t *testing.T) {
	c, err := ToTag(sword())
	require.NoError(t, err)
	assert.NotEmpty(t, c.GetString("Name"))

	assertSword(t, FromTag(c))
}

func TestJSONRoundTrip(t *testing.T) {
	obj, err := ToJSON(item.NewStack(item.Diamond{}, 12))
	require.NoError(t, err)

	data, err := jsonval.Marshal(obj)
	require.NoError(t, err)
	back, err := jsonval.ParseObject(data)
	require.NoError(t, err)

	s, err := FromJSON(back)
	require.NoError(t, err)
	assert.Equal(t, item.Diamond{}, s.Item())
	assert.Equal(t, 12, s.Count())

	obj, err = ToJSON(sword())
	require.NoError(t, err)
	s, err = FromJSON(obj)
	require.NoError(t, err)
	assertSword(t, s)
}

func TestBinaryRoundTrip(t *testing.T) {
	for _, enc := range []nbt.Encoding{nbt.LittleEndian, nbt.NetworkLittleEndian, nbt.BigEndian} {
		data, err := Encode(sword(), enc)
		require.NoError(t, err)
		s, err := Decode(data, enc)
		require.NoError(t, err)
		assertSword(t, s)
	}
}

func TestEmptyStacks(t *testing.T) {
	c, err := ToTag(item.Stack{})
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())

	assert.True(t, FromTag(tag.NewCompound()).Empty())
	assert.True(t, FromTag(nil).Empty())

	unknown := tag.NewCompound()
	unknown.SetString("Name", "kit:not_an_item")
	unknown.SetByte("Count", 1)
	assert.True(t, FromTag(unknown).Empty())
}

func TestNormaliseRestoresWidths(t *testing.T) {
	user := tag.NewCompound()
	user.SetInt("RepairCost", 1)
	user.Set("ench", tag.List{tag.String("{id:9,lvl:2}"), tag.String("broken{")})

	c := tag.NewCompound()
	c.SetString("Name", "minecraft:diamond_sword")
	c.SetInt("Count", 1)
	c.SetInt("Damage", 0)
	c.Set("tag", user)

	got := normalise(c)
	assert.Equal(t, tag.Byte(1), got.MustGet("Count"))
	assert.Equal(t, tag.Short(0), got.MustGet("Damage"))

	list := got.GetCompound("tag").GetList("ench")
	require.Len(t, list, 1)
	e := list[0].(*tag.Compound)
	assert.Equal(t, tag.Short(9), e.MustGet("id"))
	assert.Equal(t, tag.Short(2), e.MustGet("lvl"))

	// The input is left untouched.
	assert.Equal(t, tag.Int(1), c.MustGet("Count"))
}

func TestSkullCompound(t *testing.T) {
	assert.Equal(t, 0, Skull{Owner: "Steve"}.Compound().Len())

	c := Skull{Owner: "Notch", Texture: "abc"}.Compound()
	assert.Equal(t, `{owner:"Notch",texture:"abc"}`, c.String())
	assert.Equal(t, Skull{Owner: "Notch", Texture: "abc"}, SkullFromCompound(c))
}

func TestNormalizeTexture(t *testing.T) {
	url := "http://textures.minecraft.net/texture/abc"
	want := base64.StdEncoding.EncodeToString([]byte(`{"textures":{"SKIN":{"url":"` + url + `"}}}`))
	assert.Equal(t, want, NormalizeTexture(url))
	assert.Equal(t, "eyJ0ZXh0dXJlcyI6e319", NormalizeTexture("eyJ0ZXh0dXJlcyI6e319"))
	assert.Equal(t, "", NormalizeTexture(""))
}

func TestOwnerUUID(t *testing.T) {
	assert.Equal(t, uuid.MustParse("b50ad385-829d-3141-a216-7e7d7539ba7f"), Skull{Owner: "Notch"}.OwnerUUID())

	id := uuid.New()
	assert.Equal(t, id, Skull{Owner: id.String()}.OwnerUUID())
	assert.Equal(t, uuid.Nil, Skull{}.OwnerUUID())
}

func TestApplySkull(t *testing.T) {
	meta := tag.NewCompound()
	meta.SetString("owner", "Notch")
	meta.SetString("texture", "http://textures.minecraft.net/texture/abc")

	head := item.NewStack(block.Skull{Type: block.PlayerHead()}, 1)
	_, ok := ReadSkull(head)
	assert.False(t, ok)

	head = ApplySkull(head, meta)
	sk, ok := ReadSkull(head)
	require.True(t, ok)
	assert.Equal(t, "Notch", sk.Owner)
	assert.Equal(t, NormalizeTexture("http://textures.minecraft.net/texture/abc"), sk.Texture)

	diamond := item.NewStack(item.Diamond{}, 1)
	assert.Equal(t, diamond, ApplySkull(diamond, meta))
	_, ok = ReadSkull(diamond)
	assert.False(t, ok)
}
