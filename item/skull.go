package item

import (
	"crypto/md5"
	"encoding/base64"
	"strings"

	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/google/uuid"

	"github.com/oriumgames/kit/jsonval"
	"github.com/oriumgames/kit/tag"
)

// Value keys under which skull metadata is stored on a stack. Dragonfly
// persists stack values, so the metadata survives ToTag and FromTag.
const (
	skullOwnerKey   = "kit:skull_owner"
	skullTextureKey = "kit:skull_texture"
)

// defaultOwner is the owner a head without a profile reports. It is never
// stored.
const defaultOwner = "Steve"

// Skull is the owner and skin texture of a player head.
type Skull struct {
	Owner string
	// Texture is the base64 encoded texture property of the owner's profile.
	Texture string
}

// SkullFromCompound reads the "owner" and "texture" strings of c. An http(s)
// texture URL is normalised with NormalizeTexture.
func SkullFromCompound(c *tag.Compound) Skull {
	if c == nil {
		return Skull{}
	}
	return Skull{
		Owner:   c.GetString("owner"),
		Texture: NormalizeTexture(c.GetString("texture")),
	}
}

// Compound returns the metadata as a compound holding "owner" and "texture".
// The owner is left out when empty or "Steve", the texture when empty.
func (s Skull) Compound() *tag.Compound {
	c := tag.NewCompound()
	if s.Owner != "" && s.Owner != defaultOwner {
		c.SetString("owner", s.Owner)
	}
	if s.Texture != "" {
		c.SetString("texture", s.Texture)
	}
	return c
}

// OwnerUUID returns the UUID of the owner. An owner that is a UUID is parsed;
// a player name maps to its offline-mode UUID.
func (s Skull) OwnerUUID() uuid.UUID {
	if s.Owner == "" {
		return uuid.Nil
	}
	if id, err := uuid.Parse(s.Owner); err == nil {
		return id
	}
	sum := md5.Sum([]byte("OfflinePlayer:" + s.Owner))
	sum[6] = sum[6]&0x0f | 0x30
	sum[8] = sum[8]&0x3f | 0x80
	return uuid.UUID(sum)
}

// NormalizeTexture turns a skin URL into the base64 texture property that
// refers to it. Other values are returned unchanged.
func NormalizeTexture(texture string) string {
	if !strings.HasPrefix(texture, "http") {
		return texture
	}
	skin := jsonval.NewObject()
	skin.Set("url", jsonval.String(texture))
	textures := jsonval.NewObject()
	textures.Set("SKIN", skin)
	root := jsonval.NewObject()
	root.Set("textures", textures)

	data, err := jsonval.Marshal(root)
	if err != nil {
		return texture
	}
	return base64.StdEncoding.EncodeToString(data)
}

// ReadSkull returns the metadata of a skull stack. It reports false for other
// items and for skulls without metadata.
func ReadSkull(s item.Stack) (Skull, bool) {
	if !isSkull(s) {
		return Skull{}, false
	}
	var sk Skull
	if v, ok := s.Value(skullOwnerKey); ok {
		sk.Owner, _ = v.(string)
	}
	if v, ok := s.Value(skullTextureKey); ok {
		sk.Texture, _ = v.(string)
	}
	return sk, sk != Skull{}
}

// ApplySkull returns s with the metadata in c, as read by SkullFromCompound.
// Stacks that are not skulls are returned unchanged, as are keys c does not
// hold.
func ApplySkull(s item.Stack, c *tag.Compound) item.Stack {
	if !isSkull(s) || c == nil {
		return s
	}
	sk := SkullFromCompound(c)
	if c.Has("owner") {
		s = s.WithValue(skullOwnerKey, sk.Owner)
	}
	if sk.Texture != "" {
		s = s.WithValue(skullTextureKey, sk.Texture)
	}
	return s
}

func isSkull(s item.Stack) bool {
	if s.Empty() {
		return false
	}
	_, ok := s.Item().(block.Skull)
	return ok
}
