package particle

import (
	"image/color"

	"github.com/df-mc/dragonfly/server/world"
	dfparticle "github.com/df-mc/dragonfly/server/world/particle"
	"github.com/go-gl/mathgl/mgl64"
)

// dragonfly holds the Dragonfly particles that have a catalogue equivalent.
var dragonfly = map[Particle]world.Particle{
	Flame:         dfparticle.Flame{},
	Lava:          dfparticle.Lava{},
	ExplosionHuge: dfparticle.HugeExplosion{},
	Portal:        dfparticle.EndermanTeleport{},
	Snowball:      dfparticle.SnowballPoof{},
	WaterSplash:   dfparticle.Splash{},
	Spell:         dfparticle.Effect{},
	Redstone:      dfparticle.Dust{Colour: color.RGBA{R: 0xff, A: 0xff}},
}

// Dragonfly returns the Dragonfly particle matching p. It returns false when
// Dragonfly has no equivalent.
func (p Particle) Dragonfly() (world.Particle, bool) {
	dp, ok := dragonfly[p]
	return dp, ok
}

// Spawn shows p at pos in the world of tx and reports whether p could be
// shown.
func (p Particle) Spawn(tx *world.Tx, pos mgl64.Vec3) bool {
	dp, ok := p.Dragonfly()
	if !ok {
		return false
	}
	tx.AddParticle(pos, dp)
	return true
}
