// Package particle is a catalogue of particle effects and the server releases
// that support them.
//
// Lookups take the release the caller runs on, because the protocol name of
// some particles changed between releases:
//
//	p := particle.ByName("reddust", mcver.V1_12_R1) // particle.Redstone
//	if p.Compatible(mcver.V1_12_R1) {
//	    ...
//	}
package particle

import (
	"strings"

	"github.com/oriumgames/kit/mcver"
)

// Particle is an entry of the catalogue. The zero value is Unknown.
type Particle int

type info struct {
	// key is the lower-case catalogue name.
	key string
	// legacy is the protocol name used by releases that predate namespaced
	// particle names. Empty when the particle only has a key.
	legacy string
	// id is the legacy numeric id, -1 when there is none.
	id    int
	data  bool
	since mcver.Version
	until mcver.Version
}

func (p Particle) info() info {
	if p < 0 || p >= particleCount {
		return catalogue[Unknown]
	}
	return catalogue[p]
}

// String returns the upper-case catalogue name, for example "BLOCK_CRACK".
func (p Particle) String() string {
	return strings.ToUpper(p.info().key)
}

// Key returns the lower-case catalogue name, for example "block_crack".
func (p Particle) Key() string {
	return p.info().key
}

// Name returns the protocol name of the particle on release v. Particles with
// a legacy name use it, except on v1_13_R1, which used the catalogue key.
func (p Particle) Name(v mcver.Version) string {
	in := p.info()
	if in.legacy == "" || v == mcver.V1_13_R1 {
		return in.key
	}
	return in.legacy
}

// ID returns the legacy numeric id of the particle, or -1.
//
// Deprecated: numeric ids only exist on old releases; use Key.
func (p Particle) ID() int {
	return p.info().id
}

// RequiresData reports whether spawning the particle needs extra data such as
// a block or a colour.
func (p Particle) RequiresData() bool {
	return p.info().data
}

// Since returns the first release supporting the particle.
func (p Particle) Since() mcver.Version {
	return p.info().since
}

// Until returns the last release supporting the particle, or mcver.Unknown
// when it is still supported.
func (p Particle) Until() mcver.Version {
	return p.info().until
}

// Compatible reports whether release v supports the particle.
func (p Particle) Compatible(v mcver.Version) bool {
	in := p.info()
	if in.since == mcver.Unknown {
		return false
	}
	if in.until != mcver.Unknown {
		return v.AtMost(in.until) && v.AtLeast(in.since)
	}
	return v.AtLeast(in.since)
}

// AllowedVersion describes the supported releases, either the first release,
// "v1_8_R3", or a range, "v1_8_R3-v1_12_R1". Unknown returns "".
func (p Particle) AllowedVersion() string {
	in := p.info()
	if in.since == mcver.Unknown {
		return ""
	}
	s := in.since.String()
	if in.until != mcver.Unknown {
		s += "-" + in.until.String()
	}
	return s
}

// ByName returns the particle whose protocol name on release v, or whose
// catalogue name, equals name ignoring case. It returns Unknown when none
// does.
func ByName(name string, v mcver.Version) Particle {
	if name == "" {
		return Unknown
	}
	for p := Unknown; p < particleCount; p++ {
		if strings.EqualFold(p.Name(v), name) || strings.EqualFold(p.Key(), name) {
			return p
		}
	}
	return Unknown
}

// ByID returns the particle with the legacy numeric id, or Unknown.
//
// Deprecated: numeric ids only exist on old releases; use ByName.
func ByID(id int) Particle {
	if id == -1 {
		return Unknown
	}
	for p := Unknown; p < particleCount; p++ {
		if catalogue[p].id == id {
			return p
		}
	}
	return Unknown
}

// All returns every particle of the catalogue except Unknown.
func All() []Particle {
	out := make([]Particle, 0, particleCount-1)
	for p := Unknown + 1; p < particleCount; p++ {
		out = append(out, p)
	}
	return out
}

// Supported returns the particles release v supports.
func Supported(v mcver.Version) []Particle {
	var out []Particle
	for _, p := range All() {
		if p.Compatible(v) {
			out = append(out, p)
		}
	}
	return out
}
