package schema

import (
	"math"
	"strconv"
)

// Unbounded is the maxOccurs sentinel for maxOccurs="unbounded".
const Unbounded uint32 = math.MaxUint32

// Occurs holds the occurrence bounds of a particle.
type Occurs struct {
	Min uint32
	Max uint32
}

// DefaultOccurs returns {1, 1}, the bounds of a particle without
// minOccurs/maxOccurs attributes.
func DefaultOccurs() Occurs {
	return Occurs{Min: 1, Max: 1}
}

// IsUnbounded reports whether Max is the unbounded sentinel.
func (o Occurs) IsUnbounded() bool {
	return o.Max == Unbounded
}

// IsDefault reports whether the bounds are {1, 1}.
func (o Occurs) IsDefault() bool {
	return o.Min == 1 && o.Max == 1
}

// Valid reports whether Min <= Max for a finite Max.
func (o Occurs) Valid() bool {
	return o.IsUnbounded() || o.Min <= o.Max
}

// MaxString returns the lexical form of Max.
func (o Occurs) MaxString() string {
	if o.IsUnbounded() {
		return "unbounded"
	}
	return strconv.FormatUint(uint64(o.Max), 10)
}

// MinString returns the lexical form of Min.
func (o Occurs) MinString() string {
	return strconv.FormatUint(uint64(o.Min), 10)
}

// String returns "min..max".
func (o Occurs) String() string {
	return o.MinString() + ".." + o.MaxString()
}

// MarshalYAML renders the bounds as lexical strings.
func (o Occurs) MarshalYAML() (any, error) {
	return map[string]string{"min": o.MinString(), "max": o.MaxString()}, nil
}
