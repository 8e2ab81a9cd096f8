package losses

import "strings"

// Anchoring tells which tendon ends are tensioned (active) and which are fixed (passive)
type Anchoring int

const (
	// ActivePassive is tensioned at the start (station 0) only
	ActivePassive Anchoring = iota + 1
	// PassiveActive is tensioned at the far end (station N-1) only
	PassiveActive
	// ActiveActive is tensioned at both ends
	ActiveActive
)

var anchoringTags = map[Anchoring]string{
	ActivePassive: "active-passive",
	PassiveActive: "passive-active",
	ActiveActive:  "active-active",
}

// ParseAnchoring reads one of the tags "active-passive", "passive-active" or "active-active"
func ParseAnchoring(tag string) (Anchoring, error) {
	t := strings.ToLower(strings.TrimSpace(tag))
	for a, s := range anchoringTags {
		if s == t {
			return a, nil
		}
	}
	return 0, invalid("anchoring", "has unrecognized tag %q", tag)
}

// Valid reports whether a is one of the three configurations
func (a Anchoring) Valid() bool {
	_, ok := anchoringTags[a]
	return ok
}

func (a Anchoring) String() string {
	if s, ok := anchoringTags[a]; ok {
		return s
	}
	return "unknown"
}

// ActiveAtStart reports whether the jack acts at station 0
func (a Anchoring) ActiveAtStart() bool {
	return a == ActivePassive || a == ActiveActive
}

// ActiveAtEnd reports whether the jack acts at station N-1
func (a Anchoring) ActiveAtEnd() bool {
	return a == PassiveActive || a == ActiveActive
}
