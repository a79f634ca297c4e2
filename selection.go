package pixelcat

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Selection records the choices behind one candidate item: layer name
// to chosen filename, plus the reserved "mask" and "color" keys.
// Insertion order is preserved for attribute emission; the uniqueness
// hash is computed over a sorted canonical form and never depends on
// insertion order.
type Selection struct {
	keys   []string
	values map[string]string
}

func NewSelection() *Selection {
	return &Selection{values: make(map[string]string)}
}

func (s *Selection) Set(key, value string) {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

func (s *Selection) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *Selection) Len() int {
	return len(s.keys)
}

// Keys returns the selection keys in insertion order.
func (s *Selection) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Hash is the SHA-256 digest of the canonical JSON serialization of
// the selection. encoding/json marshals map keys in sorted order, which
// is exactly the canonicalization the uniqueness guard needs.
func (s *Selection) Hash() string {
	payload, err := json.Marshal(map[string]map[string]string{"selected": s.values})
	if err != nil {
		// A map[string]string cannot fail to marshal.
		panic(err)
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

// Attributes converts the selection into metadata attributes, one per
// key, in insertion order.
func (s *Selection) Attributes() []Attribute {
	attrs := make([]Attribute, 0, len(s.keys))
	for _, k := range s.keys {
		attrs = append(attrs, Attribute{TraitType: k, Value: s.values[k]})
	}
	return attrs
}
