package yamldoc

import (
	"strings"

	"gopkg.in/yaml.v3"
)

//Float decodes n as a float64. ok is false if n is not a number.
func Float(n *yaml.Node) (f float64, ok bool) {
	if KindOf(n) != Scalar {
		return 0, false
	}
	if err := deref(n).Decode(&f); err != nil {
		return 0, false
	}
	return f, true
}

//Int decodes n as an int. ok is false if n is not an integer.
func Int(n *yaml.Node) (i int, ok bool) {
	if KindOf(n) != Scalar {
		return 0, false
	}
	if err := deref(n).Decode(&i); err != nil {
		return 0, false
	}
	return i, true
}

//String returns the text of the scalar n, whatever its type.
func String(n *yaml.Node) (s string, ok bool) {
	if KindOf(n) != Scalar {
		return "", false
	}
	return deref(n).Value, true
}

//Floats decodes the sequence n as a slice of float64.
func Floats(n *yaml.Node) ([]float64, bool) {
	if KindOf(n) != Sequence {
		return nil, false
	}
	n = deref(n)
	ret := make([]float64, len(n.Content))
	for i, v := range n.Content {
		f, ok := Float(v)
		if !ok {
			return nil, false
		}
		ret[i] = f
	}
	return ret, true
}

//Ints decodes the sequence n as a slice of int.
func Ints(n *yaml.Node) ([]int, bool) {
	if KindOf(n) != Sequence {
		return nil, false
	}
	n = deref(n)
	ret := make([]int, len(n.Content))
	for i, v := range n.Content {
		d, ok := Int(v)
		if !ok {
			return nil, false
		}
		ret[i] = d
	}
	return ret, true
}

//Strings returns the text of each scalar in the sequence n.
func Strings(n *yaml.Node) ([]string, bool) {
	if KindOf(n) != Sequence {
		return nil, false
	}
	n = deref(n)
	ret := make([]string, len(n.Content))
	for i, v := range n.Content {
		s, ok := String(v)
		if !ok {
			return nil, false
		}
		ret[i] = s
	}
	return ret, true
}

//Pair returns the only key and value of a single-key mapping.
//ok is false if n is not a mapping with exactly one key.
func Pair(n *yaml.Node) (key string, value *yaml.Node, ok bool) {
	if KindOf(n) != Mapping {
		return "", nil, false
	}
	n = deref(n)
	if len(n.Content) != 2 {
		return "", nil, false
	}
	return n.Content[0].Value, deref(n.Content[1]), true
}

//Inline renders n in one line, in YAML flow style. Scalars are rendered
//as their plain text.
func Inline(n *yaml.Node) string {
	n = deref(n)
	switch KindOf(n) {
	case Absent:
		return ""
	case Null, Scalar:
		return n.Value
	}
	c := *n
	c.Style = yaml.FlowStyle
	c.Anchor = ""
	b, err := yaml.Marshal(&c)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}

//Equal returns true if a and b have the same structure, the same keys in the
//same order and the same scalar values. Styles, comments and positions are
//ignored. Scalars are compared by resolved tag and text, so 1.0 and 1.00 differ.
func Equal(a, b *yaml.Node) bool {
	a = deref(a)
	b = deref(b)
	ka, kb := KindOf(a), KindOf(b)
	if ka != kb {
		return false
	}
	switch ka {
	case Absent, Null:
		return true
	case Scalar:
		return a.ShortTag() == b.ShortTag() && a.Value == b.Value
	}
	if len(a.Content) != len(b.Content) {
		return false
	}
	for i := range a.Content {
		if !Equal(a.Content[i], b.Content[i]) {
			return false
		}
	}
	return true
}
