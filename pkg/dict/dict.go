package dict

import (
	"github.com/L-iet/pylogic-core/pkg/term"
	"github.com/L-iet/pylogic-core/pkg/termerr"
)

// ToDict produces a nested map[string]any capturing t's kind tag
// (class_module/class_name), its children (recursively dict-ified), every
// declared child-independent attribute, and every declared child-dependent
// attribute (including leaves). Attribute values that are themselves a
// Term or []Term are recursively dict-ified; other values are copied
// as-is.
func ToDict(t term.Term) map[string]any {
	d := map[string]any{
		"class_module": t.ClassModule(),
		"class_name":   t.ClassName(),
	}

	children := t.Children()
	childDicts := make([]any, len(children))
	for i, c := range children {
		childDicts[i] = ToDict(c)
	}
	d["children"] = childDicts

	for _, name := range t.ChildIndependentAttrNames() {
		v, _ := t.Attr(name)
		d[name] = dictifyAttr(v)
	}
	for _, name := range t.ChildDependentAttrNames() {
		v, _ := t.Attr(name)
		d[name] = dictifyAttr(v)
	}
	return d
}

func dictifyAttr(v any) any {
	switch x := v.(type) {
	case term.Term:
		return ToDict(x)
	case []term.Term:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = ToDict(e)
		}
		return out
	default:
		return v
	}
}

// FromDict reconstructs a Term from a mapping produced by ToDict (or any
// mapping carrying the same recognized keys). It resolves the kind tag
// against DefaultRegistry, recursively reconstructs children, and invokes
// the registered constructor with the reconstructed children and the raw
// attribute mapping. Child-dependent attributes present in d (e.g.
// "leaves") are ignored; they are recomputed by the constructor.
//
// A missing class_module/class_name, an unregistered kind tag, or a
// malformed children entry produces a DeserializationError.
func FromDict(d map[string]any) (term.Term, error) {
	module, name, err := kindTagOf(d)
	if err != nil {
		return nil, err
	}
	ctor, err := lookupOrFail(module, name)
	if err != nil {
		return nil, err
	}
	children, attrs, err := DictToConstructorKwargs(d)
	if err != nil {
		return nil, err
	}
	return ctor(children, attrs)
}

func kindTagOf(d map[string]any) (module, name string, err error) {
	module, ok := d["class_module"].(string)
	if !ok {
		return "", "", termerr.NewDeserializationError("missing required key \"class_module\"")
	}
	name, ok = d["class_name"].(string)
	if !ok {
		return "", "", termerr.NewDeserializationError("missing required key \"class_name\"")
	}
	return module, name, nil
}

// DictToConstructorKwargs extracts the keyword arguments a variant's
// constructor would be called with: the already-reconstructed children
// sequence, plus the raw attribute mapping d itself (from which a variant
// constructor reads whichever child-independent attribute names it
// declares).
func DictToConstructorKwargs(d map[string]any) (children []term.Term, attrs map[string]any, err error) {
	childrenRaw, ok := d["children"].([]any)
	if !ok {
		if _, present := d["children"]; present {
			return nil, nil, termerr.NewDeserializationError("\"children\" is not a sequence of node mappings")
		}
		childrenRaw = nil
	}
	children = make([]term.Term, len(childrenRaw))
	for i, raw := range childrenRaw {
		cm, ok := raw.(map[string]any)
		if !ok {
			return nil, nil, termerr.NewDeserializationError("children entry is not a node mapping")
		}
		child, err := FromDict(cm)
		if err != nil {
			return nil, nil, err
		}
		children[i] = child
	}
	return children, d, nil
}
