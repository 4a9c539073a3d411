package dict

import (
	"encoding/json"
	"fmt"

	"github.com/L-iet/pylogic-core/pkg/term"
)

// ToJSON marshals t's dict form (ToDict) to JSON bytes: produce the
// in-memory mapping, then hand it to encoding/json. There is no other
// serialized form besides this one.
func ToJSON(t term.Term) ([]byte, error) {
	data, err := json.Marshal(ToDict(t))
	if err != nil {
		return nil, fmt.Errorf("dict: marshal term to JSON: %w", err)
	}
	return data, nil
}

// FromJSON unmarshals JSON bytes produced by ToJSON (or any JSON object
// carrying the recognized dict keys) back into a Term via FromDict.
func FromJSON(data []byte) (term.Term, error) {
	var d map[string]any
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("dict: unmarshal term JSON: %w", err)
	}
	return FromDict(d)
}
