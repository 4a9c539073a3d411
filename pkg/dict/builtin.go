package dict

import (
	"github.com/L-iet/pylogic-core/pkg/term"
	"github.com/L-iet/pylogic-core/pkg/termerr"
)

// init registers the module's one built-in variant, Symbol, against
// DefaultRegistry so that FromDict can resolve it out of the box, the way
// a real deployment would register every variant it declares at process
// start (§6).
func init() {
	if err := Register("pylogic-core/term", "Symbol", symbolCtor); err != nil {
		panic(err)
	}
}

func symbolCtor(children []term.Term, attrs map[string]any) (term.Term, error) {
	name, ok := attrs["name"].(string)
	if !ok {
		return nil, termerr.NewDeserializationError("Symbol dict is missing required key \"name\"")
	}
	return term.NewSymbol(name, children), nil
}
