package amount

import "fmt"

// Diagnostics collects inputs that could not be parsed and fell back to zero.
// The default zero-on-failure behavior never changes; this is a side channel
// for callers that want to surface suspect cells instead of masking them.
type Diagnostics struct {
	Unparseable []string
}

func (d *Diagnostics) record(v any) {
	if d == nil {
		return
	}

	d.Unparseable = append(d.Unparseable, fmt.Sprintf("%v", v))
}
