package depot

import (
	"github.com/TheBitDrifter/mask"
	iter_util "github.com/TheBitDrifter/util/iter"
)

// EntitiesWith returns the entities currently holding every given component.
//
// With no arguments it returns a snapshot of every entity created so far;
// the slice is fixed at call time but its handles stay live. With one or more
// arguments it ORs the requested flags into a combined mask, scans the
// shortest candidate list among the requested types (ties break to the first
// in call order), and keeps the entities whose authoritative mask contains
// every requested bit, in candidate-list order. Candidate lists hold ids, not
// entity copies, so filtering always sees the mask state at call time.
func (sto *storage) EntitiesWith(components ...Component) ([]Entity, error) {
	if len(components) == 0 {
		return iter_util.Collect(sto.Entities()), nil
	}

	var combined mask.Mask
	var smallest *registration
	for _, c := range components {
		reg, err := sto.registrationFor(c)
		if err != nil {
			return nil, err
		}
		combined.Mark(reg.bit)
		if smallest == nil || len(reg.candidates) < len(smallest.candidates) {
			smallest = reg
		}
	}

	matched := make([]Entity, 0, len(smallest.candidates))
	for _, id := range smallest.candidates {
		if sto.masks[id-1].ContainsAll(combined) {
			matched = append(matched, entity{sto: sto, id: id})
		}
	}
	return matched, nil
}
