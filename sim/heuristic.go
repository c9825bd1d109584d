// Greedy move selection. None of these functions mutate state; the simulator
// decides what to do with the entities they pick.

package sim

// FindLightestValidPair returns the first pair (i, j), i < j, in the given order whose
// combined weight is within capacity. This is first-fit: with candidates sorted ascending
// it favours the lightest entities, but it is not guaranteed to be the lightest pair.
func FindLightestValidPair(candidates []Entity, capacity int) ([]Entity, bool) {
	for i := 0; i < len(candidates); i++ {
		for j := i + 1; j < len(candidates); j++ {
			if candidates[i].Weight+candidates[j].Weight <= capacity {
				return []Entity{candidates[i], candidates[j]}, true
			}
		}
	}
	return nil, false
}

// FindHeaviest returns the maximum-weight candidate. On equal weights the first wins.
func FindHeaviest(candidates []Entity) (Entity, bool) {
	if len(candidates) == 0 {
		return Entity{}, false
	}
	heaviest := candidates[0]
	for _, e := range candidates[1:] {
		if e.Weight > heaviest.Weight {
			heaviest = e
		}
	}
	return heaviest, true
}

// FindLightestPerson returns the minimum-weight non-cargo entity. The cargo never
// returns to origin, so it is never a candidate here.
func FindLightestPerson(candidates []Entity) (Entity, bool) {
	var (
		lightest Entity
		found    bool
	)
	for _, e := range candidates {
		if e.IsCargo() {
			continue
		}
		if !found || e.Weight < lightest.Weight {
			lightest = e
			found = true
		}
	}
	return lightest, found
}
