package datagen

import "math/rand"

// weighted is one variant of a closed enumerated attribute.
type weighted struct {
	value  string
	weight int
}

// pick draws one variant with probability proportional to its weight.
func pick(rng *rand.Rand, set []weighted) string {
	total := 0
	for _, v := range set {
		total += v.weight
	}
	n := rng.Intn(total)
	for _, v := range set {
		n -= v.weight
		if n < 0 {
			return v.value
		}
	}
	return set[len(set)-1].value
}

// Priorities skew toward the middle of the scale.
var taskPriorities = []weighted{
	{"low", 2},
	{"medium", 4},
	{"high", 3},
	{"urgent", 1},
}

// Most projects in a live workspace are active.
var projectStatuses = []weighted{
	{"active", 5},
	{"on_hold", 2},
	{"completed", 2},
	{"archived", 1},
}

var projectTypes = []weighted{
	{"product", 1},
	{"marketing", 1},
	{"operations", 1},
	{"initiative", 1},
	{"campaign", 1},
	{"infrastructure", 1},
}

// Individual-contributor roles outnumber management roles.
var userRoles = []weighted{
	{"Engineer", 4},
	{"Manager", 2},
	{"Designer", 2},
	{"Analyst", 2},
	{"Coordinator", 2},
	{"Specialist", 2},
	{"Lead", 2},
	{"Director", 1},
}
