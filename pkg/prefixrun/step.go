package prefixrun

import (
	"regexp"
	"strconv"
)

// Step is one file scheduled for execution, paired with its parsed order.
// Steps are immutable once discovered.
type Step struct {
	Order int
	Name  string
}

// stepName matches <integer><separator><rest>. The separator may be
// "-", "_" or ".".
var stepName = regexp.MustCompile(`^(\d+)[-_.].`)

// ParseOrder reports whether name is a pipeline step and, if so, its
// numeric order. Leading zeros are permitted and do not affect the order
// ("02-x" parses as 2).
func ParseOrder(name string) (int, bool) {
	m := stepName.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		// Prefix larger than an int can hold.
		return 0, false
	}
	return n, true
}
