package prefixrun

import (
	"os"
	"sort"

	"github.com/pkg/errors"
)

// Discover lists dir (non-recursively), keeps entries whose names carry an
// integer prefix, and returns the steps sorted ascending by order.
// Directories are never steps, even when prefixed. Equal prefixes are
// ordered lexicographically by filename so the schedule is deterministic
// regardless of directory listing order.
func Discover(dir string) ([]Step, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "discover steps")
	}

	var steps []Step
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		order, ok := ParseOrder(e.Name())
		if !ok {
			continue
		}
		steps = append(steps, Step{Order: order, Name: e.Name()})
	}

	sort.Slice(steps, func(i, j int) bool {
		if steps[i].Order != steps[j].Order {
			return steps[i].Order < steps[j].Order
		}
		return steps[i].Name < steps[j].Name
	})
	return steps, nil
}
