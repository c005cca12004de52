package prefixrun

import "path/filepath"

// Map associates a file extension (with leading dot) with the argv prefix
// used to run files of that type. The step's filename is appended as the
// final argument, so {".hql": {"hive", "-f"}} runs "hive -f 2-build.hql".
type Map map[string][]string

// DefaultExtensions returns the built-in extension table. Callers extend or
// override it via [Map.Merge] or [WithExtensions].
func DefaultExtensions() Map {
	return Map{
		".hql":   {"hive", "-f"},
		".py":    {"python"},
		".R":     {"Rscript"},
		".scala": {"scala"},
		".sh":    {"bash"},
	}
}

// Merge returns a copy of m with entries from overrides applied on top.
// Keys present in both take the override value. Neither receiver nor
// argument is modified.
func (m Map) Merge(overrides Map) Map {
	out := make(Map, len(m)+len(overrides))
	for ext, argv := range m {
		out[ext] = append([]string(nil), argv...)
	}
	for ext, argv := range overrides {
		out[ext] = append([]string(nil), argv...)
	}
	return out
}

// Lookup resolves the interpreter argv for a filename by its extension.
// Extensions match exactly (".R" and ".r" are distinct). A missing mapping
// or a name without an extension yields an *UnknownExtensionError.
func (m Map) Lookup(name string) ([]string, error) {
	ext := filepath.Ext(name)
	argv, ok := m[ext]
	if ext == "" || !ok {
		return nil, &UnknownExtensionError{Name: name, Ext: ext}
	}
	return argv, nil
}
