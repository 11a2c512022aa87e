package cache

import "hash/fnv"

// PlanKey fingerprints a (type, column set) pair with FNV-1a. typeName must
// be fully qualified (import path plus type name); short package names
// collide across same-named packages. Column names are separated by NUL so
// ["ab","c"] and ["a","bc"] hash differently.
func PlanKey(typeName string, columns []string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(typeName))
	_, _ = h.Write([]byte{0})
	for _, c := range columns {
		_, _ = h.Write([]byte(c))
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}
