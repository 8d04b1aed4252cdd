//    AssignTopics
//    Copyright: 2024-25
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

import "sort"

//
// SETS AND SLICES
//

// ToSet - returns a blank map of a slice
func ToSet[T comparable](sl []T) map[T]struct{} {
	m := make(map[T]struct{})
	for i := 0; i < len(sl); i++ {
		m[sl[i]] = struct{}{}
	}
	return m
}

// StringMapKeysIntoSlice - convert map[string]T to a sorted []string of the keys
func StringMapKeysIntoSlice[T any](mp map[string]T) []string {
	keys := make([]string, 0, len(mp))
	for k := range mp {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// HasDuplicates - true if any item appears more than once
func HasDuplicates[T comparable](sl []T) bool {
	return len(ToSet(sl)) != len(sl)
}
