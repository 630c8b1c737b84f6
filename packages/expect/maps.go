package expect

import (
	"fmt"
	"reflect"

	"github.com/restspec/rest/packages/core/sentence"
)

// ToContainKey asserts a map subject holds the given key.
func (e *Expectation) ToContainKey(key any) *Expectation {
	s := sentence.New("contain", fmt.Sprintf("key %s", formatValue(key))).WithActual(e.subject)
	found, _ := mapLookup(e.subject, key)
	return e.addStep(s, found)
}

// ToContainEntry asserts a map subject holds the key with the given
// value.
func (e *Expectation) ToContainEntry(key, value any) *Expectation {
	s := sentence.New("contain", fmt.Sprintf("entry %s: %s", formatValue(key), formatValue(value))).WithActual(e.subject)
	found, got := mapLookup(e.subject, key)
	return e.addStep(s, found && equalValues(got, value))
}

// mapLookup scans by loose key equality so an int key matches a
// float64-decoded one.
func mapLookup(subject, key any) (bool, any) {
	rv := reflect.ValueOf(subject)
	if rv.Kind() != reflect.Map {
		return false, nil
	}
	iter := rv.MapRange()
	for iter.Next() {
		if equalValues(iter.Key().Interface(), key) {
			return true, iter.Value().Interface()
		}
	}
	return false, nil
}
