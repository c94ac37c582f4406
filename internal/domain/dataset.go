package domain

import (
	"strconv"

	"github.com/iancoleman/orderedmap"
)

// DataSet is an ordered mapping from a producer-defined data set key to the
// argument tuple for one parameterized case. Insertion order is preserved;
// adding an existing key replaces its tuple in place, matching PHP array
// assignment semantics. Positional keys use their decimal form.
type DataSet struct {
	entries *orderedmap.OrderedMap
}

// NewDataSet creates an empty DataSet
func NewDataSet() *DataSet {
	return &DataSet{entries: orderedmap.New()}
}

// Add records one data row under the given key
func (d *DataSet) Add(key string, args []any) {
	d.entries.Set(key, args)
}

// AddIndexed records one data row under the next positional key
func (d *DataSet) AddIndexed(args []any) {
	d.entries.Set(strconv.Itoa(len(d.entries.Keys())), args)
}

// Get returns the argument tuple stored under key
func (d *DataSet) Get(key string) ([]any, bool) {
	v, ok := d.entries.Get(key)
	if !ok {
		return nil, false
	}
	args, _ := v.([]any)
	return args, true
}

// Keys returns the data set keys in insertion order
func (d *DataSet) Keys() []string {
	return d.entries.Keys()
}

// Len returns the number of data rows
func (d *DataSet) Len() int {
	return len(d.entries.Keys())
}
