package types

import "strconv"

// TaskID identifies a unique task in the store. Ids are assigned by the
// database on insert and are never reused after a delete.
type TaskID int64

// ToInt64 converts the id back to the database representation
func (id TaskID) ToInt64() int64 {
	return int64(id)
}

// Valid reports whether id could have been assigned by the store
func (id TaskID) Valid() bool {
	return id > 0
}

func (id TaskID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// TaskIDFromInt64 creates a TaskID from a raw database value
func TaskIDFromInt64(i int64) TaskID {
	return TaskID(i)
}
