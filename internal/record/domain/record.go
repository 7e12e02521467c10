// Package domain defines the record-side types: the coordinate that identifies one
// logical set of field values, the tagged field set and the encryption result.
package domain

import (
	"fmt"
	"slices"
)

// DefaultInstance is the instance number of a non-repeating data set.
const DefaultInstance = 1

// Coordinate identifies one logical unit of field values.
// It is comparable and can be used as a map key.
type Coordinate struct {
	ProjectID int64
	Record    string
	EventID   int64
	Instance  int
}

// NewCoordinate builds a Coordinate, normalizing any instance below 1 to DefaultInstance.
func NewCoordinate(projectID int64, record string, eventID int64, instance int) Coordinate {
	if instance < DefaultInstance {
		instance = DefaultInstance
	}
	return Coordinate{
		ProjectID: projectID,
		Record:    record,
		EventID:   eventID,
		Instance:  instance,
	}
}

// IsRepeating reports whether the coordinate addresses a repeating instance.
func (c Coordinate) IsRepeating() bool {
	return c.Instance > DefaultInstance
}

// String renders the coordinate for logs.
func (c Coordinate) String() string {
	return fmt.Sprintf("project=%d record=%s event=%d instance=%d", c.ProjectID, c.Record, c.EventID, c.Instance)
}

// FieldMetadata is one field definition of a project.
type FieldMetadata struct {
	ProjectID  int64
	FieldName  string
	FieldOrder int
	Annotation string
}

// TaggedFieldSet is the ordered set of field names carrying the encryption tag.
type TaggedFieldSet struct {
	names []string
	index map[string]struct{}
}

// NewTaggedFieldSet builds a set from names, keeping the first occurrence order.
func NewTaggedFieldSet(names ...string) TaggedFieldSet {
	set := TaggedFieldSet{index: make(map[string]struct{}, len(names))}
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := set.index[name]; ok {
			continue
		}
		set.index[name] = struct{}{}
		set.names = append(set.names, name)
	}
	return set
}

// Contains reports whether name is tagged.
func (s TaggedFieldSet) Contains(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Names returns the tagged field names in order.
func (s TaggedFieldSet) Names() []string {
	return slices.Clone(s.names)
}

// Len returns the number of tagged fields.
func (s TaggedFieldSet) Len() int {
	return len(s.names)
}

// Values maps field names to their stored values for one coordinate.
type Values map[string]string

// Row is one stored record as shown on the report surface.
type Row struct {
	Coordinate Coordinate
	Values     Values
}

// EncryptResult describes what one EncryptRecord call did.
type EncryptResult struct {
	Coordinate Coordinate
	// Skipped is true when another pass for the same coordinate was already in flight.
	Skipped bool
	// Encrypted holds the names of the fields written back, in tagged order.
	Encrypted []string
	// RowsAffected is what the store reported for the write, zero when nothing was written.
	RowsAffected int64
}

// Changed reports whether the call wrote anything.
func (r *EncryptResult) Changed() bool {
	return len(r.Encrypted) > 0
}
