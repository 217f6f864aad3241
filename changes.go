package dto

import (
	"encoding/json"
	"sort"
	"time"
)

// Change records how a single attribute diverged from the original
// snapshot.
type Change struct {
	Name       string    `json:"name"`
	From       any       `json:"from,omitempty"`
	To         any       `json:"to,omitempty"`
	SnapshotID string    `json:"snapshot_id,omitempty"`
	ChangedAt  time.Time `json:"changed_at,omitempty"`
}

// ChangeSet captures every divergence between a container's original
// snapshot and its current attributes.
type ChangeSet struct {
	ObjectID string   `json:"object_id,omitempty"`
	Changes  []Change `json:"changes"`
}

// ToJSON serialises the change set for logging or transport helpers.
func (c ChangeSet) ToJSON() ([]byte, error) {
	type alias ChangeSet
	return json.Marshal(alias(c))
}

// ChangeSetFromJSON deserialises a payload previously generated via ToJSON.
func ChangeSetFromJSON(payload []byte) (ChangeSet, error) {
	type alias ChangeSet
	var set alias
	if err := json.Unmarshal(payload, &set); err != nil {
		return ChangeSet{}, err
	}
	return ChangeSet(set), nil
}

// Changes derives the current change set from the dirty attributes, sorted
// by name for stable output.
func (d *Dto) Changes() ChangeSet {
	d.ensure()
	now := time.Now()
	set := ChangeSet{
		ObjectID: d.id,
		Changes:  make([]Change, 0, len(d.dirty)),
	}
	names := make([]string, 0, len(d.dirty))
	for name := range d.dirty {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		set.Changes = append(set.Changes, Change{
			Name:       name,
			From:       cloneAny(d.original[name]),
			To:         cloneAny(d.dirty[name]),
			SnapshotID: d.snapshotID,
			ChangedAt:  now,
		})
	}
	return set
}
