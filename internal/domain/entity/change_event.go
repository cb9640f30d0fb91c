package entity

// ChangeKind tags a realtime change event.
type ChangeKind string

const (
	ChangeInsert ChangeKind = "INSERT"
	ChangeUpdate ChangeKind = "UPDATE"
	ChangeDelete ChangeKind = "DELETE"
)

// ChangeEvent is one row-level change of a notification, addressed to its owner.
// For deletes only the identifying fields of Record are guaranteed.
type ChangeEvent struct {
	Kind   ChangeKind    `json:"type"`
	Record *Notification `json:"record"`
}
