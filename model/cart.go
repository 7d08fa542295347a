package model

import "encoding/json"

// Cart item types. A cart holds at most one item per (id, type) pair.
const (
	ItemTypePost    = "post"
	ItemTypeComment = "comment"
)

// CartItem is a user-selected post or comment. Data is a snapshot of the
// selected record (a Post or an EngagementRecord depending on Type), kept
// as raw JSON so the item outlives the corpus it was taken from.
type CartItem struct {
	ID   string          `json:"id"`
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}
