package entity

import (
	"time"

	"github.com/google/uuid"
)

// Asset is a tagged piece of company equipment.
type Asset struct {
	ID         uuid.UUID `json:"id"`
	UniqueCode string    `json:"unique_code"`
	AssetType  string    `json:"asset_type"`
	Status     string    `json:"status"`
}

// AssetIssue is a problem reported against an asset.
type AssetIssue struct {
	ID          uuid.UUID  `json:"id"`
	AssetID     uuid.UUID  `json:"asset_id"`
	Description string     `json:"issue_description"`
	Resolved    bool       `json:"resolved"`
	ResolvedBy  *uuid.UUID `json:"resolved_by,omitempty"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
	CreatedBy   uuid.UUID  `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`

	Asset    *Asset   `json:"asset,omitempty"`
	Creator  *Profile `json:"creator,omitempty"`
	Resolver *Profile `json:"resolver,omitempty"`
}

// Issue status filters.
const (
	IssueStatusAll        = "all"
	IssueStatusResolved   = "resolved"
	IssueStatusUnresolved = "unresolved"
)

// AssetIssueFilter narrows the asset issue list.
type AssetIssueFilter struct {
	Status    string // all, resolved or unresolved; empty means unresolved.
	AssetType string // Empty or "all" matches every type.
	Search    string // Matches description and asset code.
}
