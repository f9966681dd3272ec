package models

// AuditAPICall represents one authenticated inbound request. Every audit change
// produced while serving the request points back at it.
type AuditAPICall struct {
	Base
	UserID     string `gorm:"type:uuid;not null;index" json:"user_id"`
	Method     string `gorm:"not null" json:"method"`
	Path       string `gorm:"not null" json:"path"`
	IPAddress  string `json:"ip_address"`
	RequestID  string `json:"request_id"`
	StatusCode int    `json:"status_code"`
}

func (AuditAPICall) TableName() string { return "audit_api_calls" }

// AuditAction is the kind of change an AuditChange records.
type AuditAction string

const (
	AuditActionNew     AuditAction = "new"
	AuditActionChanged AuditAction = "changed"
	AuditActionDeleted AuditAction = "deleted"
)

// AuditChange is the snapshot of one row touched by an API call. OldValues is empty
// for new rows and NewValues is empty for deleted rows.
type AuditChange struct {
	Base
	AuditAPICallID string      `gorm:"type:uuid;not null;uniqueIndex:uq_audit_changes_entry" json:"audit_api_call_id"`
	EntityTable    string      `gorm:"not null;uniqueIndex:uq_audit_changes_entry" json:"entity_table"`
	EntityID       string      `gorm:"type:uuid;not null;uniqueIndex:uq_audit_changes_entry" json:"entity_id"`
	Action         AuditAction `gorm:"not null;uniqueIndex:uq_audit_changes_entry" json:"action"`
	OldValues      string      `gorm:"type:text" json:"old_values,omitempty"`
	NewValues      string      `gorm:"type:text" json:"new_values,omitempty"`
}

func (AuditChange) TableName() string { return "audit_changes" }
