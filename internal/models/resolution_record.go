package models

import (
	"gorm.io/gorm"
)

// ResolutionSource says where a served resolution came from.
type ResolutionSource string

const (
	SourceCache    ResolutionSource = "cache"
	SourceUpstream ResolutionSource = "upstream"
)

// ResolutionRecord is one row of the resolution audit log: every
// resolution served through the API is recorded here for the stats
// endpoint.
type ResolutionRecord struct {
	ID         string           `json:"id" gorm:"primaryKey"`
	DID        string           `json:"did" gorm:"column:did;not null;index"`
	Method     string           `json:"method" gorm:"not null;index"`
	Source     ResolutionSource `json:"source" gorm:"not null"`
	ClientID   string           `json:"clientId" gorm:"column:client_id;index"`
	DurationMs int64            `json:"durationMs" gorm:"column:duration_ms"`
	gorm.Model
}

// TableName specifies the table name for ResolutionRecord
func (ResolutionRecord) TableName() string {
	return "resolution_records"
}
