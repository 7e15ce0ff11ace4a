package models

import "time"

// Company rows are created by the capture service as a side effect of form
// submissions. NormalizedName deduplicates case/whitespace variants.
type Company struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Name           string `gorm:"type:varchar(255);not null" json:"name"`
	NormalizedName string `gorm:"type:varchar(255);uniqueIndex;not null" json:"normalized_name"`
	Source         string `gorm:"type:varchar(50)" json:"source"` // company_field, organization_field, email_domain
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
