package models

import (
	"gorm.io/gorm"
)

const TableNameDomainQueue = "domain_queue_entries"

type DomainQueueStatus string

const (
	DomainQueuePending   DomainQueueStatus = "pending"
	DomainQueueCompleted DomainQueueStatus = "completed"
)

func (s DomainQueueStatus) Valid() bool {
	return s == DomainQueuePending || s == DomainQueueCompleted
}

// DomainQueueEntry records a custom-domain attachment request. Entries are
// append-only: verification flips the status to completed, nothing deletes
// them, so the table doubles as an audit trail.
type DomainQueueEntry struct {
	Base
	Domain       string            `json:"domain" gorm:"not null;index:idx_domain_queue_domain_business"`
	BusinessUUID string            `json:"business_uuid" gorm:"not null;index:idx_domain_queue_domain_business"`
	Status       DomainQueueStatus `json:"status" gorm:"not null;default:'pending'"`
}

func (d *DomainQueueEntry) TableName() string {
	return TableNameDomainQueue
}

func (d *DomainQueueEntry) BeforeCreate(db *gorm.DB) (err error) {
	if err = d.Base.BeforeCreate(db); err != nil {
		return err
	}
	if d.Domain == "" {
		return Error{Message: "Domain cannot be blank.", Validation: true}
	}
	if d.BusinessUUID == "" {
		return Error{Message: "Business UUID cannot be blank.", Validation: true}
	}
	if d.Status == "" {
		d.Status = DomainQueuePending
	}
	return nil
}
