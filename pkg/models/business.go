package models

import (
	"regexp"

	"gorm.io/gorm"
)

const TableNameBusiness = "businesses"

// BusinessStatus is the lifecycle state of a business. A business must be
// active before its storefront is routable.
type BusinessStatus string

const (
	BusinessStatusActive    BusinessStatus = "active"
	BusinessStatusSuspended BusinessStatus = "suspended"
	BusinessStatusClosed    BusinessStatus = "closed"
)

func (s BusinessStatus) Valid() bool {
	switch s {
	case BusinessStatusActive, BusinessStatusSuspended, BusinessStatusClosed:
		return true
	}
	return false
}

// DomainStatus tracks the custom-domain attachment state machine:
// none -> pending_dns -> active. Disconnecting resets to none.
type DomainStatus string

const (
	DomainStatusNone       DomainStatus = "none"
	DomainStatusPendingDNS DomainStatus = "pending_dns"
	DomainStatusActive     DomainStatus = "active"
)

func (s DomainStatus) Valid() bool {
	switch s {
	case DomainStatusNone, DomainStatusPendingDNS, DomainStatusActive:
		return true
	}
	return false
}

var subdomainRegex = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?$`)

// ValidSubdomain reports whether s is a usable DNS label for a tenant
// subdomain.
func ValidSubdomain(s string) bool {
	return subdomainRegex.MatchString(s)
}

// Business is a single storefront hosted on the platform. Subdomain and
// CustomDomain are each unique across all businesses; the database indexes
// are the arbiter under concurrent creation.
type Business struct {
	Base
	Name         string         `json:"name" gorm:"not null"`
	Subdomain    string         `json:"subdomain" gorm:"not null;uniqueIndex"`
	CustomDomain *string        `json:"custom_domain" gorm:"uniqueIndex"`
	DomainStatus DomainStatus   `json:"domain_status" gorm:"not null;default:'none'"`
	Status       BusinessStatus `json:"status" gorm:"not null;default:'active'"`
	Template     string         `json:"template" gorm:"default:'default'"`
	ApiKeyDigest string         `json:"-" gorm:"not null"`
}

func (b *Business) TableName() string {
	return TableNameBusiness
}

func (b *Business) BeforeCreate(db *gorm.DB) (err error) {
	if err = b.Base.BeforeCreate(db); err != nil {
		return err
	}
	if b.Name == "" {
		return Error{Message: "Name cannot be blank.", Validation: true}
	}
	if !ValidSubdomain(b.Subdomain) {
		return Error{Message: "Subdomain must be a valid DNS label.", Validation: true}
	}
	if b.DomainStatus == "" {
		b.DomainStatus = DomainStatusNone
	}
	if b.Status == "" {
		b.Status = BusinessStatusActive
	}
	if !b.DomainStatus.Valid() {
		return Error{Message: "Domain status is not valid.", Validation: true}
	}
	if !b.Status.Valid() {
		return Error{Message: "Business status is not valid.", Validation: true}
	}
	return nil
}

// MapForUpdate lists the user changeable fields. Updates always fetch the
// object first, so every update is the full set of mutable fields.
func (b *Business) MapForUpdate() map[string]interface{} {
	forUpdate := make(map[string]interface{})
	forUpdate["name"] = b.Name
	forUpdate["template"] = b.Template
	return forUpdate
}
