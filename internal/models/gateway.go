package models

import (
	"time"

	"gorm.io/datatypes"
)

// Device statuses (persisted as plain strings inside the devices JSON column).
const (
	DeviceStatusOnline  = "online"
	DeviceStatusOffline = "offline"
)

// Device is owned by a gateway and never exists outside of one.
// It lives inside the gateway row, not in a table of its own.
type Device struct {
	UID         string    `json:"uid"`
	Vendor      string    `json:"vendor"`
	CreatedDate time.Time `json:"createdDate"`
	Status      string    `json:"status"`
}

// Gateway is the aggregate root. The device collection is stored as a single
// JSON column so the whole aggregate reads and writes as one document.
type Gateway struct {
	ID        int64     `gorm:"primaryKey" json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	UUID        string                      `gorm:"uniqueIndex;size:36;not null" json:"id"`
	Name        string                      `gorm:"uniqueIndex;size:255;not null" json:"name"`
	IPv4Address string                      `gorm:"column:ipv4_address;uniqueIndex;size:15;not null" json:"ipv4Address"`
	Devices     datatypes.JSONSlice[Device] `json:"devices"`
}
