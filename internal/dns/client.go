// Package dns provides a client for the provider's DNS zone and record API.
//
// Record names are zone-relative, matching the wire format of the API. The
// lifecycle operations compose fully-qualified names from the configured
// domain when they need them.
package dns

import "context"

// Zone is a hosted DNS zone.
type Zone struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Record is a single DNS record within a zone.
type Record struct {
	ID     string `json:"id,omitempty"`
	ZoneID string `json:"zone_id"`
	Type   string `json:"type"`
	Name   string `json:"name"`
	Value  string `json:"value"`
	TTL    int    `json:"ttl,omitempty"`
}

// Client defines the interface for managing DNS zones and records.
type Client interface {
	// GetZone returns the zone with the given name.
	GetZone(ctx context.Context, name string) (*Zone, error)

	// ListRecords returns all records in the zone.
	ListRecords(ctx context.Context, zoneID string) ([]*Record, error)

	CreateRecord(ctx context.Context, record Record) (*Record, error)

	// UpdateRecord replaces the record with the given ID in place.
	UpdateRecord(ctx context.Context, record Record) (*Record, error)

	DeleteRecord(ctx context.Context, id string) error
}
