// Package provider wraps the cloud provider's compute and block-storage APIs.
//
// The core logic never touches the SDK directly: it consumes the interfaces
// defined here and the provider-neutral record types below, which the real
// client converts at the adapter edge. This keeps the reconciliation logic
// testable against the MockClient.
package provider

import "net"

// Server represents one compute resource as the provider reports it.
//
// AdminPassword is only populated on records returned by CreateServer or
// after ResetAdminPassword; listings never carry it.
type Server struct {
	ID            int64
	Name          string
	Status        string
	Addresses     map[int]net.IP // IP version (4 or 6) -> public address
	AdminPassword string
}

// IPv4 returns the server's public IPv4 address, or nil if it has none.
func (s *Server) IPv4() net.IP {
	return s.Addresses[4]
}

// Image is an OS image from the provider's catalog.
type Image struct {
	ID          int64
	Name        string
	Description string
}

// Flavor is a compute size from the provider's catalog. RAM and Disk carry
// whatever unit the provider uses; matching is numeric, not unit-aware.
type Flavor struct {
	ID    int64
	Name  string
	Cores int
	RAM   float64
	Disk  float64
}

// Volume is a block-storage volume. Status is "in-use" while attached to a
// server, regardless of how the provider spells attachment.
type Volume struct {
	ID       int64
	Name     string
	Size     int
	Status   string
	Device   string
	ServerID int64
}

// StatusInUse is the volume status reported while attached.
const StatusInUse = "in-use"

// ServerStatusRunning is the server status reported once ready.
const ServerStatusRunning = "running"
