package provider

import "context"

// ServerManager defines the interface for managing compute resources.
type ServerManager interface {
	// ListServers returns every compute resource visible to the account.
	ListServers(ctx context.Context) ([]*Server, error)

	// CreateServer provisions a new server from a catalog image and flavor.
	// The returned record carries the creation-time admin credential.
	CreateServer(ctx context.Context, name string, imageID, flavorID int64) (*Server, error)

	// GetServer returns the server with the given ID, or nil if it is gone.
	GetServer(ctx context.Context, id int64) (*Server, error)

	DeleteServer(ctx context.Context, id int64) error

	// ResetAdminPassword issues a fresh administrative credential for the
	// server and returns it. The provider generates the secret; callers
	// must allow a settle interval before using it.
	ResetAdminPassword(ctx context.Context, id int64) (string, error)
}

// CatalogLister defines the interface for listing the provider's catalogs.
type CatalogLister interface {
	ListImages(ctx context.Context) ([]*Image, error)
	ListFlavors(ctx context.Context) ([]*Flavor, error)
}

// VolumeManager defines the interface for managing block-storage volumes.
type VolumeManager interface {
	CreateVolume(ctx context.Context, name string, sizeGB int, location string, labels map[string]string) (*Volume, error)
	ListVolumes(ctx context.Context) ([]*Volume, error)
	GetVolume(ctx context.Context, id int64) (*Volume, error)
	AttachVolume(ctx context.Context, volumeID, serverID int64) error
}

// Compute combines all provider-facing interfaces.
type Compute interface {
	ServerManager
	CatalogLister
	VolumeManager
}
