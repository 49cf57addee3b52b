package provider

import (
	"context"
	"fmt"
	"net"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"
)

// RealClient implements Compute using the Hetzner Cloud API.
type RealClient struct {
	client *hcloud.Client
}

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithHCloudClient sets a custom hcloud client (useful for testing).
func WithHCloudClient(hc *hcloud.Client) ClientOption {
	return func(c *RealClient) {
		c.client = hc
	}
}

// NewRealClient creates a new RealClient authenticated with the given token.
func NewRealClient(token string, opts ...ClientOption) *RealClient {
	c := &RealClient{
		client: hcloud.NewClient(hcloud.WithToken(token)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ Compute = (*RealClient)(nil)

// ListServers returns every compute resource visible to the account.
func (c *RealClient) ListServers(ctx context.Context) ([]*Server, error) {
	servers, err := c.client.Server.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list servers: %w", err)
	}
	out := make([]*Server, 0, len(servers))
	for _, s := range servers {
		out = append(out, convertServer(s))
	}
	return out, nil
}

// CreateServer provisions a new server from a catalog image and flavor.
func (c *RealClient) CreateServer(ctx context.Context, name string, imageID, flavorID int64) (*Server, error) {
	result, _, err := c.client.Server.Create(ctx, hcloud.ServerCreateOpts{
		Name:       name,
		Image:      &hcloud.Image{ID: imageID},
		ServerType: &hcloud.ServerType{ID: flavorID},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create server %s: %w", name, err)
	}
	srv := convertServer(result.Server)
	srv.AdminPassword = result.RootPassword
	return srv, nil
}

// GetServer returns the server with the given ID, or nil if it is gone.
func (c *RealClient) GetServer(ctx context.Context, id int64) (*Server, error) {
	s, _, err := c.client.Server.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get server %d: %w", id, err)
	}
	if s == nil {
		return nil, nil
	}
	return convertServer(s), nil
}

// DeleteServer deletes the server with the given ID.
func (c *RealClient) DeleteServer(ctx context.Context, id int64) error {
	_, _, err := c.client.Server.DeleteWithResult(ctx, &hcloud.Server{ID: id})
	if err != nil {
		return fmt.Errorf("failed to delete server %d: %w", id, err)
	}
	return nil
}

// ResetAdminPassword issues a fresh root password for the server.
func (c *RealClient) ResetAdminPassword(ctx context.Context, id int64) (string, error) {
	result, _, err := c.client.Server.ResetPassword(ctx, &hcloud.Server{ID: id})
	if err != nil {
		return "", fmt.Errorf("failed to reset password for server %d: %w", id, err)
	}
	return result.RootPassword, nil
}

// ListImages returns the system image catalog.
func (c *RealClient) ListImages(ctx context.Context) ([]*Image, error) {
	images, err := c.client.Image.AllWithOpts(ctx, hcloud.ImageListOpts{
		Type: []hcloud.ImageType{hcloud.ImageTypeSystem},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	out := make([]*Image, 0, len(images))
	for _, img := range images {
		out = append(out, &Image{
			ID:          img.ID,
			Name:        img.Name,
			Description: img.Description,
		})
	}
	return out, nil
}

// ListFlavors returns the server type catalog.
func (c *RealClient) ListFlavors(ctx context.Context) ([]*Flavor, error) {
	types, err := c.client.ServerType.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list server types: %w", err)
	}
	out := make([]*Flavor, 0, len(types))
	for _, t := range types {
		out = append(out, &Flavor{
			ID:    t.ID,
			Name:  t.Name,
			Cores: t.Cores,
			RAM:   float64(t.Memory),
			Disk:  float64(t.Disk),
		})
	}
	return out, nil
}

// CreateVolume creates an unattached block-storage volume in a location.
func (c *RealClient) CreateVolume(ctx context.Context, name string, sizeGB int, location string, labels map[string]string) (*Volume, error) {
	result, _, err := c.client.Volume.Create(ctx, hcloud.VolumeCreateOpts{
		Name:     name,
		Size:     sizeGB,
		Location: &hcloud.Location{Name: location},
		Labels:   labels,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create volume %s: %w", name, err)
	}
	return convertVolume(result.Volume), nil
}

// ListVolumes returns every block-storage volume in the account.
func (c *RealClient) ListVolumes(ctx context.Context) ([]*Volume, error) {
	volumes, err := c.client.Volume.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list volumes: %w", err)
	}
	out := make([]*Volume, 0, len(volumes))
	for _, v := range volumes {
		out = append(out, convertVolume(v))
	}
	return out, nil
}

// GetVolume returns the volume with the given ID, or nil if it is gone.
func (c *RealClient) GetVolume(ctx context.Context, id int64) (*Volume, error) {
	v, _, err := c.client.Volume.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get volume %d: %w", id, err)
	}
	if v == nil {
		return nil, nil
	}
	return convertVolume(v), nil
}

// AttachVolume attaches a volume to a server.
func (c *RealClient) AttachVolume(ctx context.Context, volumeID, serverID int64) error {
	_, _, err := c.client.Volume.Attach(ctx, &hcloud.Volume{ID: volumeID}, &hcloud.Server{ID: serverID})
	if err != nil {
		return fmt.Errorf("failed to attach volume %d to server %d: %w", volumeID, serverID, err)
	}
	return nil
}

func convertServer(s *hcloud.Server) *Server {
	addrs := make(map[int]net.IP)
	if s.PublicNet.IPv4.IP != nil {
		addrs[4] = s.PublicNet.IPv4.IP
	}
	if s.PublicNet.IPv6.IP != nil {
		addrs[6] = s.PublicNet.IPv6.IP
	}
	return &Server{
		ID:        s.ID,
		Name:      s.Name,
		Status:    string(s.Status),
		Addresses: addrs,
	}
}

func convertVolume(v *hcloud.Volume) *Volume {
	vol := &Volume{
		ID:     v.ID,
		Name:   v.Name,
		Size:   v.Size,
		Status: string(v.Status),
		Device: v.LinuxDevice,
	}
	// The API reports attachment through the server reference, not the
	// status field.
	if v.Server != nil {
		vol.Status = StatusInUse
		vol.ServerID = v.Server.ID
	}
	return vol
}
