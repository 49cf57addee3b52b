package provider

import "context"

// MockClient is a mock implementation of Compute. Each method delegates to
// the corresponding Func field when set and returns a benign default
// otherwise.
type MockClient struct {
	ListServersFunc        func(ctx context.Context) ([]*Server, error)
	CreateServerFunc       func(ctx context.Context, name string, imageID, flavorID int64) (*Server, error)
	GetServerFunc          func(ctx context.Context, id int64) (*Server, error)
	DeleteServerFunc       func(ctx context.Context, id int64) error
	ResetAdminPasswordFunc func(ctx context.Context, id int64) (string, error)

	ListImagesFunc  func(ctx context.Context) ([]*Image, error)
	ListFlavorsFunc func(ctx context.Context) ([]*Flavor, error)

	CreateVolumeFunc func(ctx context.Context, name string, sizeGB int, location string, labels map[string]string) (*Volume, error)
	ListVolumesFunc  func(ctx context.Context) ([]*Volume, error)
	GetVolumeFunc    func(ctx context.Context, id int64) (*Volume, error)
	AttachVolumeFunc func(ctx context.Context, volumeID, serverID int64) error
}

// Ensure interface compliance
var _ Compute = (*MockClient)(nil)

// ListServers mocks listing servers.
func (m *MockClient) ListServers(ctx context.Context) ([]*Server, error) {
	if m.ListServersFunc != nil {
		return m.ListServersFunc(ctx)
	}
	return nil, nil
}

// CreateServer mocks server creation.
func (m *MockClient) CreateServer(ctx context.Context, name string, imageID, flavorID int64) (*Server, error) {
	if m.CreateServerFunc != nil {
		return m.CreateServerFunc(ctx, name, imageID, flavorID)
	}
	return &Server{ID: 1, Name: name, Status: ServerStatusRunning}, nil
}

// GetServer mocks fetching a server by ID.
func (m *MockClient) GetServer(ctx context.Context, id int64) (*Server, error) {
	if m.GetServerFunc != nil {
		return m.GetServerFunc(ctx, id)
	}
	return &Server{ID: id, Status: ServerStatusRunning}, nil
}

// DeleteServer mocks server deletion.
func (m *MockClient) DeleteServer(ctx context.Context, id int64) error {
	if m.DeleteServerFunc != nil {
		return m.DeleteServerFunc(ctx, id)
	}
	return nil
}

// ResetAdminPassword mocks issuing a fresh credential.
func (m *MockClient) ResetAdminPassword(ctx context.Context, id int64) (string, error) {
	if m.ResetAdminPasswordFunc != nil {
		return m.ResetAdminPasswordFunc(ctx, id)
	}
	return "mock-password", nil
}

// ListImages mocks listing the image catalog.
func (m *MockClient) ListImages(ctx context.Context) ([]*Image, error) {
	if m.ListImagesFunc != nil {
		return m.ListImagesFunc(ctx)
	}
	return nil, nil
}

// ListFlavors mocks listing the flavor catalog.
func (m *MockClient) ListFlavors(ctx context.Context) ([]*Flavor, error) {
	if m.ListFlavorsFunc != nil {
		return m.ListFlavorsFunc(ctx)
	}
	return nil, nil
}

// CreateVolume mocks volume creation.
func (m *MockClient) CreateVolume(ctx context.Context, name string, sizeGB int, location string, labels map[string]string) (*Volume, error) {
	if m.CreateVolumeFunc != nil {
		return m.CreateVolumeFunc(ctx, name, sizeGB, location, labels)
	}
	return &Volume{ID: 1, Name: name, Size: sizeGB, Status: "available"}, nil
}

// ListVolumes mocks listing volumes.
func (m *MockClient) ListVolumes(ctx context.Context) ([]*Volume, error) {
	if m.ListVolumesFunc != nil {
		return m.ListVolumesFunc(ctx)
	}
	return nil, nil
}

// GetVolume mocks fetching a volume by ID.
func (m *MockClient) GetVolume(ctx context.Context, id int64) (*Volume, error) {
	if m.GetVolumeFunc != nil {
		return m.GetVolumeFunc(ctx, id)
	}
	return &Volume{ID: id, Status: StatusInUse}, nil
}

// AttachVolume mocks attaching a volume.
func (m *MockClient) AttachVolume(ctx context.Context, volumeID, serverID int64) error {
	if m.AttachVolumeFunc != nil {
		return m.AttachVolumeFunc(ctx, volumeID, serverID)
	}
	return nil
}
