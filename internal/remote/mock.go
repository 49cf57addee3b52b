package remote

import "context"

// MockCommunicator is a mock implementation of Communicator. It records
// every call so tests can assert on the command sequence.
type MockCommunicator struct {
	RunFunc      func(ctx context.Context, command string) (string, error)
	UploadFunc   func(ctx context.Context, localPath, remotePath string) error
	DownloadFunc func(ctx context.Context, remotePath, localPath string) error

	Commands  []string
	Uploads   [][2]string
	Downloads [][2]string
}

// Ensure interface compliance
var _ Communicator = (*MockCommunicator)(nil)

// Run mocks remote command execution.
func (m *MockCommunicator) Run(ctx context.Context, command string) (string, error) {
	m.Commands = append(m.Commands, command)
	if m.RunFunc != nil {
		return m.RunFunc(ctx, command)
	}
	return "", nil
}

// Upload mocks file upload.
func (m *MockCommunicator) Upload(ctx context.Context, localPath, remotePath string) error {
	m.Uploads = append(m.Uploads, [2]string{localPath, remotePath})
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, localPath, remotePath)
	}
	return nil
}

// Download mocks file download.
func (m *MockCommunicator) Download(ctx context.Context, remotePath, localPath string) error {
	m.Downloads = append(m.Downloads, [2]string{remotePath, localPath})
	if m.DownloadFunc != nil {
		return m.DownloadFunc(ctx, remotePath, localPath)
	}
	return nil
}
