package dns

import "context"

// MockClient is a mock implementation of Client.
type MockClient struct {
	GetZoneFunc      func(ctx context.Context, name string) (*Zone, error)
	ListRecordsFunc  func(ctx context.Context, zoneID string) ([]*Record, error)
	CreateRecordFunc func(ctx context.Context, record Record) (*Record, error)
	UpdateRecordFunc func(ctx context.Context, record Record) (*Record, error)
	DeleteRecordFunc func(ctx context.Context, id string) error
}

// Ensure interface compliance
var _ Client = (*MockClient)(nil)

// GetZone mocks zone lookup.
func (m *MockClient) GetZone(ctx context.Context, name string) (*Zone, error) {
	if m.GetZoneFunc != nil {
		return m.GetZoneFunc(ctx, name)
	}
	return &Zone{ID: "mock-zone", Name: name}, nil
}

// ListRecords mocks record listing.
func (m *MockClient) ListRecords(ctx context.Context, zoneID string) ([]*Record, error) {
	if m.ListRecordsFunc != nil {
		return m.ListRecordsFunc(ctx, zoneID)
	}
	return nil, nil
}

// CreateRecord mocks record creation.
func (m *MockClient) CreateRecord(ctx context.Context, record Record) (*Record, error) {
	if m.CreateRecordFunc != nil {
		return m.CreateRecordFunc(ctx, record)
	}
	record.ID = "mock-record"
	return &record, nil
}

// UpdateRecord mocks in-place record update.
func (m *MockClient) UpdateRecord(ctx context.Context, record Record) (*Record, error) {
	if m.UpdateRecordFunc != nil {
		return m.UpdateRecordFunc(ctx, record)
	}
	return &record, nil
}

// DeleteRecord mocks record deletion.
func (m *MockClient) DeleteRecord(ctx context.Context, id string) error {
	if m.DeleteRecordFunc != nil {
		return m.DeleteRecordFunc(ctx, id)
	}
	return nil
}
