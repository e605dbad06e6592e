package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"

	"deli-admin/internal/catalog"
	"deli-admin/internal/importer"
	"deli-admin/internal/model"
	"deli-admin/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockMenuService is a mock implementation of MenuService. Create and
// Update run the fill function against a draft so handler decoding is
// exercised.
type MockMenuService struct {
	mock.Mock
	Filled catalog.Draft
}

func (m *MockMenuService) List(ctx context.Context, section *model.Section) ([]model.MenuItem, error) {
	args := m.Called(ctx, section)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuItem), args.Error(1)
}

func (m *MockMenuService) GetByID(ctx context.Context, id uuid.UUID) (*model.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuItem), args.Error(1)
}

func (m *MockMenuService) Create(ctx context.Context, fill service.DraftFunc) (*model.MenuItem, error) {
	m.Filled = catalog.NewDraft()
	if err := fill(&m.Filled); err != nil {
		return nil, err
	}
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuItem), args.Error(1)
}

func (m *MockMenuService) Update(ctx context.Context, id uuid.UUID, fill service.DraftFunc) (*model.MenuItem, error) {
	args := m.Called(ctx, id)
	if existing, ok := args.Get(0).(*model.MenuItem); ok && existing != nil {
		m.Filled = catalog.DraftFromItem(*existing)
		if err := fill(&m.Filled); err != nil {
			return nil, err
		}
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuItem), args.Error(1)
}

func (m *MockMenuService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMenuService) Stats(ctx context.Context) (model.SectionStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.SectionStats), args.Error(1)
}

func (m *MockMenuService) UploadImage(ctx context.Context, r io.Reader) (string, error) {
	data, _ := io.ReadAll(r)
	args := m.Called(ctx, data)
	return args.String(0), args.Error(1)
}

func (m *MockMenuService) SetImage(ctx context.Context, id uuid.UUID, r io.Reader) (*model.MenuItem, error) {
	data, _ := io.ReadAll(r)
	args := m.Called(ctx, id, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuItem), args.Error(1)
}

// MockImportService is a mock implementation of ImportService.
type MockImportService struct {
	mock.Mock
}

func (m *MockImportService) Import(ctx context.Context, r io.Reader) (int, error) {
	data, _ := io.ReadAll(r)
	args := m.Called(ctx, string(data))
	return args.Int(0), args.Error(1)
}

func (m *MockImportService) Status() importer.Status {
	args := m.Called()
	return args.Get(0).(importer.Status)
}

// MockPageService is a mock implementation of PageService.
type MockPageService struct {
	mock.Mock
}

func (m *MockPageService) Get(ctx context.Context) (*model.PageContent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PageContent), args.Error(1)
}

func (m *MockPageService) Publish(ctx context.Context, g model.Gallery, req *model.PageSectionRequest) (*model.PageContent, error) {
	args := m.Called(ctx, g, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PageContent), args.Error(1)
}

func (m *MockPageService) AddImage(ctx context.Context, g model.Gallery, r io.Reader) (*model.PageContent, string, error) {
	data, _ := io.ReadAll(r)
	args := m.Called(ctx, g, data)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*model.PageContent), args.String(1), args.Error(2)
}

func (m *MockPageService) RemoveImage(ctx context.Context, g model.Gallery, index int) (*model.PageContent, error) {
	args := m.Called(ctx, g, index)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PageContent), args.Error(1)
}

// MockSettingsService is a mock implementation of SettingsService.
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) Announcement(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockSettingsService) SetAnnouncement(ctx context.Context, text string) error {
	args := m.Called(ctx, text)
	return args.Error(0)
}

// MockAuthService is a mock implementation of AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LoginResponse), args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*model.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockAuthService) PurgeExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// multipartRequest builds a request carrying one file field.
func multipartRequest(method, target, field, filename string, content []byte) *http.Request {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, _ := writer.CreateFormFile(field, filename)
	part.Write(content)
	writer.Close()

	req := httptest.NewRequest(method, target, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}
