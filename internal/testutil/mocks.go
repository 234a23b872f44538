// Package testutil provides fixtures and testify mocks for the interfaces of
// the scanner library (pkg/scanner and subpackages).
package testutil

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/stackvity/ftdetect/pkg/scanner"
	"github.com/stackvity/ftdetect/pkg/scanner/cache"
)

// MockCacheManager provides a mock implementation of the cache.Manager interface.
// Configure expectations using testify/mock methods (e.g., .On("Check", ...).Return(...)).
type MockCacheManager struct {
	mock.Mock
}

// Load mocks the Load method.
func (m *MockCacheManager) Load(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

// Check mocks the Check method.
func (m *MockCacheManager) Check(relPath string, modTime time.Time, contentHash, configHash string) (cache.Entry, bool) {
	args := m.Called(relPath, modTime, contentHash, configHash)
	entry, _ := args.Get(0).(cache.Entry)
	return entry, args.Bool(1)
}

// Update mocks the Update method.
func (m *MockCacheManager) Update(relPath string, entry cache.Entry) error {
	args := m.Called(relPath, entry)
	return args.Error(0)
}

// Persist mocks the Persist method.
func (m *MockCacheManager) Persist(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

// MockLanguageDetector provides a mock implementation of the language.Detector interface.
type MockLanguageDetector struct {
	mock.Mock
}

// Detect mocks the Detect method.
func (m *MockLanguageDetector) Detect(content []byte, filePath string) (lang string, confidence float64, err error) {
	args := m.Called(content, filePath)
	lang, _ = args.Get(0).(string)
	confidence, _ = args.Get(1).(float64)
	err = args.Error(2)
	return
}

// MockEncodingHandler provides a mock implementation of the encoding.Handler interface.
type MockEncodingHandler struct {
	mock.Mock
}

// Decode mocks the Decode method.
func (m *MockEncodingHandler) Decode(content []byte) (string, string) {
	args := m.Called(content)
	return args.String(0), args.String(1)
}

// IsBinary mocks the IsBinary method.
func (m *MockEncodingHandler) IsBinary(content []byte) bool {
	args := m.Called(content)
	return args.Bool(0)
}

// MockGitClient provides a mock implementation of the git.Client interface.
type MockGitClient struct {
	mock.Mock
}

// GetChangedFiles mocks the GetChangedFiles method.
func (m *MockGitClient) GetChangedFiles(repoPath, mode, ref string) ([]string, error) {
	args := m.Called(repoPath, mode, ref)
	files, _ := args.Get(0).([]string)
	return files, args.Error(1)
}

// MockHooks provides a mock implementation of the scanner.Hooks interface.
// Tests expecting concurrent calls should prefer RecordingHooks.
type MockHooks struct {
	mock.Mock
}

// OnFileDiscovered mocks the OnFileDiscovered method.
func (m *MockHooks) OnFileDiscovered(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

// OnFileStatusUpdate mocks the OnFileStatusUpdate method.
func (m *MockHooks) OnFileStatusUpdate(path string, status scanner.Status, message string, duration time.Duration) error {
	args := m.Called(path, status, message, duration)
	return args.Error(0)
}

// OnRunComplete mocks the OnRunComplete method.
func (m *MockHooks) OnRunComplete(report scanner.Report) error {
	args := m.Called(report)
	return args.Error(0)
}
