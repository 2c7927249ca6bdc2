package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/lexai-legal/lexai-backend/internal/domain"
)

// ErrMockRepositoryFailure is returned when a mock repository is configured to fail
var ErrMockRepositoryFailure = errors.New("mock repository failure")

// MockUserRepository is an in-memory implementation of repository.UserRepository
type MockUserRepository struct {
	mu         sync.RWMutex
	users      map[string]*domain.User // keyed by user ID
	ShouldFail bool
}

// NewMockUserRepository creates a new mock user repository
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[string]*domain.User)}
}

// Create stores a user
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.ShouldFail {
		return ErrMockRepositoryFailure
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
	return nil
}

// GetByEmail retrieves a user by email regardless of active flag
func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.ShouldFail {
		return nil, ErrMockRepositoryFailure
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

// GetActiveByEmail retrieves an active user by email
func (m *MockUserRepository) GetActiveByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.ShouldFail {
		return nil, ErrMockRepositoryFailure
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email && u.Active {
			return u, nil
		}
	}
	return nil, nil
}

// Count returns the number of stored users (for testing)
func (m *MockUserRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.users)
}

// MockOrganizationRepository is an in-memory implementation of repository.OrganizationRepository
type MockOrganizationRepository struct {
	mu         sync.RWMutex
	orgs       map[string]*domain.Organization
	ShouldFail bool
}

// NewMockOrganizationRepository creates a new mock organization repository
func NewMockOrganizationRepository() *MockOrganizationRepository {
	return &MockOrganizationRepository{orgs: make(map[string]*domain.Organization)}
}

// Create stores an organization
func (m *MockOrganizationRepository) Create(ctx context.Context, org *domain.Organization) error {
	if m.ShouldFail {
		return ErrMockRepositoryFailure
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orgs[org.ID] = org
	return nil
}

// GetByID retrieves an organization by ID
func (m *MockOrganizationRepository) GetByID(ctx context.Context, id string) (*domain.Organization, error) {
	if m.ShouldFail {
		return nil, ErrMockRepositoryFailure
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.orgs[id], nil
}

// Count returns the number of stored organizations (for testing)
func (m *MockOrganizationRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.orgs)
}

// MockConversationRepository is an in-memory implementation of repository.ConversationRepository
type MockConversationRepository struct {
	mu            sync.RWMutex
	conversations map[string]*domain.Conversation
	ShouldFail    bool
}

// NewMockConversationRepository creates a new mock conversation repository
func NewMockConversationRepository() *MockConversationRepository {
	return &MockConversationRepository{conversations: make(map[string]*domain.Conversation)}
}

// Create stores a conversation
func (m *MockConversationRepository) Create(ctx context.Context, conv *domain.Conversation) error {
	if m.ShouldFail {
		return ErrMockRepositoryFailure
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conversations[conv.ID] = conv
	return nil
}

// ListByOrganization retrieves the organization's active conversations,
// most recently updated first
func (m *MockConversationRepository) ListByOrganization(ctx context.Context, orgID string, limit int64) ([]*domain.Conversation, error) {
	if m.ShouldFail {
		return nil, ErrMockRepositoryFailure
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Conversation, 0)
	for _, c := range m.conversations {
		if c.OrganizationID == orgID && c.Active {
			result = append(result, c)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})
	if int64(len(result)) > limit {
		result = result[:limit]
	}
	return result, nil
}

// GetByID retrieves a conversation by ID within the organization
func (m *MockConversationRepository) GetByID(ctx context.Context, orgID, id string) (*domain.Conversation, error) {
	if m.ShouldFail {
		return nil, ErrMockRepositoryFailure
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	conv, exists := m.conversations[id]
	if !exists || conv.OrganizationID != orgID {
		return nil, nil
	}
	return conv, nil
}

// CountByOrganization counts the organization's conversations
func (m *MockConversationRepository) CountByOrganization(ctx context.Context, orgID string) (int64, error) {
	if m.ShouldFail {
		return 0, ErrMockRepositoryFailure
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var count int64
	for _, c := range m.conversations {
		if c.OrganizationID == orgID {
			count++
		}
	}
	return count, nil
}

// MockCaseRepository is an in-memory implementation of repository.CaseRepository
type MockCaseRepository struct {
	mu         sync.RWMutex
	cases      map[string]*domain.LegalCase
	ShouldFail bool
}

// NewMockCaseRepository creates a new mock case repository
func NewMockCaseRepository() *MockCaseRepository {
	return &MockCaseRepository{cases: make(map[string]*domain.LegalCase)}
}

// Create stores a case
func (m *MockCaseRepository) Create(ctx context.Context, legalCase *domain.LegalCase) error {
	if m.ShouldFail {
		return ErrMockRepositoryFailure
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cases[legalCase.ID] = legalCase
	return nil
}

// ListByOrganization retrieves the organization's cases, most recently
// updated first
func (m *MockCaseRepository) ListByOrganization(ctx context.Context, orgID string, limit int64) ([]*domain.LegalCase, error) {
	if m.ShouldFail {
		return nil, ErrMockRepositoryFailure
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.LegalCase, 0)
	for _, c := range m.cases {
		if c.OrganizationID == orgID {
			result = append(result, c)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})
	if int64(len(result)) > limit {
		result = result[:limit]
	}
	return result, nil
}

// GetByID retrieves a case by ID within the organization
func (m *MockCaseRepository) GetByID(ctx context.Context, orgID, id string) (*domain.LegalCase, error) {
	if m.ShouldFail {
		return nil, ErrMockRepositoryFailure
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	legalCase, exists := m.cases[id]
	if !exists || legalCase.OrganizationID != orgID {
		return nil, nil
	}
	return legalCase, nil
}

// CountByOrganization counts the organization's cases
func (m *MockCaseRepository) CountByOrganization(ctx context.Context, orgID string) (int64, error) {
	if m.ShouldFail {
		return 0, ErrMockRepositoryFailure
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var count int64
	for _, c := range m.cases {
		if c.OrganizationID == orgID {
			count++
		}
	}
	return count, nil
}

// CountByStatus counts the organization's cases with the given status
func (m *MockCaseRepository) CountByStatus(ctx context.Context, orgID, status string) (int64, error) {
	if m.ShouldFail {
		return 0, ErrMockRepositoryFailure
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var count int64
	for _, c := range m.cases {
		if c.OrganizationID == orgID && c.Status == status {
			count++
		}
	}
	return count, nil
}

// MockAnalysisRepository is an in-memory implementation of repository.AnalysisRepository
type MockAnalysisRepository struct {
	mu         sync.RWMutex
	analyses   map[string]*domain.DocumentAnalysis
	ShouldFail bool
}

// NewMockAnalysisRepository creates a new mock analysis repository
func NewMockAnalysisRepository() *MockAnalysisRepository {
	return &MockAnalysisRepository{analyses: make(map[string]*domain.DocumentAnalysis)}
}

// Create stores a document analysis
func (m *MockAnalysisRepository) Create(ctx context.Context, analysis *domain.DocumentAnalysis) error {
	if m.ShouldFail {
		return ErrMockRepositoryFailure
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.analyses[analysis.ID] = analysis
	return nil
}

// ListByOrganization retrieves the organization's analyses, most recent first
func (m *MockAnalysisRepository) ListByOrganization(ctx context.Context, orgID string, limit int64) ([]*domain.DocumentAnalysis, error) {
	if m.ShouldFail {
		return nil, ErrMockRepositoryFailure
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.DocumentAnalysis, 0)
	for _, a := range m.analyses {
		if a.OrganizationID == orgID {
			result = append(result, a)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if int64(len(result)) > limit {
		result = result[:limit]
	}
	return result, nil
}
