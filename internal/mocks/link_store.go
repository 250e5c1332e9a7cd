package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen/quote-link-service/internal/domain"
)

// MockLinkStore is a mock of ports.LinkStore.
type MockLinkStore struct {
	mock.Mock
}

// NewMockLinkStore creates a mock whose expectations are asserted on cleanup.
func NewMockLinkStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLinkStore {
	m := &MockLinkStore{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockLinkStore_Expecter records typed expectations.
type MockLinkStore_Expecter struct {
	mock *mock.Mock
}

func (_m *MockLinkStore) EXPECT() *MockLinkStore_Expecter {
	return &MockLinkStore_Expecter{mock: &_m.Mock}
}

func (_m *MockLinkStore) Shorten(ctx context.Context, url string) domain.ShortLink {
	return _m.Called(ctx, url).Get(0).(domain.ShortLink)
}

func (_m *MockLinkStore) Resolve(ctx context.Context, code string) (string, error) {
	ret := _m.Called(ctx, code)
	return ret.String(0), ret.Error(1)
}

func (_m *MockLinkStore) Delete(ctx context.Context, code string) error {
	return _m.Called(ctx, code).Error(0)
}

func (_m *MockLinkStore) Len() int {
	return _m.Called().Int(0)
}

// MockLinkStore_Shorten_Call wraps mock.Call for Shorten.
type MockLinkStore_Shorten_Call struct {
	*mock.Call
}

func (_e *MockLinkStore_Expecter) Shorten(ctx, url any) *MockLinkStore_Shorten_Call {
	return &MockLinkStore_Shorten_Call{Call: _e.mock.On("Shorten", ctx, url)}
}

func (_c *MockLinkStore_Shorten_Call) Return(link domain.ShortLink) *MockLinkStore_Shorten_Call {
	_c.Call.Return(link)
	return _c
}

// MockLinkStore_Resolve_Call wraps mock.Call for Resolve.
type MockLinkStore_Resolve_Call struct {
	*mock.Call
}

func (_e *MockLinkStore_Expecter) Resolve(ctx, code any) *MockLinkStore_Resolve_Call {
	return &MockLinkStore_Resolve_Call{Call: _e.mock.On("Resolve", ctx, code)}
}

func (_c *MockLinkStore_Resolve_Call) Return(url string, err error) *MockLinkStore_Resolve_Call {
	_c.Call.Return(url, err)
	return _c
}

// MockLinkStore_Delete_Call wraps mock.Call for Delete.
type MockLinkStore_Delete_Call struct {
	*mock.Call
}

func (_e *MockLinkStore_Expecter) Delete(ctx, code any) *MockLinkStore_Delete_Call {
	return &MockLinkStore_Delete_Call{Call: _e.mock.On("Delete", ctx, code)}
}

func (_c *MockLinkStore_Delete_Call) Return(err error) *MockLinkStore_Delete_Call {
	_c.Call.Return(err)
	return _c
}
