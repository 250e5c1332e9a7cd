package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen/quote-link-service/internal/domain"
)

// MockQuoteStore is a mock of ports.QuoteStore.
type MockQuoteStore struct {
	mock.Mock
}

// NewMockQuoteStore creates a mock whose expectations are asserted on cleanup.
func NewMockQuoteStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockQuoteStore {
	m := &MockQuoteStore{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockQuoteStore_Expecter records typed expectations.
type MockQuoteStore_Expecter struct {
	mock *mock.Mock
}

func (_m *MockQuoteStore) EXPECT() *MockQuoteStore_Expecter {
	return &MockQuoteStore_Expecter{mock: &_m.Mock}
}

func (_m *MockQuoteStore) List(ctx context.Context) []domain.Quote {
	quotes, _ := _m.Called(ctx).Get(0).([]domain.Quote)
	return quotes
}

func (_m *MockQuoteStore) GetRandom(ctx context.Context) (domain.Quote, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).(domain.Quote), ret.Error(1)
}

func (_m *MockQuoteStore) GetByID(ctx context.Context, id string) (domain.Quote, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(domain.Quote), ret.Error(1)
}

func (_m *MockQuoteStore) Add(ctx context.Context, text, speaker string) domain.Quote {
	return _m.Called(ctx, text, speaker).Get(0).(domain.Quote)
}

func (_m *MockQuoteStore) Len() int {
	return _m.Called().Int(0)
}

// MockQuoteStore_List_Call wraps mock.Call for List.
type MockQuoteStore_List_Call struct {
	*mock.Call
}

func (_e *MockQuoteStore_Expecter) List(ctx any) *MockQuoteStore_List_Call {
	return &MockQuoteStore_List_Call{Call: _e.mock.On("List", ctx)}
}

func (_c *MockQuoteStore_List_Call) Return(quotes []domain.Quote) *MockQuoteStore_List_Call {
	_c.Call.Return(quotes)
	return _c
}

// MockQuoteStore_Get_Call wraps mock.Call for GetRandom and GetByID.
type MockQuoteStore_Get_Call struct {
	*mock.Call
}

func (_e *MockQuoteStore_Expecter) GetRandom(ctx any) *MockQuoteStore_Get_Call {
	return &MockQuoteStore_Get_Call{Call: _e.mock.On("GetRandom", ctx)}
}

func (_e *MockQuoteStore_Expecter) GetByID(ctx, id any) *MockQuoteStore_Get_Call {
	return &MockQuoteStore_Get_Call{Call: _e.mock.On("GetByID", ctx, id)}
}

func (_c *MockQuoteStore_Get_Call) Return(quote domain.Quote, err error) *MockQuoteStore_Get_Call {
	_c.Call.Return(quote, err)
	return _c
}

// MockQuoteStore_Add_Call wraps mock.Call for Add.
type MockQuoteStore_Add_Call struct {
	*mock.Call
}

func (_e *MockQuoteStore_Expecter) Add(ctx, text, speaker any) *MockQuoteStore_Add_Call {
	return &MockQuoteStore_Add_Call{Call: _e.mock.On("Add", ctx, text, speaker)}
}

func (_c *MockQuoteStore_Add_Call) Return(quote domain.Quote) *MockQuoteStore_Add_Call {
	_c.Call.Return(quote)
	return _c
}
