package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen/quote-link-service/internal/ports"
)

// MockHealthRegistry is a mock of ports.HealthRegistry.
type MockHealthRegistry struct {
	mock.Mock
}

// NewMockHealthRegistry creates a mock whose expectations are asserted on cleanup.
func NewMockHealthRegistry(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockHealthRegistry {
	m := &MockHealthRegistry{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockHealthRegistry_Expecter records typed expectations.
type MockHealthRegistry_Expecter struct {
	mock *mock.Mock
}

func (_m *MockHealthRegistry) EXPECT() *MockHealthRegistry_Expecter {
	return &MockHealthRegistry_Expecter{mock: &_m.Mock}
}

// Register provides a mock function.
func (_m *MockHealthRegistry) Register(checker ports.HealthChecker) error {
	return _m.Called(checker).Error(0)
}

// MockHealthRegistry_Register_Call wraps mock.Call for Register.
type MockHealthRegistry_Register_Call struct {
	*mock.Call
}

func (_e *MockHealthRegistry_Expecter) Register(checker any) *MockHealthRegistry_Register_Call {
	return &MockHealthRegistry_Register_Call{Call: _e.mock.On("Register", checker)}
}

func (_c *MockHealthRegistry_Register_Call) Return(err error) *MockHealthRegistry_Register_Call {
	_c.Call.Return(err)
	return _c
}

// CheckAll provides a mock function.
func (_m *MockHealthRegistry) CheckAll(ctx context.Context) *ports.HealthResult {
	ret := _m.Called(ctx)

	if fn, ok := ret.Get(0).(func(context.Context) *ports.HealthResult); ok {
		return fn(ctx)
	}

	result, _ := ret.Get(0).(*ports.HealthResult)

	return result
}

// MockHealthRegistry_CheckAll_Call wraps mock.Call for CheckAll.
type MockHealthRegistry_CheckAll_Call struct {
	*mock.Call
}

func (_e *MockHealthRegistry_Expecter) CheckAll(ctx any) *MockHealthRegistry_CheckAll_Call {
	return &MockHealthRegistry_CheckAll_Call{Call: _e.mock.On("CheckAll", ctx)}
}

func (_c *MockHealthRegistry_CheckAll_Call) Return(result *ports.HealthResult) *MockHealthRegistry_CheckAll_Call {
	_c.Call.Return(result)
	return _c
}

func (_c *MockHealthRegistry_CheckAll_Call) RunAndReturn(fn func(context.Context) *ports.HealthResult) *MockHealthRegistry_CheckAll_Call {
	_c.Call.Return(fn)
	return _c
}

func (_c *MockHealthRegistry_CheckAll_Call) Maybe() *MockHealthRegistry_CheckAll_Call {
	_c.Call.Maybe()
	return _c
}
