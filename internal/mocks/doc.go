// Package mocks provides centralized mock implementations for testing.
//
// Mocks are built on testify/mock so tests can set expectations and assert
// that they were met:
//
//	tasks := &mocks.MockTaskStore{}
//	tasks.On("GetByID", mock.Anything, int64(1)).Return(nil, false, nil)
//	defer tasks.AssertExpectations(t)
//
// When adding a new mock, create a file named after the interface being
// mocked and add a compile-time assertion that the mock satisfies it.
package mocks
