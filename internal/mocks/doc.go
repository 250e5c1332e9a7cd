// Package mocks provides mockery-style testify mocks for the ports
// interfaces. Each mock exposes EXPECT() for typed expectations.
package mocks
