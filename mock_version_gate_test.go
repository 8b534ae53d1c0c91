package quicversion

import "github.com/stretchr/testify/mock"

var _ VersionGate = (*MockVersionGate)(nil)

type MockVersionGate struct {
	mock.Mock
}

func (m *MockVersionGate) IsEnabled(v Version) bool {
	args := m.Called(v)
	return args.Bool(0)
}
