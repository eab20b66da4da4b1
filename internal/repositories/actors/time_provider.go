package actors

import "time"

//go:generate mockgen -destination=mocks/mock_time_provider.go -package=mocks github.com/lecrapal/Cairn-FoundryVTT/internal/repositories/actors TimeProvider

type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider reads the wall clock in UTC
type RealTimeProvider struct{}

// Now returns the current UTC time
func (RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
