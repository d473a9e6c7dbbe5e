package fedcal

import (
	"sync"

	"github.com/psuedomagi/fedcal/pkg/depts"
	"github.com/psuedomagi/fedcal/pkg/status"
)

var shared struct {
	once   sync.Once
	client Client
	err    error
}

// Shared returns a process-wide client over the embedded data, created
// on first use. Programs needing other options create their own client
// with New.
func Shared() (Client, error) {
	shared.once.Do(func() {
		shared.client, shared.err = New()
	})
	return shared.client, shared.err
}

// Resolve resolves date with the shared client.
func Resolve(date any, filter ...depts.Department) (status.Statuses, error) {
	c, err := Shared()
	if err != nil {
		return nil, err
	}
	return c.Resolve(date, filter...)
}
