package service

import (
	"context"
	"encoding/json"
	"path"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jcpao-csu/staff-directory-api/internal/models"
	appErrors "github.com/jcpao-csu/staff-directory-api/pkg/errors"
)

func strp(s string) *string { return &s }

func intp(i int) *int { return &i }

type fakeSource struct {
	employees   []models.RawEmployeeRecord
	pets        []models.RawPetRecord
	employeeErr error
	petErr      error
	delay       time.Duration

	employeeCalls int32
	petCalls      int32
}

func (f *fakeSource) FetchEmployeeRows(ctx context.Context) ([]models.RawEmployeeRecord, error) {
	atomic.AddInt32(&f.employeeCalls, 1)
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return f.employees, f.employeeErr
}

func (f *fakeSource) FetchPetRows(context.Context) ([]models.RawPetRecord, error) {
	atomic.AddInt32(&f.petCalls, 1)
	return f.pets, f.petErr
}

// memoryCache is a CacheRepository over a map, with glob-suffix deletes.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (m *memoryCache) Get(_ context.Context, key string, dest interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	raw, ok := m.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = raw
	return nil
}

func (m *memoryCache) DeleteByPattern(_ context.Context, pattern string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key := range m.entries {
		if ok, _ := path.Match(pattern, key); ok {
			delete(m.entries, key)
		}
	}
	return nil
}

func (m *memoryCache) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.entries[key]
	return ok
}

func sampleSource() *fakeSource {
	return &fakeSource{
		employees: []models.RawEmployeeRecord{
			{FullName: strp("Alex Smith"), FirstName: strp("Alex"), LastName: strp("Smith"), WorkEmail: strp("a@x.org"), WorkPhone: strp("8168810001"), Position: strp("APA"), AssignedUnit: strp("{GCU,SVU}"), OfficeLocation: strp("Dt-11"), ServiceDays: intp(400), BirthMonth: intp(5), BirthDay: intp(3), Race: strp("{W}"), Sex: strp("M")},
			{FullName: strp("Bea Jones"), FirstName: strp("Bea"), LastName: strp("Jones"), WorkEmail: strp("b@x.org"), Position: strp("LA"), AssignedUnit: strp("{GCU}"), OfficeLocation: strp("Indy"), ServiceDays: intp(800), BirthMonth: intp(5), BirthDay: intp(1), Race: strp("{B,H}"), Sex: strp("F")},
			{FullName: strp("Cal Young"), FirstName: strp("Cal"), LastName: strp("Young"), WorkEmail: strp("c@x.org"), Position: strp("Exec"), AssignedUnit: strp("{Exec}"), OfficeLocation: strp("Dt-11")},
		},
		pets: []models.RawPetRecord{
			{PetName: strp("Biscuit"), PetPreferredName: strp("Biscuit"), LastName: strp("Smith"), WorkEmail: strp("a@x.org"), AssignedUnit: strp("{GCU}"), BirthMonth: intp(5), BirthDay: intp(2)},
		},
	}
}
