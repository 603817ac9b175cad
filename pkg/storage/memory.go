package stores

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

type memObject struct {
	data         []byte
	contentType  string
	lastModified time.Time
}

// MemoryStore keeps objects in process memory, standing in for a real backend
// in tests. The call counters let tests assert that a rejected request did no
// storage work.
type MemoryStore struct {
	mu      sync.Mutex
	baseURL string
	objects map[string]memObject

	Writes  int
	Deletes int
	Lists   int
}

func NewMemoryStore(baseURL string) *MemoryStore {
	return &MemoryStore{
		baseURL: baseURL,
		objects: make(map[string]memObject),
	}
}

func (m *MemoryStore) Read(key string) (io.ReadCloser, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	obj, ok := m.objects[key]
	if !ok {
		return nil, 0, fmt.Errorf("object %q not found", key)
	}
	return io.NopCloser(bytes.NewReader(obj.data)), int64(len(obj.data)), nil
}

func (m *MemoryStore) Write(key string, r io.Reader, size int64, contentType string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Writes++
	m.objects[key] = memObject{data: data, contentType: contentType, lastModified: time.Now()}
	return nil
}

func (m *MemoryStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Deletes++
	delete(m.objects, key)
	return nil
}

func (m *MemoryStore) Exists(key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[key]
	return ok, nil
}

func (m *MemoryStore) List(prefix string) ([]ObjectInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Lists++
	var out []ObjectInfo
	for key, obj := range m.objects {
		if strings.HasPrefix(key, prefix) {
			out = append(out, ObjectInfo{Key: key, Size: int64(len(obj.data)), LastModified: obj.lastModified})
		}
	}
	return out, nil
}

func (m *MemoryStore) PublicURL(key string) string {
	return strings.TrimRight(m.baseURL, "/") + "/" + key
}

// SetLastModified backdates an object so tests can age it.
func (m *MemoryStore) SetLastModified(key string, at time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if obj, ok := m.objects[key]; ok {
		obj.lastModified = at
		m.objects[key] = obj
	}
}
