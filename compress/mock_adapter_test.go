package compress

import (
	"errors"
	"sync"
)

// mockAdapter is an in-process Adapter test double. It implements
// StatefulAdapter, so installing it directly into a Registry's row in
// place of a real codec exercises the stateful ensureInit path (the real
// codecs cover the stateless one).
type mockAdapter struct {
	mu sync.Mutex

	failLoad bool
	failInit bool
	loads    int
	inits    int
	unloads  int

	echo bool // Compress/Decompress just return the input unchanged
}

func (m *mockAdapter) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failLoad {
		return errors.New("mock: load failed")
	}
	m.loads++
	return nil
}

func (m *mockAdapter) Unload() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unloads++
}

func (m *mockAdapter) ValidateLevel(level int) error {
	if level < 0 || level > 9 {
		return errors.New("mock: level out of range")
	}
	return nil
}

func (m *mockAdapter) Compress(_ int, in []byte) ([]byte, error) {
	out := make([]byte, len(in))
	copy(out, in)
	return out, nil
}

func (m *mockAdapter) Decompress(in []byte) ([]byte, error) {
	out := make([]byte, len(in))
	copy(out, in)
	return out, nil
}

func (m *mockAdapter) IsInit(state any) bool { return state != nil }

func (m *mockAdapter) Init() (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failInit {
		return nil, errors.New("mock: init failed")
	}
	m.inits++
	return "initialized", nil
}

func (m *mockAdapter) Fini(any) {}

var _ Adapter = (*mockAdapter)(nil)
var _ StatefulAdapter = (*mockAdapter)(nil)

// installMock swaps reg's row for id (the tests use zlib, id 1) to use a
// mock instead of the real codec, so tests can simulate load/init failures deterministically
// without needing an actually-broken real back-end.
func installMock(reg *Registry, id uint8, m *mockAdapter) {
	idx, _ := lookupByID(id)
	reg.rows[idx].newFn = func() Adapter { return m }
}
