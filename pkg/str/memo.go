package str

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// memo is an append-only memoization cache: values are computed once per
// key and never evicted. Concurrent first computes for the same key are
// deduplicated with singleflight; since conversions are deterministic a
// duplicate write would be benign, the dedup just avoids wasted work.
type memo struct {
	values sync.Map // string -> string
	group  singleflight.Group
}

func (m *memo) get(key string, compute func() string) string {
	if v, ok := m.values.Load(key); ok {
		return v.(string)
	}

	v, _, _ := m.group.Do(key, func() (any, error) {
		out := compute()
		m.values.Store(key, out)
		return out, nil
	})
	return v.(string)
}
