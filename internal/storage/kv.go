package storage

import (
	"encoding/json"

	"github.com/julianstephens/lifeboost/internal/logger"
	"github.com/julianstephens/lifeboost/internal/metrics"
)

// KV is the fault-tolerant view of a Provider used by every domain
// component. Failed or corrupt reads look like absent keys and failed
// writes report false. Nothing here returns an error or panics, so callers
// keep running on in-memory state when persistence is degraded.
type KV struct {
	p Provider
}

func NewKV(p Provider) *KV {
	return &KV{p: p}
}

func fault(op, key string, err error) {
	metrics.StorageFaults.WithLabelValues(op).Inc()
	logger.Warn("storage fault", "op", op, "key", key, "error", err)
}

// GetString returns the raw stored value.
func (kv *KV) GetString(key string) (string, bool) {
	if kv == nil || kv.p == nil {
		return "", false
	}
	v, found, err := kv.p.Get(key)
	if err != nil {
		fault("get", key, err)
		return "", false
	}
	return v, found
}

// GetJSON decodes the value under key into v. Corrupt payloads count as absent
// and leave v untouched.
func (kv *KV) GetJSON(key string, v any) bool {
	raw, found := kv.GetString(key)
	if !found {
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		fault("decode", key, err)
		return false
	}
	return true
}

// Lookup is the outcome of Probe.
type Lookup int

const (
	Missing Lookup = iota
	Found
	Unreadable
)

// Probe is GetJSON for callers that must tell an absent key apart from a
// store that could not be read or returned corrupt data.
func (kv *KV) Probe(key string, v any) Lookup {
	if kv == nil || kv.p == nil {
		return Unreadable
	}
	raw, found, err := kv.p.Get(key)
	if err != nil {
		fault("get", key, err)
		return Unreadable
	}
	if !found {
		return Missing
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		fault("decode", key, err)
		return Unreadable
	}
	return Found
}

func (kv *KV) PutString(key, value string) bool {
	if kv == nil || kv.p == nil {
		return false
	}
	if err := kv.p.Set(key, value); err != nil {
		fault("set", key, err)
		return false
	}
	return true
}

func (kv *KV) PutJSON(key string, v any) bool {
	data, err := json.Marshal(v)
	if err != nil {
		fault("encode", key, err)
		return false
	}
	return kv.PutString(key, string(data))
}

func (kv *KV) Remove(key string) bool {
	if kv == nil || kv.p == nil {
		return false
	}
	if err := kv.p.Remove(key); err != nil {
		fault("remove", key, err)
		return false
	}
	return true
}

// Clear removes every key and reports whether all removals succeeded.
func (kv *KV) Clear(keys ...string) bool {
	ok := true
	for _, k := range keys {
		if !kv.Remove(k) {
			ok = false
		}
	}
	return ok
}
