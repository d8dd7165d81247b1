package repository

import (
	"sort"
	"strings"
)

// memStore is a map-backed KeyedStore for tests.
type memStore struct {
	records map[string]map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{records: make(map[string]map[string][]byte)}
}

func (m *memStore) Insert(pk, sk string, data []byte) error {
	if _, ok := m.records[pk][sk]; ok {
		return ErrDuplicateKey
	}
	return m.Put(pk, sk, data)
}

func (m *memStore) Put(pk, sk string, data []byte) error {
	if m.records[pk] == nil {
		m.records[pk] = make(map[string][]byte)
	}
	m.records[pk][sk] = data
	return nil
}

func (m *memStore) Get(pk, sk string) (*Record, error) {
	data, ok := m.records[pk][sk]
	if !ok {
		return nil, nil
	}
	return &Record{Pk: pk, Sk: sk, Data: data}, nil
}

func (m *memStore) Query(pk string) ([]Record, error) {
	partition := m.records[pk]
	keys := make([]string, 0, len(partition))
	for sk := range partition {
		keys = append(keys, sk)
	}
	sort.Strings(keys)

	out := make([]Record, 0, len(keys))
	for _, sk := range keys {
		out = append(out, Record{Pk: pk, Sk: sk, Data: partition[sk]})
	}
	return out, nil
}

func (m *memStore) QueryPrefix(prefix string) ([]Record, error) {
	partitions := make([]string, 0)
	for pk := range m.records {
		if strings.HasPrefix(pk, prefix) {
			partitions = append(partitions, pk)
		}
	}
	sort.Strings(partitions)

	var out []Record
	for _, pk := range partitions {
		records, _ := m.Query(pk)
		out = append(out, records...)
	}
	return out, nil
}

func (m *memStore) Update(pk, sk string, data []byte) error {
	if _, ok := m.records[pk][sk]; !ok {
		return ErrNoRecord
	}
	m.records[pk][sk] = data
	return nil
}
