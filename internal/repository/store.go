package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is one row of the shared keyed collection. Four record
// families live here, told apart by the partition key prefix: "user",
// "channel", "channel#<name>" and "dm#<a>#<b>". The payload is the
// JSON-encoded entity.
type Record struct {
	Pk   string `gorm:"primaryKey;column:pk;size:512"`
	Sk   string `gorm:"primaryKey;column:sk;size:512"`
	Data []byte `gorm:"not null"`
}

var (
	ErrDuplicateKey = errors.New("record already exists")
	ErrNoRecord     = errors.New("record does not exist")
)

// KeyedStore is the opaque storage engine seen by the entity
// repositories: point lookup, partition range query, prefix query,
// conditional insert, overwriting put, and targeted update.
type KeyedStore interface {
	// Insert fails with ErrDuplicateKey when the (pk, sk) pair exists.
	Insert(pk, sk string, data []byte) error
	// Put overwrites an existing record (last write wins).
	Put(pk, sk string, data []byte) error
	// Get returns (nil, nil) when the record is absent.
	Get(pk, sk string) (*Record, error)
	// Query returns a partition's records ordered by sort key.
	Query(pk string) ([]Record, error)
	// QueryPrefix returns every record whose partition key starts with
	// prefix, ordered by (pk, sk).
	QueryPrefix(prefix string) ([]Record, error)
	// Update fails with ErrNoRecord when the (pk, sk) pair is absent.
	Update(pk, sk string, data []byte) error
}

type SQLiteKeyedStore struct {
	db *gorm.DB
}

func NewSQLiteKeyedStore(db *gorm.DB) KeyedStore {
	return &SQLiteKeyedStore{db}
}

func (s *SQLiteKeyedStore) Insert(pk, sk string, data []byte) error {
	err := s.db.Create(&Record{Pk: pk, Sk: sk, Data: data}).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateKey
	}
	return err
}

func (s *SQLiteKeyedStore) Put(pk, sk string, data []byte) error {
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&Record{Pk: pk, Sk: sk, Data: data}).Error
}

func (s *SQLiteKeyedStore) Get(pk, sk string) (*Record, error) {
	var record Record
	err := s.db.Where("pk = ? AND sk = ?", pk, sk).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *SQLiteKeyedStore) Query(pk string) ([]Record, error) {
	var records []Record
	err := s.db.Where("pk = ?", pk).Order("sk ASC").Find(&records).Error
	return records, err
}

func (s *SQLiteKeyedStore) QueryPrefix(prefix string) ([]Record, error) {
	var records []Record
	err := s.db.Where("pk LIKE ?", prefix+"%").Order("pk ASC, sk ASC").Find(&records).Error
	return records, err
}

func (s *SQLiteKeyedStore) Update(pk, sk string, data []byte) error {
	result := s.db.Model(&Record{}).Where("pk = ? AND sk = ?", pk, sk).Update("data", data)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNoRecord
	}
	return nil
}
