// Package history keeps the lines given to the calculator in a bbolt
// database.
package history

import (
	"encoding/binary"
	"errors"
	"time"

	bolt "go.etcd.io/bbolt"
)

const bucketLines = "lines"

// ErrNoLine is returned when a line with the requested sequence number does
// not exist.
var ErrNoLine = errors.New("no such history line")

// Line is an entry in the history.
type Line struct {
	Seq  int
	Text string
}

// Store is a history database. It is safe to use concurrently, but only one
// process can have the database open at a time.
type Store struct {
	db *bolt.DB
}

// Open opens the history database at path, creating it if needed. If another
// process holds the database, Open gives up after one second.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketLines))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// NextSeq returns the sequence number the next added line will get.
func (s *Store) NextSeq() (int, error) {
	var seq uint64
	err := s.db.View(func(tx *bolt.Tx) error {
		seq = tx.Bucket([]byte(bucketLines)).Sequence() + 1
		return nil
	})
	return int(seq), err
}

// Add appends a line to the history and returns its sequence number.
func (s *Store) Add(text string) (int, error) {
	var seq uint64
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketLines))
		var err error
		seq, err = b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), []byte(text))
	})
	return int(seq), err
}

// Line returns the line with the given sequence number.
func (s *Store) Line(seq int) (string, error) {
	var text string
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketLines)).Get(marshalSeq(uint64(seq)))
		if v == nil {
			return ErrNoLine
		}
		text = string(v)
		return nil
	})
	return text, err
}

// Lines returns the lines with sequence numbers in [from, upto), in order.
func (s *Store) Lines(from, upto int) ([]Line, error) {
	var lines []Line
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(bucketLines)).Cursor()
		for k, v := c.Seek(marshalSeq(uint64(from))); k != nil && unmarshalSeq(k) < uint64(upto); k, v = c.Next() {
			lines = append(lines, Line{Seq: int(unmarshalSeq(k)), Text: string(v)})
		}
		return nil
	})
	return lines, err
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

func unmarshalSeq(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}
