// Package basiscache persists graph Fourier bases so repeated analyses of the
// same molecule set skip the cubic-cost eigendecomposition.
//
// Entries are keyed by a hash of the shift operator's entries and name and
// stored as JSON in a badger database.
package basiscache

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/badger/v4"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-chemsp/dsp/core"
	"github.com/cwbudde/algo-chemsp/dsp/gft"
)

const keyPrefix = "basis:"

// Cache is a badger-backed basis store. A nil *Cache is a valid cache that
// never hits and discards writes.
type Cache struct {
	db *badger.DB
}

// Open opens (or creates) a cache in dir.
func Open(dir string) (*Cache, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open basis cache: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close releases the database.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.db.Close()
}

type record struct {
	N       int       `json:"n"`
	Values  []float64 `json:"values"`
	Vectors []float64 `json:"vectors"` // row-major n x n
}

// Key derives the cache key for operator op with matrix m.
func Key(op string, m mat.Matrix) string {
	r, c := m.Dims()
	h := xxhash.New()
	_, _ = h.WriteString(op)

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(r))
	_, _ = h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(c))
	_, _ = h.Write(buf[:])
	for i := range r {
		for j := range c {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(m.At(i, j)))
			_, _ = h.Write(buf[:])
		}
	}
	return op + ":" + strconv.FormatUint(h.Sum64(), 16)
}

// Get returns the cached basis for key. The boolean reports a hit.
func (c *Cache) Get(ctx context.Context, key string) (gft.Basis, bool, error) {
	if c == nil {
		return gft.Basis{}, false, nil
	}
	if err := ctx.Err(); err != nil {
		return gft.Basis{}, false, err
	}

	var rec record
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return gft.Basis{}, false, nil
	}
	if err != nil {
		return gft.Basis{}, false, fmt.Errorf("read basis %s: %w", key, err)
	}
	if rec.N <= 0 || len(rec.Values) != rec.N || len(rec.Vectors) != rec.N*rec.N {
		return gft.Basis{}, false, fmt.Errorf("corrupt basis record %s", key)
	}

	return gft.Basis{
		Vectors: mat.NewDense(rec.N, rec.N, rec.Vectors),
		Values:  rec.Values,
	}, true, nil
}

// Put stores b under key.
func (c *Cache) Put(ctx context.Context, key string, b gft.Basis) error {
	if c == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	n := b.Dim()
	rec := record{N: n, Values: b.Values, Vectors: make([]float64, 0, n*n)}
	for i := range n {
		rec.Vectors = append(rec.Vectors, mat.Row(nil, i, b.Vectors)...)
	}
	buf, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+key), buf)
	})
}

// FourierBasis returns the cached basis of gso, computing and storing it on a miss.
// The second result reports whether the cache was hit.
func FourierBasis(ctx context.Context, c *Cache, op string, gso mat.Matrix, opts ...core.ComputeOption) (gft.Basis, bool, error) {
	key := Key(op, gso)

	b, ok, err := c.Get(ctx, key)
	if err != nil {
		return gft.Basis{}, false, err
	}
	if ok {
		return b, true, nil
	}

	b, err = gft.FourierBasis(gso, opts...)
	if err != nil {
		return gft.Basis{}, false, err
	}
	if err := c.Put(ctx, key, b); err != nil {
		return gft.Basis{}, false, err
	}
	return b, false, nil
}
