package sessions

import (
	"errors"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gofrs/uuid/v5"
)

var ErrNoSession = errors.New("session not found")

// DefaultTTL is how long a login stays valid without re-authenticating.
const DefaultTTL = 24 * time.Hour

// Store keeps login sessions server-side in a Badger database, keyed by an
// opaque token handed to the browser. Logout deletes the entry, so a stolen
// token dies with the session rather than outliving it.
type Store struct {
	db  *badger.DB
	ttl time.Duration
}

// Open opens a session store at dir. An empty dir opens an in-memory store,
// used by tests.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db, ttl: DefaultTTL}, nil
}

// Create establishes a session for the given user and returns its token.
func (s *Store) Create(userID int) (string, error) {
	token, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(token.String()), []byte(strconv.Itoa(userID))).WithTTL(s.ttl)
		return txn.SetEntry(entry)
	})
	if err != nil {
		return "", err
	}
	return token.String(), nil
}

// Get resolves a token to the user it belongs to. Unknown and expired
// tokens both report ErrNoSession.
func (s *Store) Get(token string) (int, error) {
	var userID int
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(token))
		if err == badger.ErrKeyNotFound {
			return ErrNoSession
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			userID, err = strconv.Atoi(string(val))
			return err
		})
	})
	if err != nil {
		return 0, err
	}
	return userID, nil
}

// Delete invalidates a session. Deleting an unknown token is not an error.
func (s *Store) Delete(token string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(token))
	})
}

func (s *Store) Close() error {
	return s.db.Close()
}
