//go:generate go run go.uber.org/mock/mockgen -source=board.go -destination=../mocks/mock_board_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"sync"
	"trashtalk/domain"
	"trashtalk/errors"

	"github.com/dgraph-io/badger/v4"
)

const (
	BoardKey        = "forum_state"
	ContractInfoKey = "contract_info"
)

type IBoardRepository interface {
	Load() (domain.BoardState, error)
	Save(state domain.BoardState) error
	Create(state domain.BoardState, info domain.ContractInfo) error
	Update(action func(domain.BoardState) (domain.BoardState, error)) (domain.BoardState, error)
	ContractInfo() (domain.ContractInfo, error)
}

// BoardRepository keeps the whole board under a single badger key.
// Every write goes through mu so that two updates never interleave their
// read and write phases.
type BoardRepository struct {
	db  *badger.DB
	log *slog.Logger
	mu  sync.Mutex
}

func NewBoardRepository(db *badger.DB, log *slog.Logger) *BoardRepository {
	return &BoardRepository{db: db, log: log}
}

// Load returns the stored board or ErrNotFound if it was never created.
func (b *BoardRepository) Load() (domain.BoardState, error) {
	var state domain.BoardState
	err := b.db.View(func(txn *badger.Txn) error {
		var err error
		state, _, err = loadBoard(txn)
		return err
	})
	if err != nil {
		return domain.BoardState{}, err
	}
	return state, nil
}

// Save overwrites the stored board unconditionally.
func (b *BoardRepository) Save(state domain.BoardState) error {
	data, err := EncodeBoard(state)
	if err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(BoardKey), data)
	})
}

// Create writes the board and the contract info in one transaction.
// It fails with ErrAlreadyInitialized if a board is already stored.
func (b *BoardRepository) Create(state domain.BoardState, info domain.ContractInfo) error {
	data, err := EncodeBoard(state)
	if err != nil {
		return err
	}
	infoData, err := encodeContractInfo(info)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	return b.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(BoardKey))
		switch {
		case err == nil:
			return errors.ErrAlreadyInitialized
		case !errors.Is(err, badger.ErrKeyNotFound):
			return fmt.Errorf("failed to read %s: %w", BoardKey, err)
		}
		if err := txn.Set([]byte(BoardKey), data); err != nil {
			return err
		}
		return txn.Set([]byte(ContractInfoKey), infoData)
	})
}

// Update loads the board, applies action and stores the result.
// Nothing is written when action fails.
func (b *BoardRepository) Update(action func(domain.BoardState) (domain.BoardState, error)) (domain.BoardState, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var updated domain.BoardState
	err := b.db.Update(func(txn *badger.Txn) error {
		current, version, err := loadBoard(txn)
		if err != nil {
			return err
		}
		if version < CurrentStateVersion {
			b.log.Debug("Migrating stored board", "from", version, "to", CurrentStateVersion)
		}
		next, err := action(current)
		if err != nil {
			return err
		}
		data, err := EncodeBoard(next)
		if err != nil {
			return err
		}
		if err := txn.Set([]byte(BoardKey), data); err != nil {
			return err
		}
		updated = next
		return nil
	})
	if err != nil {
		return domain.BoardState{}, err
	}
	return updated, nil
}

// ContractInfo returns the contract name and version written at creation.
func (b *BoardRepository) ContractInfo() (domain.ContractInfo, error) {
	var info domain.ContractInfo
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(ContractInfoKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%s: %w", ContractInfoKey, errors.ErrNotFound)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			info, err = decodeContractInfo(val)
			return err
		})
	})
	return info, err
}

// loadBoard returns the stored board and the schema version it was read from.
func loadBoard(txn *badger.Txn) (domain.BoardState, int, error) {
	item, err := txn.Get([]byte(BoardKey))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return domain.BoardState{}, 0, fmt.Errorf("%s: %w", BoardKey, errors.ErrNotFound)
	}
	if err != nil {
		return domain.BoardState{}, 0, err
	}
	var (
		state   domain.BoardState
		version int
	)
	err = item.Value(func(val []byte) error {
		if state, err = DecodeBoard(val); err != nil {
			return err
		}
		version, err = StateVersion(val)
		return err
	})
	return state, version, err
}
