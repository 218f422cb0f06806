package repositories

import (
	"encoding/json"
	"fmt"
	"trashtalk/domain"
	"trashtalk/errors"

	"github.com/samber/lo"
)

// Versions of the persisted board layout.
// Version 1 stored messages as bare strings and had no version field.
// Version 2 stores {message, nickname} objects.
const (
	LegacyStateVersion  = 1
	CurrentStateVersion = 2
)

type diskBoard struct {
	Version  int               `json:"version,omitempty"`
	Messages []json.RawMessage `json:"messages"`
	Count    int32             `json:"count"`
	Owner    string            `json:"owner"`
}

// EncodeBoard serializes the board in the current layout.
func EncodeBoard(state domain.BoardState) ([]byte, error) {
	return json.Marshal(struct {
		Version  int              `json:"version"`
		Messages []domain.Message `json:"messages"`
		Count    int32            `json:"count"`
		Owner    string           `json:"owner"`
	}{
		Version:  CurrentStateVersion,
		Messages: lo.Ternary(state.Messages == nil, []domain.Message{}, state.Messages),
		Count:    state.Count,
		Owner:    string(state.Owner),
	})
}

// DecodeBoard reads a board stored in either layout.
// Legacy string messages come back without nickname.
func DecodeBoard(data []byte) (domain.BoardState, error) {
	var disk diskBoard
	if err := json.Unmarshal(data, &disk); err != nil {
		return domain.BoardState{}, fmt.Errorf("failed to decode %s: %w", BoardKey, err)
	}
	if disk.Version > CurrentStateVersion {
		return domain.BoardState{}, fmt.Errorf("%w: %d", errors.ErrUnsupportedVersion, disk.Version)
	}

	messages := make([]domain.Message, 0, len(disk.Messages))
	for i, raw := range disk.Messages {
		var message domain.Message
		if err := json.Unmarshal(raw, &message); err != nil {
			return domain.BoardState{}, fmt.Errorf("failed to decode message %d: %w", i, err)
		}
		messages = append(messages, message)
	}

	return domain.BoardState{
		Messages: messages,
		Count:    disk.Count,
		Owner:    domain.Owner(disk.Owner),
	}, nil
}

// StateVersion reports the layout version of a stored board.
func StateVersion(data []byte) (int, error) {
	var disk struct {
		Version int `json:"version"`
	}
	if err := json.Unmarshal(data, &disk); err != nil {
		return 0, err
	}
	return lo.Ternary(disk.Version == 0, LegacyStateVersion, disk.Version), nil
}

func encodeContractInfo(info domain.ContractInfo) ([]byte, error) {
	return json.Marshal(info)
}

func decodeContractInfo(data []byte) (domain.ContractInfo, error) {
	var info domain.ContractInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return domain.ContractInfo{}, fmt.Errorf("failed to decode %s: %w", ContractInfoKey, err)
	}
	return info, nil
}
