package domain

import (
	"math"
	"trashtalk/errors"
)

// Owner identifies the account that created the board.
type Owner string

// BoardState is the single persisted record of the board.
// Count is not derived from Messages: it starts at whatever the creator chose
// and moves by one per posted message.
type BoardState struct {
	Messages []Message
	Count    int32
	Owner    Owner
}

// NewBoardState returns the state written at instantiation.
// The message list always starts empty.
func NewBoardState(count int32, owner Owner) BoardState {
	return BoardState{
		Messages: []Message{},
		Count:    count,
		Owner:    owner,
	}
}

// AppendMessage returns a copy of the state with the message appended and the
// count incremented. The receiver is left untouched.
func (b BoardState) AppendMessage(message Message) (BoardState, error) {
	if b.Count == math.MaxInt32 {
		return b, errors.ErrCountOverflow
	}
	messages := make([]Message, len(b.Messages), len(b.Messages)+1)
	copy(messages, b.Messages)
	return BoardState{
		Messages: append(messages, message),
		Count:    b.Count + 1,
		Owner:    b.Owner,
	}, nil
}
