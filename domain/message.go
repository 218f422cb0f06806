// Package domain contains core concepts of the board.
// This file defines the Message entry and its two accepted JSON shapes.
package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Message is one entry of the board.
// Its canonical JSON form is {"message": ..., "nickname": ...}; a bare JSON
// string is still accepted and read as a message without nickname.
type Message struct {
	Text     string `json:"message"`
	Nickname string `json:"nickname"`
}

// NewMessage builds a message without nickname.
func NewMessage(text string) Message {
	return Message{Text: text}
}

type structuredMessage struct {
	Text     *string `json:"message"`
	Nickname string  `json:"nickname"`
}

func (m *Message) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*m = Message{Text: text}
		return nil
	}

	var s structuredMessage
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&s); err != nil {
		return fmt.Errorf("message must be a string or {message, nickname}: %w", err)
	}
	if s.Text == nil {
		return fmt.Errorf("message: missing field \"message\"")
	}
	*m = Message{Text: *s.Text, Nickname: s.Nickname}
	return nil
}

func (m Message) String() string {
	if m.Nickname == "" {
		return m.Text
	}
	return fmt.Sprintf("%s: %s", m.Nickname, m.Text)
}
