package domain

// InstantiateMsg creates the board.
// Messages is accepted on the wire but never stored.
type InstantiateMsg struct {
	Count    *int32   `json:"count" validate:"required"`
	Messages []string `json:"messages"`
}

// ExecuteMsg carries exactly one command variant.
type ExecuteMsg struct {
	AddMessage *AddMessage `json:"add_message,omitempty"`
}

type AddMessage struct {
	Message *Message `json:"message" validate:"required"`
}

// QueryMsg carries exactly one query variant.
type QueryMsg struct {
	GetCount    *GetCount    `json:"get_count,omitempty"`
	GetMessages *GetMessages `json:"get_messages,omitempty"`
}

type GetCount struct{}

type GetMessages struct{}

type CountResponse struct {
	Count int32 `json:"count"`
}

type MessagesResponse struct {
	Messages []Message `json:"messages"`
}
