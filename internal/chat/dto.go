package chat

import "github.com/radityaputra/intranet-portal/internal"

// CreateRoomDTO is the payload for opening a new chat room.
type CreateRoomDTO struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Type        string  `json:"type,omitempty"`
	IsPrivate   bool    `json:"is_private,omitempty"`
}

func (d CreateRoomDTO) Validate() error {
	if d.Name == "" {
		return internal.NewMissingFieldsError("name")
	}
	if d.Type != "" && d.Type != RoomTypeGroup && d.Type != RoomTypeDirect {
		return internal.NewValidationError("type must be group or direct", internal.ErrCodeInvalidRoomType)
	}
	return nil
}

// SendMessageDTO is the payload for posting a message into a room.
type SendMessageDTO struct {
	Message     string `json:"message"`
	MessageType string `json:"message_type,omitempty"`
}

func (d SendMessageDTO) Validate() error {
	if d.Message == "" {
		return internal.NewMissingFieldsError("message")
	}
	return nil
}
