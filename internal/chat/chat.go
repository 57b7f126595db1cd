package chat

import (
	"time"

	chatDatamodel "github.com/radityaputra/intranet-portal/internal/core/datamodel/chat"
)

const (
	RoomTypeGroup  = "group"
	RoomTypeDirect = "direct"

	MemberRoleAdmin  = "admin"
	MemberRoleMember = "member"
)

// Room is one chat channel.
type Room struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Type        string    `json:"type"`
	IsPrivate   bool      `json:"isPrivate"`
	CreatedByID int64     `json:"createdById"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Message is one chat message inside a room.
type Message struct {
	ID          int64     `json:"id"`
	RoomID      int64     `json:"roomId"`
	SenderID    int64     `json:"senderId"`
	Message     string    `json:"message"`
	MessageType string    `json:"messageType"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Member links a user to a room.
type Member struct {
	ID       int64     `json:"id"`
	RoomID   int64     `json:"roomId"`
	UserID   int64     `json:"userId"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}

func RoomFromDataModel(r *chatDatamodel.Room) *Room {
	return &Room{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Type:        r.Type,
		IsPrivate:   r.IsPrivate,
		CreatedByID: r.CreatedByID,
		CreatedAt:   r.CreatedAt,
	}
}

func RoomToDataModel(r *Room) *chatDatamodel.Room {
	return &chatDatamodel.Room{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Type:        r.Type,
		IsPrivate:   r.IsPrivate,
		CreatedByID: r.CreatedByID,
		CreatedAt:   r.CreatedAt,
	}
}

func RoomsFromDataModel(rows []*chatDatamodel.Room) []*Room {
	result := make([]*Room, len(rows))
	for i, r := range rows {
		result[i] = RoomFromDataModel(r)
	}
	return result
}

func MessageFromDataModel(m *chatDatamodel.Message) *Message {
	return &Message{
		ID:          m.ID,
		RoomID:      m.RoomID,
		SenderID:    m.SenderID,
		Message:     m.Message,
		MessageType: m.MessageType,
		CreatedAt:   m.CreatedAt,
	}
}

func MessagesFromDataModel(rows []*chatDatamodel.Message) []*Message {
	result := make([]*Message, len(rows))
	for i, m := range rows {
		result[i] = MessageFromDataModel(m)
	}
	return result
}
