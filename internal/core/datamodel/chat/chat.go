package chat

import "time"

// Room is the persistence model for the chat_rooms table.
type Room struct {
	ID          int64     `gorm:"primaryKey"`
	Name        string    `gorm:"not null"`
	Description *string   `gorm:""`
	Type        string    `gorm:"not null;default:group"`
	IsPrivate   bool      `gorm:"column:is_private;default:false"`
	CreatedByID int64     `gorm:"column:created_by_id"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (Room) TableName() string {
	return "chat_rooms"
}

// Message is the persistence model for the chat_messages table.
type Message struct {
	ID          int64     `gorm:"primaryKey"`
	RoomID      int64     `gorm:"column:room_id;not null;index"`
	SenderID    int64     `gorm:"column:sender_id;not null"`
	Message     string    `gorm:"not null"`
	MessageType string    `gorm:"column:message_type;default:text"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (Message) TableName() string {
	return "chat_messages"
}

// Member is the persistence model for the chat_room_members table.
type Member struct {
	ID       int64     `gorm:"primaryKey"`
	RoomID   int64     `gorm:"column:room_id;not null;index"`
	UserID   int64     `gorm:"column:user_id;not null;index"`
	Role     string    `gorm:"default:member"`
	JoinedAt time.Time `gorm:"column:joined_at"`
}

func (Member) TableName() string {
	return "chat_room_members"
}
