package postgres

import (
	"time"

	"gorm.io/gorm"

	"github.com/radityaputra/intranet-portal/internal/chat"
	chatDatamodel "github.com/radityaputra/intranet-portal/internal/core/datamodel/chat"
)

// ChatRepository implements chat.Repository using GORM
type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) chat.Repository {
	return &ChatRepository{db: db}
}

func (r *ChatRepository) GetRoomsForUser(userID int64) ([]*chat.Room, error) {
	var rows []*chatDatamodel.Room
	err := r.db.
		Joins("JOIN chat_room_members ON chat_room_members.room_id = chat_rooms.id").
		Where("chat_room_members.user_id = ?", userID).
		Order("chat_rooms.created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return chat.RoomsFromDataModel(rows), nil
}

func (r *ChatRepository) GetRoomByID(id int64) (*chat.Room, error) {
	var room chatDatamodel.Room
	err := r.db.Where("id = ?", id).First(&room).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return chat.RoomFromDataModel(&room), nil
}

// CreateRoom inserts the room and its creator as the first member in
// one transaction.
func (r *ChatRepository) CreateRoom(room *chat.Room, creatorID int64) error {
	row := chat.RoomToDataModel(room)
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(row).Error; err != nil {
			return err
		}
		member := &chatDatamodel.Member{
			RoomID:   row.ID,
			UserID:   creatorID,
			Role:     chat.MemberRoleAdmin,
			JoinedAt: time.Now(),
		}
		return tx.Create(member).Error
	})
	if err != nil {
		return err
	}
	room.ID = row.ID
	room.CreatedAt = row.CreatedAt
	return nil
}

func (r *ChatRepository) GetMessages(roomID int64, limit, offset int) ([]*chat.Message, error) {
	var rows []*chatDatamodel.Message
	err := r.db.Where("room_id = ?", roomID).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return chat.MessagesFromDataModel(rows), nil
}

func (r *ChatRepository) CreateMessage(msg *chat.Message) error {
	row := &chatDatamodel.Message{
		RoomID:      msg.RoomID,
		SenderID:    msg.SenderID,
		Message:     msg.Message,
		MessageType: msg.MessageType,
		CreatedAt:   msg.CreatedAt,
	}
	if err := r.db.Create(row).Error; err != nil {
		return err
	}
	msg.ID = row.ID
	msg.CreatedAt = row.CreatedAt
	return nil
}
