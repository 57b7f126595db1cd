package chat

import (
	"log/slog"
	"time"

	"github.com/radityaputra/intranet-portal/internal"
)

// Repository defines the data access methods for chat
type Repository interface {
	GetRoomsForUser(userID int64) ([]*Room, error)
	GetRoomByID(id int64) (*Room, error)
	CreateRoom(room *Room, creatorID int64) error
	GetMessages(roomID int64, limit, offset int) ([]*Message, error)
	CreateMessage(msg *Message) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) RoomsForUser(userID int64) ([]*Room, error) {
	rooms, err := s.repo.GetRoomsForUser(userID)
	if err != nil {
		s.logger.Error("failed to list chat rooms", "error", err, "user_id", userID)
		return nil, internal.NewInternalError("failed to fetch chat rooms", err)
	}
	return rooms, nil
}

func (s *Service) GetRoom(id int64) (*Room, error) {
	room, err := s.repo.GetRoomByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to fetch chat room", err)
	}
	if room == nil {
		return nil, internal.ErrRoomNotFound
	}
	return room, nil
}

// CreateRoom opens a room and enrolls the creator as its admin member.
func (s *Service) CreateRoom(creatorID int64, dto CreateRoomDTO) (*Room, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	roomType := dto.Type
	if roomType == "" {
		roomType = RoomTypeGroup
	}

	room := &Room{
		Name:        dto.Name,
		Description: dto.Description,
		Type:        roomType,
		IsPrivate:   dto.IsPrivate,
		CreatedByID: creatorID,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.CreateRoom(room, creatorID); err != nil {
		s.logger.Error("failed to create chat room", "error", err, "creator_id", creatorID)
		return nil, internal.NewInternalError("failed to create chat room", err)
	}

	s.logger.Info("chat room created", "room_id", room.ID, "creator_id", creatorID)
	return room, nil
}

func (s *Service) Messages(roomID int64, limit, offset int) ([]*Message, error) {
	room, err := s.repo.GetRoomByID(roomID)
	if err != nil {
		return nil, internal.NewInternalError("failed to fetch chat room", err)
	}
	if room == nil {
		return nil, internal.ErrRoomNotFound
	}

	messages, err := s.repo.GetMessages(roomID, limit, offset)
	if err != nil {
		s.logger.Error("failed to list messages", "error", err, "room_id", roomID)
		return nil, internal.NewInternalError("failed to fetch messages", err)
	}
	return messages, nil
}

func (s *Service) SendMessage(roomID, senderID int64, dto SendMessageDTO) (*Message, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	room, err := s.repo.GetRoomByID(roomID)
	if err != nil {
		return nil, internal.NewInternalError("failed to fetch chat room", err)
	}
	if room == nil {
		return nil, internal.ErrRoomNotFound
	}

	msgType := dto.MessageType
	if msgType == "" {
		msgType = "text"
	}

	msg := &Message{
		RoomID:      roomID,
		SenderID:    senderID,
		Message:     dto.Message,
		MessageType: msgType,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.CreateMessage(msg); err != nil {
		s.logger.Error("failed to send message", "error", err, "room_id", roomID, "sender_id", senderID)
		return nil, internal.NewInternalError("failed to send message", err)
	}

	return msg, nil
}
