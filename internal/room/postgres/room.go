package postgres

import (
	"github.com/megapark/hotel-backend/internal"
	"github.com/megapark/hotel-backend/internal/room"
	"gorm.io/gorm"
)

// RoomRepository implements room.Repository using GORM.
type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) room.Repository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) GetAll() ([]*room.Room, error) {
	var rooms []*room.Room
	err := r.db.Order("created_at DESC").Find(&rooms).Error
	return rooms, err
}

func (r *RoomRepository) GetByID(id string) (*room.Room, error) {
	var rm room.Room
	err := r.db.Where("id = ?", id).First(&rm).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, internal.ErrRoomNotFound
		}
		return nil, err
	}
	return &rm, nil
}

func (r *RoomRepository) Create(rm *room.Room) error {
	return r.db.Create(rm).Error
}

func (r *RoomRepository) Update(rm *room.Room) error {
	return r.db.Save(rm).Error
}

func (r *RoomRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&room.Room{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return internal.ErrRoomNotFound
	}
	return nil
}
