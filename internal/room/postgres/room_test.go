package postgres_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/megapark/hotel-backend/internal"
	"github.com/megapark/hotel-backend/internal/room"
	roomPostgres "github.com/megapark/hotel-backend/internal/room/postgres"
)

func TestRoomPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Room Postgres Suite")
}

var _ = Describe("Room Repository", func() {
	var (
		db   *gorm.DB
		repo room.Repository
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&room.Room{})
		Expect(err).NotTo(HaveOccurred())

		repo = roomPostgres.NewRoomRepository(db)
	})

	sample := func(id, name string) *room.Room {
		return &room.Room{
			ID:            id,
			RoomNumber:    "101",
			Name:          name,
			Type:          room.TypeDeluxe,
			PricePerNight: 8500,
			Images:        []string{},
			Amenities:     []string{"wifi"},
			Capacity:      2,
			Availability:  true,
		}
	}

	Describe("Create and GetByID", func() {
		It("should persist and read back a room including JSON columns", func() {
			Expect(repo.Create(sample("room-1", "Deluxe Garden"))).To(Succeed())

			got, err := repo.GetByID("room-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Name).To(Equal("Deluxe Garden"))
			Expect(got.Amenities).To(Equal([]string{"wifi"}))
		})

		It("should return the room not-found error for an unknown id", func() {
			_, err := repo.GetByID("missing")
			Expect(err).To(Equal(internal.ErrRoomNotFound))
		})
	})

	Describe("GetAll", func() {
		It("should list newest first", func() {
			Expect(repo.Create(sample("room-1", "First"))).To(Succeed())
			Expect(repo.Create(sample("room-2", "Second"))).To(Succeed())

			// force distinct created_at ordering
			Expect(db.Model(&room.Room{}).Where("id = ?", "room-2").
				Update("created_at", gorm.Expr("datetime('now', '+1 hour')")).Error).To(Succeed())

			rooms, err := repo.GetAll()
			Expect(err).NotTo(HaveOccurred())
			Expect(rooms).To(HaveLen(2))
			Expect(rooms[0].ID).To(Equal("room-2"))
		})
	})

	Describe("Delete", func() {
		It("should remove a room and report not found afterwards", func() {
			Expect(repo.Create(sample("room-1", "Doomed"))).To(Succeed())
			Expect(repo.Delete("room-1")).To(Succeed())

			_, err := repo.GetByID("room-1")
			Expect(err).To(Equal(internal.ErrRoomNotFound))
		})

		It("should report not found when deleting an unknown id", func() {
			Expect(repo.Delete("missing")).To(Equal(internal.ErrRoomNotFound))
		})
	})
})
