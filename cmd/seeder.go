package cmd

import (
	"log"
	"log/slog"

	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/megapark/hotel-backend/internal"
	"github.com/megapark/hotel-backend/internal/auth"
	"github.com/megapark/hotel-backend/internal/hall"
	"github.com/megapark/hotel-backend/internal/menu"
	"github.com/megapark/hotel-backend/internal/room"
	"github.com/megapark/hotel-backend/internal/user"
	"github.com/megapark/hotel-backend/pkg/logger"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the store with sample data",
	Long:  `Seed the store with an admin account and sample rooms, halls and menu items for development.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		logger.Init(cfg.Observability.Logging.Level, cfg.Observability.Logging.Format)
		lg := logger.LoggerWrapper()

		repos, err := seedRepositories(cfg)
		if err != nil {
			log.Fatalf("failed to init storage: %v", err)
		}

		seedUsers(repos, cfg.Security.BCryptCost, lg)
		seedRooms(repos, lg)
		seedHalls(repos, lg)
		seedMenu(repos, lg)

		lg.Info("seeding complete")
	},
}

func seedRepositories(cfg *internal.Config) (*repositories, error) {
	if !cfg.Database.UsesPostgres() {
		return fileRepositories(cfg.Storage.DataDir, cfg.Security.BCryptCost)
	}

	sqlDB, err := initDB(cfg.Database)
	if err != nil {
		return nil, err
	}
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB.DB}), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return postgresRepositories(gormDB), nil
}

func seedUsers(repos *repositories, bcryptCost int, lg *slog.Logger) {
	seed := []struct {
		email, password, name, role string
	}{
		{"admin@megapark.com", "admin123", "Admin", auth.RoleAdmin},
		{"staff@megapark.com", "staff123", "Front Desk", auth.RoleStaff},
	}

	svc := user.NewService(repos.users, bcryptCost, logger.LoggerWrapper())
	for _, u := range seed {
		if _, err := repos.users.GetByEmail(u.email); err == nil {
			lg.Info("user already exists, skipping", "email", u.email)
			continue
		}
		if _, err := svc.Create(&user.CreateUserDTO{
			Email:    u.email,
			Password: u.password,
			Name:     u.name,
			Role:     u.role,
		}); err != nil {
			log.Fatalf("failed to seed user %s: %v", u.email, err)
		}
		lg.Info("seeded user", "email", u.email, "role", u.role)
	}
}

func seedRooms(repos *repositories, lg *slog.Logger) {
	existing, err := repos.rooms.GetAll()
	if err != nil {
		log.Fatalf("failed to list rooms: %v", err)
	}
	if len(existing) > 0 && !forceSeed {
		lg.Info("rooms already present, skipping")
		return
	}

	price := func(v float64) *float64 { return &v }
	capacity := func(v int) *int { return &v }

	svc := room.NewService(repos.rooms, logger.LoggerWrapper())
	samples := []room.CreateRoomDTO{
		{Name: "Deluxe Garden Room", Type: room.TypeDeluxe, Description: "Garden view, king bed", PricePerNight: price(8500), Capacity: capacity(2), RoomNumber: "101", Amenities: []string{"wifi", "breakfast", "air conditioning"}},
		{Name: "Executive Suite", Type: room.TypeExecutive, Description: "Separate lounge and work area", PricePerNight: price(15000), Capacity: capacity(3), RoomNumber: "201", Amenities: []string{"wifi", "breakfast", "minibar"}},
		{Name: "Standard Twin", Type: room.TypeStandard, Description: "Two single beds", PricePerNight: price(5500), Capacity: capacity(2), RoomNumber: "102"},
	}
	for _, dto := range samples {
		d := dto
		if _, err := svc.Create(&d); err != nil {
			log.Fatalf("failed to seed room %s: %v", dto.Name, err)
		}
	}
	lg.Info("seeded rooms", "count", len(samples))
}

func seedHalls(repos *repositories, lg *slog.Logger) {
	existing, err := repos.halls.GetAll()
	if err != nil {
		log.Fatalf("failed to list halls: %v", err)
	}
	if len(existing) > 0 && !forceSeed {
		lg.Info("halls already present, skipping")
		return
	}

	price := func(v float64) *float64 { return &v }
	capacity := func(v int) *int { return &v }

	svc := hall.NewService(repos.halls, nil, "", logger.LoggerWrapper())
	samples := []hall.CreateHallDTO{
		{Name: "Acacia Ballroom", Description: "Our largest event space", Capacity: capacity(400), PricePerDay: price(120000), Amenities: []string{"stage", "sound system", "catering"}},
		{Name: "Baobab Conference Room", Description: "Boardroom setup for meetings", Capacity: capacity(40), PricePerDay: price(25000), Amenities: []string{"projector", "whiteboard", "wifi"}},
	}
	for _, dto := range samples {
		if _, err := svc.CreateHall(dto); err != nil {
			log.Fatalf("failed to seed hall %s: %v", dto.Name, err)
		}
	}
	lg.Info("seeded halls", "count", len(samples))
}

func seedMenu(repos *repositories, lg *slog.Logger) {
	existing, err := repos.menu.GetAll()
	if err != nil {
		log.Fatalf("failed to list menu items: %v", err)
	}
	if len(existing) > 0 && !forceSeed {
		lg.Info("menu already present, skipping")
		return
	}

	price := func(v float64) *float64 { return &v }
	prep := func(v int) *int { return &v }

	svc := menu.NewService(repos.menu, logger.LoggerWrapper())
	samples := []menu.CreateItemDTO{
		{Name: "Samosa Platter", Category: menu.CategoryAppetizers, Price: price(450), PreparationTime: prep(10)},
		{Name: "Nyama Choma", Category: menu.CategoryMains, Description: "Char-grilled goat with kachumbari", Price: price(1200), PreparationTime: prep(35)},
		{Name: "Ugali", Category: menu.CategorySides, Price: price(150), PreparationTime: prep(10)},
		{Name: "Mango Cheesecake", Category: menu.CategoryDesserts, Price: price(550)},
		{Name: "Fresh Passion Juice", Category: menu.CategoryDrinks, Price: price(300), PreparationTime: prep(5)},
	}
	for _, dto := range samples {
		if _, err := svc.CreateItem(dto); err != nil {
			log.Fatalf("failed to seed menu item %s: %v", dto.Name, err)
		}
	}
	lg.Info("seeded menu items", "count", len(samples))
}
