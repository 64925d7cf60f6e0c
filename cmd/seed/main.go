package main

import (
	"context"
	"os"
	"time"

	"cinebox/internal/auth"
	"cinebox/internal/halls"
	"cinebox/internal/movies"
	"cinebox/internal/pricing"
	"cinebox/internal/seating"
	"cinebox/internal/shared/config"
	"cinebox/internal/shared/database"
	"cinebox/internal/shared/database/migrations"
	"cinebox/internal/shows"
	"cinebox/internal/staff"
	"cinebox/pkg/ident"
	"cinebox/pkg/logger"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// Seeds a development database with staff accounts, two halls, price
// listings and a sample movie with one scheduled show.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New()

	conns, err := database.Connect(cfg)
	if err != nil {
		log.Error("connect", "error", err)
		os.Exit(1)
	}
	defer conns.Close()

	if err := migrations.Migrate(conns.DB); err != nil {
		log.Error("migrate", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if err := seed(ctx, conns.DB, log); err != nil {
		log.Error("seed", "error", err)
		os.Exit(1)
	}
	log.Info("seed complete")
}

func seed(ctx context.Context, db *gorm.DB, log *logger.Logger) error {
	if err := seedStaff(ctx, db); err != nil {
		return err
	}
	if err := seedHalls(ctx, db); err != nil {
		return err
	}
	if err := seedPrices(ctx, db); err != nil {
		return err
	}
	return seedSampleShow(ctx, db, log)
}

func seedStaff(ctx context.Context, db *gorm.DB) error {
	accounts := []struct {
		username, password, name, role string
	}{
		{"cashier1", "cashier123", "Counter One", "CASHIER"},
		{"manager1", "manager123", "Floor Manager", "MANAGER"},
	}

	repo := staff.NewRepository(db)
	for _, account := range accounts {
		if _, err := repo.FindByUsername(ctx, account.username); err == nil {
			continue
		}
		hash, err := auth.HashPassword(account.password)
		if err != nil {
			return err
		}
		if err := repo.Create(ctx, &staff.Staff{
			Username:     account.username,
			PasswordHash: hash,
			Name:         account.name,
			Role:         account.role,
		}); err != nil {
			return err
		}
	}
	return nil
}

func seedHalls(ctx context.Context, db *gorm.DB) error {
	repo := halls.NewRepository(db)
	fixtures := []halls.Hall{
		{
			HallID: 1,
			Name:   "Audi 1",
			Sections: []halls.HallSection{
				{HallID: 1, Class: seating.ClassGold, Capacity: 20},
				{HallID: 1, Class: seating.ClassStandard, Capacity: 80},
			},
		},
		{
			HallID: 2,
			Name:   "Audi 2",
			Sections: []halls.HallSection{
				{HallID: 2, Class: seating.ClassGold, Capacity: 30},
				{HallID: 2, Class: seating.ClassStandard, Capacity: 120},
			},
		},
	}
	for i := range fixtures {
		if _, err := repo.FindByID(ctx, fixtures[i].HallID); err == nil {
			continue
		}
		if err := repo.Create(ctx, &fixtures[i]); err != nil {
			return err
		}
	}
	return nil
}

func seedPrices(ctx context.Context, db *gorm.DB) error {
	listings := []pricing.PriceListing{
		{PriceID: 1, Type: "2D", Day: pricing.DayWeekday, Price: 150},
		{PriceID: 2, Type: "2D", Day: pricing.DayWeekend, Price: 200},
		{PriceID: 3, Type: "3D", Day: pricing.DayWeekday, Price: 250},
		{PriceID: 4, Type: "3D", Day: pricing.DayWeekend, Price: 300},
	}
	repo := pricing.NewRepository(db)
	for i := range listings {
		if _, err := repo.FindByID(ctx, listings[i].PriceID); err == nil {
			continue
		}
		if err := repo.Create(ctx, &listings[i]); err != nil {
			return err
		}
	}
	return nil
}

func seedSampleShow(ctx context.Context, db *gorm.DB, log *logger.Logger) error {
	movieRepo := movies.NewRepository(db)

	today := time.Now().Format("2006-01-02")
	existing, err := movieRepo.FindActiveOn(ctx, today)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	movieID, err := ident.NewMovieID()
	if err != nil {
		return err
	}
	movie := &movies.Movie{
		MovieID:   movieID,
		Name:      "Sample Feature",
		Length:    150,
		Language:  "English",
		ShowStart: today,
		ShowEnd:   time.Now().AddDate(0, 1, 0).Format("2006-01-02"),
		Formats: []movies.MovieFormat{
			{MovieID: movieID, Name: "2D"},
			{MovieID: movieID, Name: "3D"},
		},
	}
	if err := movieRepo.Create(ctx, movie); err != nil {
		return err
	}

	showID, err := ident.NewShowID()
	if err != nil {
		return err
	}
	showRepo := shows.NewRepository(db)
	if err := showRepo.Create(ctx, &shows.Show{
		ShowID:  showID,
		MovieID: movieID,
		HallID:  1,
		Type:    "2D",
		Date:    today,
		Time:    1800,
	}); err != nil {
		return err
	}

	log.Info("seeded sample movie and show", "movie_id", movieID, "show_id", showID)
	return nil
}
