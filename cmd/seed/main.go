// seed creates (or resets) the demo accounts. It is the only way to obtain
// an admin: registration always yields role "user".
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/pribylovaa/credit-dispute/internal/config"
	"github.com/pribylovaa/credit-dispute/internal/models"
	"github.com/pribylovaa/credit-dispute/internal/service"
	"github.com/pribylovaa/credit-dispute/internal/storage/postgres"
)

type account struct {
	in   service.RegisterInput
	role models.Role
}

var accounts = []account{
	{
		in: service.RegisterInput{
			Email:     "admin@example.com",
			Password:  "admin123",
			FirstName: "Admin",
			LastName:  "User",
		},
		role: models.RoleAdmin,
	},
	{
		in: service.RegisterInput{
			Email:     "user@example.com",
			Password:  "user123",
			FirstName: "John",
			LastName:  "Doe",
		},
		role: models.RoleUser,
	},
}

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.MustLoad(configPath)

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	st, err := postgres.New(ctx, cfg.DB.DatabaseURL)
	if err != nil {
		log.Error("storage_init_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer st.Close()

	if err := st.Migrate(ctx); err != nil {
		log.Error("migrate_failed", slog.String("err", err.Error()))
		st.Close()
		os.Exit(1)
	}

	svc := service.New(st, cfg.Auth)

	failed := false
	for _, a := range accounts {
		u, err := svc.SeedUser(ctx, a.in, a.role)
		if err != nil {
			log.Error("seed_user_failed",
				slog.String("email", a.in.Email),
				slog.String("err", err.Error()),
			)
			failed = true
			continue
		}

		log.Info("seed_user_ok",
			slog.String("email", u.Email),
			slog.String("role", string(u.Role)),
		)

		if u.Role != models.RoleUser {
			continue
		}

		// Regular users get their credit report up front.
		self := models.Identity{UserID: u.ID, Email: u.Email, Role: u.Role}
		p, err := svc.CreditProfile(ctx, self, u.ID)
		if err != nil {
			log.Error("seed_credit_profile_failed",
				slog.String("email", u.Email),
				slog.String("err", err.Error()),
			)
			failed = true
			continue
		}

		log.Info("seed_credit_profile_ok",
			slog.String("email", u.Email),
			slog.Int("credit_score", p.CreditScore),
		)
	}

	if failed {
		st.Close()
		os.Exit(1)
	}
}
