package bootstrap

import (
	"booking-app/config"
	"booking-app/database"
	artistsapi "booking-app/internal/api/artists"
	homeapi "booking-app/internal/api/home"
	showsapi "booking-app/internal/api/shows"
	venuesapi "booking-app/internal/api/venues"
	routes "booking-app/internal/app/http"
	"booking-app/internal/logger"
	"booking-app/internal/repo"

	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BuildContainer registers every service lazily; nothing connects until it
// is first invoked.
func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		log := do.MustInvoke[*zap.Logger](i)
		return database.Open(cfg, log)
	})

	// repos
	do.Provide(inj, func(i *do.Injector) (repo.VenueRepo, error) {
		return repo.NewVenueRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ArtistRepo, error) {
		return repo.NewArtistRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ShowRepo, error) {
		return repo.NewShowRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// handlers
	do.Provide(inj, func(i *do.Injector) (routes.Handlers, error) {
		log := do.MustInvoke[*zap.Logger](i)
		venues := do.MustInvoke[repo.VenueRepo](i)
		artists := do.MustInvoke[repo.ArtistRepo](i)
		shows := do.MustInvoke[repo.ShowRepo](i)
		return routes.Handlers{
			Home:    homeapi.NewHandler(venues, artists, shows, log),
			Venues:  venuesapi.NewHandler(venues, shows, log),
			Artists: artistsapi.NewHandler(artists, shows, log),
			Shows:   showsapi.NewHandler(shows, log),
		}, nil
	})

	return inj
}
