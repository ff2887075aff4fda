package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "groomer-directory/docs"
	"groomer-directory/internal/cache"
	"groomer-directory/internal/config"
	"groomer-directory/internal/handler"
	"groomer-directory/internal/logger"
	"groomer-directory/internal/middleware"
	"groomer-directory/internal/notify"
	"groomer-directory/internal/repository"
	"groomer-directory/internal/service"
	"groomer-directory/web"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

//	@title			Dog Groomer Directory API
//	@version		1.0
//	@description	Listings, slug resolution and contact form of the local dog groomer directory.
//	@BasePath		/

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	logger.Setup(config.LogLevel, config.LogPretty)
	gin.SetMode(config.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := repository.Migrate(config.DBSource); err != nil {
		log.Fatal().Err(err).Msg("cannot migrate db")
	}

	// Database connection
	conn, err := pgxpool.New(ctx, config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	// Initialize layers
	repo := repository.NewRepository(conn)

	var vocab service.DirectoryRepository = repo
	if config.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     config.RedisAddr,
			Password: config.RedisPassword,
			DB:       config.RedisDB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Str("addr", config.RedisAddr).Msg("redis unreachable, reads fall back to postgres")
		}
		vocab = cache.NewVocabulary(repo, rdb, config.CacheTTL)
	}

	var notifier service.Notifier
	if config.EmailEnabled() {
		mailer, err := notify.NewMailer(notify.SMTPConfig{
			Host:     config.SMTPHost,
			Port:     config.SMTPPort,
			Username: config.SMTPUsername,
			Password: config.SMTPPassword,
			From:     config.EmailFrom,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("cannot configure mailer")
		}
		notifier = mailer
	}

	seo := service.NewSEO(config.SiteURL, config.SiteName, config.CityName)
	listingService := service.NewListingService(repo)
	featuredService := service.NewFeaturedService(repo)
	directoryService := service.NewDirectoryService(vocab, listingService, featuredService, seo, service.ImageResolver{StorageBaseURL: config.StorageBaseURL})
	resolver := service.NewResolver(repo, service.WithStrictAmbiguity(config.StrictSlugAmbiguity))
	sitemapService := service.NewSitemapService(vocab, repo, seo)
	contactService := service.NewContactService(repo, notifier, config.NotificationEmail, config.SiteName)

	templates, err := web.Templates()
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load templates")
	}

	r := handler.NewRouter(handler.Handlers{
		Pages:   handler.NewPageHandler(directoryService, resolver),
		API:     handler.NewAPIHandler(directoryService, resolver),
		Contact: handler.NewContactHandler(contactService),
		Sitemap: handler.NewSitemapHandler(sitemapService),
	}, templates, web.Static(),
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORSMiddleware(),
	)

	srv := &http.Server{
		Addr:              config.ServerAddress,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", config.ServerAddress).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
