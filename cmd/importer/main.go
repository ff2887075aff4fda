package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"groomer-directory/internal/cache"
	"groomer-directory/internal/config"
	"groomer-directory/internal/logger"
	"groomer-directory/internal/models"
	"groomer-directory/internal/repository"
	"groomer-directory/internal/service"
	"groomer-directory/internal/slug"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

func main() {
	file := flag.String("file", "", "Path to the businesses CSV file to import")
	seed := flag.Bool("seed-specializations", false, "Insert the default specializations when none exist")
	check := flag.Bool("check", false, "Report slugs claimed by more than one location, specialization or groomer, and slugs that do not resolve")
	configDir := flag.String("config", "configs", "Directory holding app.env")
	flag.Parse()

	if *file == "" && !*seed && !*check {
		fmt.Fprintln(os.Stderr, "Error: one of --file, --seed-specializations or --check is required")
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	logger.Setup(cfg.LogLevel, true)

	if err := repository.Migrate(cfg.DBSource); err != nil {
		log.Fatal().Err(err).Msg("cannot migrate db")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer pool.Close()

	repo := repository.NewRepository(pool)

	if *seed {
		n, err := repo.SeedSpecializations(ctx, service.DefaultSpecializations)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot seed specializations")
		}
		log.Info().Int64("added", n).Msg("specializations seeded")
	}

	if *file != "" {
		if err := importFile(ctx, repo, *file); err != nil {
			log.Fatal().Err(err).Str("file", *file).Msg("import failed")
		}
	}

	if *seed || *file != "" {
		invalidateCache(ctx, cfg, repo)
	}

	if *check {
		collisions, unreachable, err := checkSlugs(ctx, repo)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot check slugs")
		}
		for _, c := range collisions {
			claims := make([]string, 0, len(c.Claims))
			for _, cl := range c.Claims {
				claims = append(claims, fmt.Sprintf("%s #%d %q", cl.Kind, cl.ID, cl.Name))
			}
			log.Warn().Str("slug", c.Slug).Str("claims", strings.Join(claims, ", ")).Msg("slug collision")
		}
		for _, cl := range unreachable {
			log.Warn().Str("kind", string(cl.Kind)).Int("id", cl.ID).Str("name", cl.Name).
				Str("slug", slug.Normalize(cl.Name)).Msg("slug does not resolve back to its name")
		}
		if len(collisions) > 0 || len(unreachable) > 0 {
			os.Exit(2)
		}
		log.Info().Msg("no slug problems")
	}
}

func importFile(ctx context.Context, repo *repository.Repository, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	records, err := parseCSV(f)
	if err != nil {
		return err
	}
	log.Info().Int("records", len(records)).Msg("parsed csv")

	return repo.WithTx(ctx, func(tx *repository.Repository) error {
		return writeRecords(ctx, tx, records)
	})
}

// writeRecords stores parsed records. Locations, businesses and offerings
// land together or not at all.
func writeRecords(ctx context.Context, repo *repository.Repository, records []BusinessRecord) error {
	warned := map[string]bool{}
	for i := range records {
		name := records[i].Location
		if name == "" {
			continue
		}
		if !service.SlugRoundTrips(name) && !warned[name] {
			warned[name] = true
			log.Warn().Str("location", name).Str("slug", slug.Normalize(name)).Msg("location slug does not resolve back to its name")
		}
		id, err := repo.EnsureLocation(ctx, name)
		if err != nil {
			return err
		}
		records[i].Business.LocationID = &id
	}

	taken, reserved, err := slugSets(ctx, repo)
	if err != nil {
		return err
	}
	assignSlugs(records, taken, reserved)

	businesses := make([]models.Business, len(records))
	slugs := make([]string, len(records))
	for i, rec := range records {
		businesses[i] = rec.Business
		slugs[i] = *rec.Business.Slug
	}

	n, err := repo.CopyBusinesses(ctx, businesses)
	if err != nil {
		return err
	}
	log.Info().Int64("inserted", n).Msg("businesses copied")

	return linkSpecializations(ctx, repo, records, slugs)
}

func slugSets(ctx context.Context, repo *repository.Repository) (taken, reserved map[string]struct{}, err error) {
	existing, err := repo.BusinessSlugs(ctx)
	if err != nil {
		return nil, nil, err
	}
	taken = make(map[string]struct{}, len(existing))
	for _, s := range existing {
		taken[s] = struct{}{}
	}

	locations, err := repo.ListLocations(ctx)
	if err != nil {
		return nil, nil, err
	}
	specs, err := repo.ListSpecializations(ctx)
	if err != nil {
		return nil, nil, err
	}
	reserved = make(map[string]struct{}, len(locations)+len(specs))
	for _, l := range locations {
		reserved[slug.Normalize(l.Name)] = struct{}{}
	}
	for _, s := range specs {
		reserved[slug.Normalize(s.Name)] = struct{}{}
	}

	return taken, reserved, nil
}

func linkSpecializations(ctx context.Context, repo *repository.Repository, records []BusinessRecord, slugs []string) error {
	specs, err := repo.ListSpecializations(ctx)
	if err != nil {
		return err
	}
	specIDs := make(map[string]int, len(specs))
	for _, s := range specs {
		specIDs[strings.ToLower(s.Name)] = s.ID
	}

	businessIDs, err := repo.BusinessIDsBySlugs(ctx, slugs)
	if err != nil {
		return err
	}

	var offerings []repository.Offering
	for i, rec := range records {
		for _, name := range rec.Specializations {
			specID, ok := specIDs[strings.ToLower(name)]
			if !ok {
				log.Warn().Str("business", rec.Business.Name).Str("specialization", name).Msg("unknown specialization skipped")
				continue
			}
			offerings = append(offerings, repository.Offering{BusinessID: businessIDs[slugs[i]], SpecializationID: specID})
		}
	}

	if err := repo.LinkOfferings(ctx, offerings); err != nil {
		return err
	}
	log.Info().Int("offerings", len(offerings)).Msg("specializations linked")
	return nil
}

func checkSlugs(ctx context.Context, repo *repository.Repository) ([]service.Collision, []service.Claim, error) {
	locations, err := repo.ListLocations(ctx)
	if err != nil {
		return nil, nil, err
	}
	specs, err := repo.ListSpecializations(ctx)
	if err != nil {
		return nil, nil, err
	}
	businesses, err := repo.ListBusinesses(ctx, models.BusinessFilter{})
	if err != nil {
		return nil, nil, err
	}
	return service.DetectCollisions(locations, specs, businesses), service.Unreachable(locations, specs), nil
}

// invalidateCache drops the cached vocabularies so the running server picks
// up new locations and specializations before the TTL expires.
func invalidateCache(ctx context.Context, cfg config.Config, repo *repository.Repository) {
	if cfg.RedisAddr == "" {
		return
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer rdb.Close()

	if err := cache.NewVocabulary(repo, rdb, cfg.CacheTTL).Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("cannot invalidate vocabulary cache")
		return
	}
	log.Info().Msg("vocabulary cache invalidated")
}
