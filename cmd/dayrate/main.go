package main

import (
	"context"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ougirez/dayrate/internal/api"
	"github.com/ougirez/dayrate/internal/domain"
	"github.com/ougirez/dayrate/internal/pkg/constants"
	"github.com/ougirez/dayrate/internal/pkg/holiday"
	"github.com/ougirez/dayrate/internal/pkg/logger"
	"github.com/ougirez/dayrate/internal/pkg/store"
	"github.com/spf13/viper"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	initConfig()
	logger.Init(viper.GetString(constants.ViperLogLevel))

	st, err := newStore(ctx)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	if err = seedProperty(ctx, st); err != nil {
		logger.Fatal(ctx, err)
	}

	classifier := holiday.NewClassifier(holiday.NewClient(viper.GetString(constants.ViperHolidayURL)))
	// warm the current and next year so synchronous classification is
	// ready before the first forecast
	now := time.Now()
	classifier.Prefetch(ctx, now.Year(), now.Year()+1)

	svc, err := api.NewAPIService(st, classifier)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	go svc.Serve(viper.GetString(constants.ViperListenAddr))

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = svc.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(shutdownCtx, "shutdown: %s", err.Error())
	}
}

func initConfig() {
	viper.SetDefault(constants.ViperLogLevel, "info")
	viper.SetDefault(constants.ViperListenAddr, ":8080")
	viper.SetDefault(constants.ViperSnapshotPath, "dayrate.json")
	viper.SetDefault(constants.ViperHolidayURL, "https://holidays-jp.github.io/api/v1/%d/date.json")
	viper.SetDefault(constants.ViperCORSOrigin, "http://localhost:3000")
	viper.SetDefault(constants.ViperLockoutLimit, 5)
	viper.SetDefault(constants.ViperLockoutCooldown, "5m")
	viper.SetDefault(constants.ViperPropertyID, "main")
	viper.SetDefault(constants.ViperPropertyName, "Main Property")
	viper.SetDefault(constants.ViperPropertyRooms, 50)

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	_ = viper.ReadInConfig()

	viper.SetEnvPrefix("dayrate")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// newStore picks postgres when a DSN is configured, otherwise the snapshot
// file store — a single-property install needs no database.
func newStore(ctx context.Context) (store.Store, error) {
	dsn := viper.GetString(constants.ViperDatabaseDSN)
	if dsn == "" {
		return store.NewMemoryStore(viper.GetString(constants.ViperSnapshotPath))
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err = pool.Ping(ctx); err != nil {
		return nil, err
	}

	return store.NewStore(pool), nil
}

func seedProperty(ctx context.Context, st store.Store) error {
	properties, err := st.ListProperties(ctx)
	if err != nil {
		return err
	}
	if len(properties) > 0 {
		return nil
	}

	return st.UpsertProperty(ctx, &domain.Property{
		ID:         viper.GetString(constants.ViperPropertyID),
		Name:       viper.GetString(constants.ViperPropertyName),
		TotalRooms: viper.GetInt64(constants.ViperPropertyRooms),
	})
}
