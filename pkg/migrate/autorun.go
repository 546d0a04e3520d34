package migrate

import (
	"context"
	"fmt"

	"github.com/adiwijaya/warungpos-backend/pkg/config"
	"github.com/adiwijaya/warungpos-backend/pkg/db"
	"github.com/adiwijaya/warungpos-backend/pkg/db/models"
	"github.com/adiwijaya/warungpos-backend/pkg/logger"
)

// MaybeRun brings the schema up to date on boot when the auto-migrate flag is
// set. The embedded goose scripts target the default sqlite store; a postgres
// deployment is migrated through the ORM schema instead.
func MaybeRun(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.DB.AutoMigrate {
		return nil
	}

	ctx = logg.WithFields(ctx, map[string]any{"driver": cfg.DB.Driver})

	if cfg.DB.Driver == config.DBDriverPostgres {
		logg.Info(ctx, "running schema auto-migration")
		return client.DB().WithContext(ctx).AutoMigrate(
			&models.Category{},
			&models.MenuItem{},
			&models.User{},
			&models.Transaction{},
			&models.TransactionLine{},
		)
	}

	sqlDB, err := client.DB().DB()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	logg.Info(ctx, "running goose migrations")
	if err := Up(ctx, sqlDB, cfg.DB.Driver); err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}
	logg.Info(ctx, "goose migrations completed")
	return nil
}
