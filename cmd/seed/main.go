// seed crea facturas aleatorias para un usuario ya registrado.
//
// Uso: go run ./cmd/seed -email alice@example.com -count 50 -start 1000
package main

import (
	"context"
	"flag"
	"math/rand/v2"
	"os"
	"time"

	"github.com/jhoicas/Invoicing-api/internal/application/billing"
	"github.com/jhoicas/Invoicing-api/internal/application/seed"
	"github.com/jhoicas/Invoicing-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Invoicing-api/pkg/config"
	"github.com/jhoicas/Invoicing-api/pkg/logger"
)

func main() {
	email := flag.String("email", "", "email del usuario dueño de las facturas")
	count := flag.Int("count", 50, "cantidad de facturas")
	start := flag.Int("start", 1000, "primer número (INV-<n>)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "seed"})

	if *email == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	invoiceUC := billing.NewInvoiceUseCase(postgres.NewTxRunner(pool), postgres.NewInvoiceRepository(pool))
	seeder := seed.NewSeeder(postgres.NewUserRepository(pool), invoiceUC,
		rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)))

	res, err := seeder.Run(ctx, *email, *count, *start)
	if err != nil {
		log.Fatal().Err(err).Str("email", *email).Msg("seed")
	}

	ev := log.Info().
		Str("email", *email).
		Int("created", res.Created).
		Int("skipped", res.Skipped).
		Str("total", res.Total.StringFixed(2))
	for status, n := range res.ByStatus {
		ev = ev.Int(status, n)
	}
	ev.Msg("facturas creadas")
}
