package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/jaswdr/faker"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/delito/admin-api/internal/fixtures"
	"github.com/delito/admin-api/pkg/auth"
	"github.com/delito/admin-api/pkg/config"
	"github.com/delito/admin-api/pkg/db"
	"github.com/delito/admin-api/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "seed",
		Short:         "Development tooling for the Delito admin API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newDataCmd(), newTokenCmd())
	return root
}

func newDataCmd() *cobra.Command {
	var (
		counts fixtures.Counts
		seed   int64
		dryRun bool
	)
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Generate a consistent fake dataset and write it to Firestore",
		RunE: func(cmd *cobra.Command, args []string) error {
			factory := fixtures.NewFactory(faker.NewWithSeed(rand.NewSource(seed)), time.Now().UTC())
			ds := factory.Generate(counts)
			if dryRun {
				got := ds.Counts()
				fmt.Fprintf(cmd.OutOrStdout(), "generated %d vendors, %d delivery persons, %d customers, %d orders, %d tasks, %d complaints\n",
					got.Vendors, got.DeliveryPersons, got.Customers, got.Orders, len(ds.Tasks), got.Complaints)
				return nil
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logg := logger.New(logger.Options{ServiceName: "seed", Level: logger.ParseLevel(cfg.App.LogLevel)})
			if cfg.App.IsProd() {
				return fmt.Errorf("refusing to seed a %s environment", cfg.App.Env)
			}

			ctx := cmd.Context()
			client, err := db.New(ctx, cfg.Firebase, logg)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			if err := fixtures.Write(ctx, client.Firestore(), ds); err != nil {
				return fmt.Errorf("seeding firestore: %w", err)
			}
			logg.Info(logg.WithFields(ctx, map[string]any{
				"vendors":         len(ds.Vendors),
				"deliveryPersons": len(ds.DeliveryPersons),
				"customers":       len(ds.Customers),
				"orders":          len(ds.Orders),
				"complaints":      len(ds.Complaints),
			}), "seed complete")
			return nil
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&counts.Vendors, "vendors", 10, "number of vendors")
	flags.IntVar(&counts.DeliveryPersons, "delivery-persons", 8, "number of delivery persons")
	flags.IntVar(&counts.Customers, "customers", 40, "number of customers")
	flags.IntVar(&counts.Orders, "orders", 300, "number of orders")
	flags.IntVar(&counts.Complaints, "complaints", 20, "number of complaints")
	flags.Int64Var(&seed, "seed", 42, "random seed")
	flags.BoolVar(&dryRun, "dry-run", false, "generate without writing")
	return cmd
}

func newTokenCmd() *cobra.Command {
	var (
		adminID string
		role    string
		ttl     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an admin bearer token for local testing",
		RunE: func(cmd *cobra.Command, args []string) error {
			var jwtCfg config.JWTConfig
			if err := envconfig.Process(config.EnvPrefix, &jwtCfg); err != nil {
				return fmt.Errorf("parsing jwt config: %w", err)
			}
			token, err := auth.MintAdminToken(jwtCfg, time.Now(), adminID, role, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&adminID, "admin-id", "local-admin", "admin id placed in the token subject")
	flags.StringVar(&role, "role", auth.RoleAdmin, "admin or super_admin")
	flags.DurationVar(&ttl, "ttl", 12*time.Hour, "token lifetime")
	return cmd
}

