package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"crocsdkr/db"
	"crocsdkr/repository"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "crocsdkrctl",
		Short: "Operational tooling for the Crocsdkr storefront",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Same .env convention as the server
			if os.Getenv("ENV") != "production" {
				_ = godotenv.Overload(".env")
			}
		},
	}

	rootCmd.AddCommand(newGenerateVAPIDCmd())
	rootCmd.AddCommand(newSeedCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// newGenerateVAPIDCmd generates a fresh VAPID key pair for push notifications
func newGenerateVAPIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate-vapid",
		Short: "Generate a VAPID key pair for web push notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			privateKey, publicKey, err := webpush.GenerateVAPIDKeys()
			if err != nil {
				return fmt.Errorf("failed to generate VAPID keys: %w", err)
			}
			fmt.Println("Add these to your .env file:")
			fmt.Println()
			fmt.Printf("VAPID_PUBLIC_KEY=%s\n", publicKey)
			fmt.Printf("VAPID_PRIVATE_KEY=%s\n", privateKey)
			return nil
		},
	}
}

// newSeedCmd pushes the local JSON documents into the hosted Postgres store
func newSeedCmd() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the hosted Postgres store from the local JSON files",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !db.Configured() {
				return fmt.Errorf("database connection variables not set. Set DATABASE_URL or DB_HOST, DB_USER, DB_NAME")
			}
			if err := db.InitDB(); err != nil {
				return err
			}
			defer db.CloseDB()

			ctx := context.Background()
			documents := []struct {
				file  string
				table string
				key   string
			}{
				{"products-data.json", repository.ProductsTable, repository.ProductsKey},
				{"site-settings.json", repository.SettingsTable, repository.SettingsKey},
			}

			for _, doc := range documents {
				source := repository.NewFileStore(filepath.Join(dataDir, doc.file))
				raw, err := source.Read(ctx)
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", doc.file, err)
				}
				if raw == nil {
					log.Printf("⚠ %s not found, skipping", doc.file)
					continue
				}
				target := repository.NewPostgresStore(db.DB, doc.table, doc.key)
				if err := target.Write(ctx, raw); err != nil {
					return fmt.Errorf("failed to seed %s: %w", doc.table, err)
				}
				log.Printf("✓ Seeded %s from %s", doc.table, doc.file)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", "data", "directory holding the local JSON documents")
	return cmd
}
