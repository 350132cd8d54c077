package cmd

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"sales-voucher/internal/config"
	"sales-voucher/internal/routes"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the voucher persistence API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		db := initDB(cfg.MySQLDSN())
		engine := routes.Register(db)

		srv := &http.Server{
			Addr:         cfg.Addr,
			Handler:      engine,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
		}

		go func() {
			log.Printf("listening on %s", cfg.Addr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatalf("server failed: %v", err)
			}
		}()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
		<-stop

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("graceful shutdown failed: %v", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
