package cmd

import (
	"context"
	"log"
	"os"

	"github.com/spf13/cobra"

	"sales-voucher/internal/catalogfile"
	"sales-voucher/internal/config"
	"sales-voucher/internal/gateway"
)

var importFile string

var importItemsCmd = &cobra.Command{
	Use:   "import-items",
	Short: "Import item catalog entries from an xlsx workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		f, err := os.Open(importFile)
		if err != nil {
			return err
		}
		defer f.Close()

		items, err := catalogfile.Parse(f)
		if err != nil {
			return err
		}

		ctx := context.Background()
		client := gateway.New(cfg.GatewayURL)
		for _, it := range items {
			if err := client.CreateItem(ctx, it); err != nil {
				return err
			}
		}
		log.Printf("imported %d items", len(items))
		return nil
	},
}

func init() {
	importItemsCmd.Flags().StringVar(&importFile, "file", "", "xlsx workbook with item_code and item_name columns (required)")
	importItemsCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(importItemsCmd)
}
