package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"sales-voucher/internal/config"
	"sales-voucher/internal/entry"
	"sales-voucher/internal/gateway"
	"sales-voucher/internal/printer"
)

// voucherFile is the YAML input for the submit command. Derived fields
// (item_name, ac_amt) are intentionally absent; the engine computes them.
type voucherFile struct {
	Header struct {
		VrNo   int    `yaml:"vr_no"`
		VrDate string `yaml:"vr_date"`
		AcName string `yaml:"ac_name"`
		Status string `yaml:"status"`
	} `yaml:"header"`
	Details []struct {
		ItemCode    string  `yaml:"item_code"`
		Description string  `yaml:"description"`
		Qty         float64 `yaml:"qty"`
		Rate        float64 `yaml:"rate"`
	} `yaml:"details"`
}

var (
	submitFile  string
	submitPrint string
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a voucher described in a YAML file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		raw, err := os.ReadFile(submitFile)
		if err != nil {
			return err
		}
		var in voucherFile
		if err := yaml.Unmarshal(raw, &in); err != nil {
			return fmt.Errorf("parse %s: %w", submitFile, err)
		}

		ctx := context.Background()
		client := gateway.New(cfg.GatewayURL)

		catalog := entry.NewCatalog()
		if err := catalog.Load(ctx, client); err != nil {
			// Degraded mode: item names stay blank, manual entry works.
			log.Printf("warning: %v", err)
		}

		session := entry.NewSession(catalog)
		if err := fillForm(ctx, session.Form, client, in); err != nil {
			return err
		}

		payload, err := session.Submit(ctx, client)
		if err != nil {
			return err
		}
		log.Printf("saved voucher %d (%d detail rows, total %.2f)",
			payload.Header.VrNo, len(payload.Details), payload.Header.AcAmt)

		if submitPrint != "" {
			out, err := os.Create(submitPrint)
			if err != nil {
				return err
			}
			defer out.Close()
			if err := printer.Render(out, payload); err != nil {
				return err
			}
			log.Printf("print view written to %s", submitPrint)
		}
		return nil
	},
}

// fillForm drives the entry form field by field, the same path a UI event
// stream takes. An omitted voucher number is assigned by the server.
func fillForm(ctx context.Context, form *entry.Form, client *gateway.Client, in voucherFile) error {
	vrNo := in.Header.VrNo
	if vrNo == 0 {
		next, err := client.NextVoucherNumber(ctx)
		if err != nil {
			return err
		}
		vrNo = next
	}
	if err := form.UpdateHeaderField(entry.FieldVrNo, strconv.Itoa(vrNo)); err != nil {
		return err
	}
	if in.Header.VrDate != "" {
		if err := form.UpdateHeaderField(entry.FieldVrDate, in.Header.VrDate); err != nil {
			return err
		}
	}
	if err := form.UpdateHeaderField(entry.FieldAcName, in.Header.AcName); err != nil {
		return err
	}
	if in.Header.Status != "" {
		if err := form.UpdateHeaderField(entry.FieldStatus, in.Header.Status); err != nil {
			return err
		}
	}

	for i, d := range in.Details {
		if i > 0 {
			form.AddRow()
		}
		if err := form.UpdateRow(i, entry.FieldItemCode, d.ItemCode); err != nil {
			return err
		}
		if err := form.UpdateRow(i, entry.FieldDescription, d.Description); err != nil {
			return err
		}
		if err := form.UpdateRow(i, entry.FieldQty, strconv.FormatFloat(d.Qty, 'f', -1, 64)); err != nil {
			return err
		}
		if err := form.UpdateRow(i, entry.FieldRate, strconv.FormatFloat(d.Rate, 'f', -1, 64)); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	submitCmd.Flags().StringVar(&submitFile, "file", "", "YAML voucher file (required)")
	submitCmd.Flags().StringVar(&submitPrint, "print", "", "write the printable voucher HTML to this path")
	submitCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(submitCmd)
}
