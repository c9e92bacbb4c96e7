package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newLocationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "location",
		Short: "Court location commands",
	}

	cmd.AddCommand(newLocationCreateCmd())
	cmd.AddCommand(newLocationListCmd())
	cmd.AddCommand(newLocationGetCmd())
	cmd.AddCommand(newLocationUpdateCmd())
	cmd.AddCommand(newLocationDeleteCmd())

	return cmd
}

func locationBody(name, fee, currency string) (map[string]any, error) {
	req := map[string]any{"name": name}
	if fee != "" {
		amt, err := decimal.NewFromString(fee)
		if err != nil {
			return nil, fmt.Errorf("invalid session fee %q: %w", fee, err)
		}
		req["session_fee"] = amt
	}
	if currency != "" {
		req["currency"] = currency
	}
	return req, nil
}

func newLocationCreateCmd() *cobra.Command {
	var (
		name     string
		fee      string
		currency string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a court location",
		Long: `Add a court location.

New locations start with the standard court charge and player limit
tables; edit them afterwards via the API if the venue differs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := locationBody(name, fee, currency)
			if err != nil {
				return err
			}

			var result Location
			if err := client.Post("/api/v1/locations", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Location name (required)")
	cmd.Flags().StringVar(&fee, "session-fee", "", "Per-session fee")
	cmd.Flags().StringVar(&currency, "currency", "", "Currency code (default: TZS)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newLocationListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List court locations",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result LocationList
			if err := client.Get("/api/v1/locations", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newLocationGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get location details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Location
			if err := client.Get("/api/v1/locations/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newLocationUpdateCmd() *cobra.Command {
	var (
		name     string
		fee      string
		currency string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a court location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := locationBody(name, fee, currency)
			if err != nil {
				return err
			}

			var result Location
			if err := client.Put("/api/v1/locations/"+args[0], req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Location name (required)")
	cmd.Flags().StringVar(&fee, "session-fee", "", "Per-session fee")
	cmd.Flags().StringVar(&currency, "currency", "", "Currency code")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newLocationDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a court location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/locations/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Location %s deleted", args[0]))
			return nil
		},
	}
}
