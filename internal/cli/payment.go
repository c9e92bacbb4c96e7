package cli

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newPaymentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payment",
		Short: "Payment ledger commands",
	}

	cmd.AddCommand(newPaymentCreateCmd())
	cmd.AddCommand(newPaymentListCmd())
	cmd.AddCommand(newPaymentGetCmd())
	cmd.AddCommand(newPaymentUpdateCmd())
	cmd.AddCommand(newPaymentArchiveCmd())
	cmd.AddCommand(newPaymentRestoreCmd())
	cmd.AddCommand(newPaymentDeleteCmd())

	return cmd
}

func parseAmount(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	return d, nil
}

func newPaymentCreateCmd() *cobra.Command {
	var (
		pType    string
		playerID string
		amount   string
		currency string
		notes    string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Record a payment",
		Long: `Record a payment in the ledger.

Player payments need --player and credit (positive) or debit (negative)
that player's balance. Court and other payments stand alone.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			amt, err := parseAmount(amount)
			if err != nil {
				return err
			}

			req := map[string]any{
				"type":   pType,
				"amount": amt,
				"notes":  notes,
			}
			if playerID != "" {
				req["player_id"] = playerID
			}
			if currency != "" {
				req["currency"] = currency
			}

			var result Payment
			if err := client.Post("/api/v1/payments", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&pType, "type", "player", "Payment type: player, court, others")
	cmd.Flags().StringVar(&playerID, "player", "", "Player ID (required for player payments)")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount, negative for debits (required)")
	cmd.Flags().StringVar(&currency, "currency", "", "Currency code (default: TZS)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newPaymentListCmd() *cobra.Command {
	var (
		pType    string
		playerID string
		search   string
		from     string
		to       string
		archived bool
		all      bool
		page     int
		size     int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List payments (newest first)",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			if pType != "" {
				q.Set("type", pType)
			}
			if playerID != "" {
				q.Set("player_id", playerID)
			}
			if search != "" {
				q.Set("search", search)
			}
			if from != "" {
				q.Set("from", from)
			}
			if to != "" {
				q.Set("to", to)
			}
			if archived {
				q.Set("archived_only", "true")
			} else if all {
				q.Set("include_archived", "true")
			}
			if page > 0 {
				q.Set("page", strconv.Itoa(page))
			}
			if size > 0 {
				q.Set("page_size", strconv.Itoa(size))
			}

			path := "/api/v1/payments"
			if len(q) > 0 {
				path += "?" + q.Encode()
			}

			var result PaymentList
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&pType, "type", "", "Filter by type: player, court, others")
	cmd.Flags().StringVar(&playerID, "player", "", "Filter by player ID")
	cmd.Flags().StringVar(&search, "search", "", "Search player name or notes")
	cmd.Flags().StringVar(&from, "from", "", "Only payments at or after this RFC3339 time")
	cmd.Flags().StringVar(&to, "to", "", "Only payments at or before this RFC3339 time")
	cmd.Flags().BoolVar(&archived, "archived", false, "Show only archived payments")
	cmd.Flags().BoolVar(&all, "all", false, "Include archived payments")
	cmd.Flags().IntVar(&page, "page", 0, "Page number")
	cmd.Flags().IntVar(&size, "page-size", 0, "Page size")

	return cmd
}

func newPaymentGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get payment details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Payment
			if err := client.Get("/api/v1/payments/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPaymentUpdateCmd() *cobra.Command {
	var (
		pType    string
		playerID string
		amount   string
		notes    string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amt, err := parseAmount(amount)
			if err != nil {
				return err
			}

			req := map[string]any{
				"type":   pType,
				"amount": amt,
				"notes":  notes,
			}
			if playerID != "" {
				req["player_id"] = playerID
			}

			var result Payment
			if err := client.Put("/api/v1/payments/"+args[0], req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&pType, "type", "player", "Payment type: player, court, others")
	cmd.Flags().StringVar(&playerID, "player", "", "Player ID (required for player payments)")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount, negative for debits (required)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newPaymentArchiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "archive <id>",
		Short: "Archive a payment (excluded from balances)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setPaymentArchived(args[0], true)
		},
	}
}

func newPaymentRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <id>",
		Short: "Restore an archived payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setPaymentArchived(args[0], false)
		},
	}
}

func setPaymentArchived(id string, archived bool) error {
	req := map[string]bool{"archived": archived}

	var result Payment
	if err := client.Patch("/api/v1/payments/"+id+"/archive", req, &result); err != nil {
		return err
	}

	out := NewOutput(cfg.Output)
	out.Print(result)
	return nil
}

func newPaymentDeleteCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a payment permanently",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			if all {
				if err := client.Delete("/api/v1/payments"); err != nil {
					return err
				}
				out.PrintMessage("All payments deleted")
				return nil
			}

			if len(args) != 1 {
				return fmt.Errorf("payment id required (or --all)")
			}
			if err := client.Delete("/api/v1/payments/" + args[0]); err != nil {
				return err
			}
			out.PrintMessage(fmt.Sprintf("Payment %s deleted", args[0]))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Delete every payment")

	return cmd
}
