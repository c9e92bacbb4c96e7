package cli

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player management commands",
	}

	cmd.AddCommand(newPlayerCreateCmd())
	cmd.AddCommand(newPlayerListCmd())
	cmd.AddCommand(newPlayerGetCmd())
	cmd.AddCommand(newPlayerUpdateCmd())
	cmd.AddCommand(newPlayerActivateCmd())
	cmd.AddCommand(newPlayerDeactivateCmd())
	cmd.AddCommand(newPlayerDeleteCmd())
	cmd.AddCommand(newPlayerExportCmd())
	cmd.AddCommand(newPlayerImportCmd())
	cmd.AddCommand(newPlayerTemplateCmd())

	return cmd
}

// playerFlags holds the shared create/update flag set
type playerFlags struct {
	firstName string
	lastName  string
	email     string
	birthDate string
	contact   string
	country   string
	duprID    string
	role      string
	notes     string
}

func (f *playerFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.firstName, "first-name", "", "First name (required)")
	cmd.Flags().StringVar(&f.lastName, "last-name", "", "Last name (required)")
	cmd.Flags().StringVar(&f.email, "email", "", "Email address")
	cmd.Flags().StringVar(&f.birthDate, "birth-date", "", "Birth date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.contact, "contact", "", "Contact number")
	cmd.Flags().StringVar(&f.country, "country-code", "", "Contact country code, e.g. +255")
	cmd.Flags().StringVar(&f.duprID, "dupr-id", "", "DUPR rating ID")
	cmd.Flags().StringVar(&f.role, "role", "", "Role name")
	cmd.Flags().StringVar(&f.notes, "notes", "", "Free-form notes")
}

func (f *playerFlags) body() map[string]string {
	return map[string]string{
		"first_name":     f.firstName,
		"last_name":      f.lastName,
		"email":          f.email,
		"birth_date":     f.birthDate,
		"contact_number": f.contact,
		"country_code":   f.country,
		"dupr_id":        f.duprID,
		"role":           f.role,
		"notes":          f.notes,
	}
}

func newPlayerCreateCmd() *cobra.Command {
	var flags playerFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new player",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player
			if err := client.Post("/api/v1/players", flags.body(), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	flags.register(cmd)
	_ = cmd.MarkFlagRequired("first-name")
	_ = cmd.MarkFlagRequired("last-name")

	return cmd
}

func newPlayerListCmd() *cobra.Command {
	var (
		status  string
		balance string
		search  string
		page    int
		size    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List players",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			if status != "" {
				q.Set("status", status)
			}
			if balance != "" {
				q.Set("balance", balance)
			}
			if search != "" {
				q.Set("search", search)
			}
			if page > 0 {
				q.Set("page", strconv.Itoa(page))
			}
			if size > 0 {
				q.Set("page_size", strconv.Itoa(size))
			}

			path := "/api/v1/players"
			if len(q) > 0 {
				path += "?" + q.Encode()
			}

			var result PlayerList
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status: all, active, inactive")
	cmd.Flags().StringVar(&balance, "balance", "", "Filter by balance: all, positive, negative, zero")
	cmd.Flags().StringVar(&search, "search", "", "Search by name, Kili ID or email")
	cmd.Flags().IntVar(&page, "page", 0, "Page number")
	cmd.Flags().IntVar(&size, "page-size", 0, "Page size")

	return cmd
}

func newPlayerGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get player details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player
			if err := client.Get("/api/v1/players/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerUpdateCmd() *cobra.Command {
	var flags playerFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a player's profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player
			if err := client.Put("/api/v1/players/"+args[0], flags.body(), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	flags.register(cmd)
	_ = cmd.MarkFlagRequired("first-name")
	_ = cmd.MarkFlagRequired("last-name")

	return cmd
}

func newPlayerActivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "activate <id>",
		Short: "Mark a player as active",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setPlayerActive(args[0], true)
		},
	}
}

func newPlayerDeactivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate <id>",
		Short: "Mark a player as inactive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setPlayerActive(args[0], false)
		},
	}
}

func setPlayerActive(id string, active bool) error {
	req := map[string]bool{"active": active}

	var result Player
	if err := client.Patch("/api/v1/players/"+id+"/status", req, &result); err != nil {
		return err
	}

	out := NewOutput(cfg.Output)
	out.Print(result)
	return nil
}

func newPlayerDeleteCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a player (payments are kept)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			if all {
				if err := client.Delete("/api/v1/players"); err != nil {
					return err
				}
				out.PrintMessage("All players deleted")
				return nil
			}

			if len(args) != 1 {
				return fmt.Errorf("player id required (or --all)")
			}
			if err := client.Delete("/api/v1/players/" + args[0]); err != nil {
				return err
			}
			out.PrintMessage(fmt.Sprintf("Player %s deleted", args[0]))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Delete every player")

	return cmd
}

func newPlayerExportCmd() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all players as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := os.Stdout
			if outFile != "" {
				f, err := os.Create(outFile)
				if err != nil {
					return err
				}
				defer func() { _ = f.Close() }()
				w = f
			}

			if err := client.Download("/api/v1/players/export", w); err != nil {
				return err
			}

			if outFile != "" {
				NewOutput(cfg.Output).PrintMessage(fmt.Sprintf("Exported to %s", outFile))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFile, "file", "f", "", "Write to file instead of stdout")

	return cmd
}

func newPlayerImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import players from a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()

			var result ImportResult
			if err := client.Upload("/api/v1/players/import", "text/csv", f, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerTemplateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "template",
		Short: "Print the CSV import template",
		RunE: func(cmd *cobra.Command, args []string) error {
			return client.Download("/api/v1/players/import/template", os.Stdout)
		},
	}
}
