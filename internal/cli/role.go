package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRoleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "role",
		Short: "Role settings commands",
	}

	cmd.AddCommand(newRoleCreateCmd())
	cmd.AddCommand(newRoleListCmd())
	cmd.AddCommand(newRoleGetCmd())
	cmd.AddCommand(newRoleUpdateCmd())
	cmd.AddCommand(newRoleDeleteCmd())

	return cmd
}

func roleBody(name, description string, permissions []string) map[string]any {
	req := map[string]any{
		"name":        name,
		"description": description,
	}
	if len(permissions) > 0 {
		req["permissions"] = permissions
	}
	return req
}

func newRoleCreateCmd() *cobra.Command {
	var (
		name        string
		description string
		permissions []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a custom role",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Role
			if err := client.Post("/api/v1/roles", roleBody(name, description, permissions), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Role name (required)")
	cmd.Flags().StringVar(&description, "description", "", "Role description")
	cmd.Flags().StringSliceVar(&permissions, "permission", nil, "Permission (repeatable)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newRoleListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List roles",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result RoleList
			if err := client.Get("/api/v1/roles", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRoleGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get role details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Role
			if err := client.Get("/api/v1/roles/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRoleUpdateCmd() *cobra.Command {
	var (
		name        string
		description string
		permissions []string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a custom role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Role
			if err := client.Put("/api/v1/roles/"+args[0], roleBody(name, description, permissions), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Role name (required)")
	cmd.Flags().StringVar(&description, "description", "", "Role description")
	cmd.Flags().StringSliceVar(&permissions, "permission", nil, "Permission (repeatable)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newRoleDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a custom role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/roles/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Role %s deleted", args[0]))
			return nil
		},
	}
}
