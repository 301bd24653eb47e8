package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func newCmdRegistry() *cobra.Command {
	c := &cobra.Command{
		Use:                "registry",
		Short:              "Widget catalog commands",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	c.AddCommand(newCmdRegistryList())
	return c
}

func newCmdRegistryList() *cobra.Command {
	return &cobra.Command{
		Use:                "list",
		Short:              "List registered widget types",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := buildRegistry(cmd)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, def := range reg.Defs() {
				if err := enc.Encode(def); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
