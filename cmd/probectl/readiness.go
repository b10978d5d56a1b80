package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var readinessCmd = &cobra.Command{
	Use:   "readiness",
	Short: "Fail fast if the target (or its result bucket) is unreachable",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := buildProbe(cmd.Context())
		if err != nil {
			return err
		}
		if err := p.ReadinessCheck(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("ready")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(readinessCmd)
}
