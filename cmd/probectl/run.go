package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hamed0406/serviceprobe/internal/domain"
	"github.com/hamed0406/serviceprobe/internal/runner"
)

var (
	runTestID string
	runPath   string
	runQuery  string
	runMatch  string
	runCount  int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute test runs: setup, fetch, check, persist",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		p, err := buildProbe(ctx)
		if err != nil {
			return err
		}

		drv := runner.New(p.Logger, p, nil, nil)
		spec := domain.RunSpec{
			TestID: runTestID,
			Path:   runPath,
			Query:  runQuery,
			Match:  runMatch,
		}

		for i := 0; i < runCount; i++ {
			rec, err := drv.Execute(ctx, spec)
			if err != nil {
				return err
			}
			verdict := "FAIL"
			if rec.Passed {
				verdict = "PASS"
			}
			fmt.Printf("%s %s\n", verdict, rec.ResultKey)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runTestID, "id", "t1", "test identifier")
	runCmd.Flags().StringVar(&runPath, "path", "", "request path on the target")
	runCmd.Flags().StringVar(&runQuery, "query", "", "optional query value, sent as an extra path segment")
	runCmd.Flags().StringVar(&runMatch, "match", "", "string the response body must contain to pass")
	runCmd.Flags().IntVar(&runCount, "count", 1, "how many sequential runs to execute")
	_ = runCmd.MarkFlagRequired("path")
	rootCmd.AddCommand(runCmd)
}
