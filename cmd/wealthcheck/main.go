package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"wealthcheck/internal/logger"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wealthcheck",
		Short: "Wealth health check for individual investors",
		Long: `wealthcheck analyses a client's asset allocation and insurance cover and prints
advisory recommendations. Amounts are entered in lakh.`,
		SilenceUsage: true,
	}
	rootCmd.AddCommand(analyzeCmd())
	return rootCmd
}

func main() {
	logger.Init("cli")
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
