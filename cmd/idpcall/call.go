package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/kbukum/idpclient/logger"
	"github.com/kbukum/idpclient/oauth2"
	"github.com/kbukum/idpclient/version"
)

const shutdownTimeout = 5 * time.Second

func newCallCmd() *cobra.Command {
	var configFile, envFile string

	cmd := &cobra.Command{
		Use:   "call",
		Short: "Send the configured request and print the response body",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadCallConfig(configFile, envFile)
			if err != nil {
				return err
			}
			return runCall(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "config file (default: searched config.yml)")
	cmd.Flags().StringVar(&envFile, "env-file", "", ".env file (default: searched .env)")
	return cmd
}

func runCall(ctx context.Context, cfg *CallConfig, out io.Writer) error {
	logger.Init(cfg.Logging)
	log := logger.WithComponent(serviceName)
	log.Debug("starting", version.Get().Fields())

	opts, shutdown, err := setupTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if serr := shutdown(sctx); serr != nil {
			log.Warn("telemetry shutdown failed", logger.ErrorFields("shutdown", serr))
		}
	}()

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	client := oauth2.New(append(opts, oauth2.WithLogger(log))...)
	body, err := client.Do(ctx, cfg.Request())
	if err != nil {
		var callErr *oauth2.Error
		if errors.As(err, &callErr) {
			log.Debug("call failed", logger.Fields("code", string(callErr.AppError().Code)))
		}
		return err
	}

	_, err = fmt.Fprintln(out, body)
	return err
}
