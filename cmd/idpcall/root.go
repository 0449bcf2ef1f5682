package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	apperrors "github.com/kbukum/idpclient/errors"
	"github.com/kbukum/idpclient/oauth2"
)

// Exit codes.
const (
	// ExitCodeSuccess indicates the endpoint answered with status 200.
	ExitCodeSuccess = 0
	// ExitCodeError indicates invalid configuration or unusable credentials.
	ExitCodeError = 1
	// ExitCodeCallFailed indicates the endpoint was unreachable or rejected the request.
	ExitCodeCallFailed = 3
)

// Error output formats.
const (
	errorFormatText = "text"
	errorFormatJSON = "json"
)

type rootOptions struct {
	errorFormat string
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	root := &cobra.Command{
		Use:   serviceName,
		Short: "Call an OAuth2 identity provider endpoint",
		Long: `idpcall sends one form-encoded POST to an OAuth2 authorization, token
or introspection endpoint, optionally over mutual TLS, and prints the
raw response body.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.errorFormat, "error-format", errorFormatText, "error output on stderr: text or json")
	root.AddCommand(newCallCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := &rootOptions{}
	root := newRootCmd(opts)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		writeError(stderr, opts.errorFormat, err)
		return exitCode(err)
	}
	return ExitCodeSuccess
}

// writeError prints err as its message or, in json format, as an error document.
func writeError(w io.Writer, format string, err error) {
	if format != errorFormatJSON {
		fmt.Fprintln(w, err)
		return
	}
	appErr := apperrors.From(err)
	if appErr.Code == apperrors.ErrCodeInternal && !isCallError(err) {
		// flag parsing and config loading
		appErr = apperrors.Validation(err.Error()).WithCause(err)
	}
	data, jerr := json.Marshal(appErr.ToResponse())
	if jerr != nil {
		fmt.Fprintln(w, err)
		return
	}
	fmt.Fprintln(w, string(data))
}

func isCallError(err error) bool {
	var callErr *oauth2.Error
	return errors.As(err, &callErr)
}

// exitCode maps an error onto the process exit code.
func exitCode(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}
	var callErr *oauth2.Error
	if errors.As(err, &callErr) {
		switch callErr.Kind {
		case oauth2.KindTransport, oauth2.KindEndpoint:
			return ExitCodeCallFailed
		}
	}
	return ExitCodeError
}
