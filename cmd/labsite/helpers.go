// Shared helpers for labsite CLI commands.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nepalailab/labsite/internal/content"
	"github.com/nepalailab/labsite/internal/forms"
	"github.com/nepalailab/labsite/internal/httpapi"
	"github.com/nepalailab/labsite/internal/session"
	"github.com/nepalailab/labsite/pkg/types"
)

// newClient builds the configured API client.
func newClient() *httpapi.Client {
	cfg := httpapi.DefaultConfig()
	cfg.BaseURL = resolveAPIURL()
	cfg.Logger = newLogger()
	return httpapi.New(cfg)
}

// newPipeline builds the content pipeline over the configured client.
func newPipeline() *content.Pipeline {
	return content.NewPipeline(newClient(), newLogger())
}

// openStore resolves the session directory and opens the configured
// session store. The caller must Close it.
func openStore() (session.Store, error) {
	backend := configStore
	if flagStore != "" {
		backend = flagStore
	}
	if backend == "" {
		backend = types.StoreSQLite
	}

	sessionDir, err := resolveSessionDir()
	if err != nil {
		return nil, fmt.Errorf("resolve session dir: %w", err)
	}

	store, err := session.Open(types.StoreConfig{
		Backend: backend,
		Dir:     sessionDir,
		Addr:    configRedisAddr,
	})
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}
	return store, nil
}

// printResult writes the value as indented JSON when --json is set, or
// delegates to the plain renderer otherwise.
func printResult(cmd *cobra.Command, value any, plain func()) error {
	if flagJSON {
		out, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return fmt.Errorf("encode output: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}
	plain()
	return nil
}

// printStatus renders a form submission outcome. A non-success outcome
// exits nonzero through the returned error.
func printStatus(cmd *cobra.Command, status types.SubmissionStatus) error {
	if err := printResult(cmd, status, func() {
		fmt.Fprintln(cmd.OutOrStdout(), status.Message)
	}); err != nil {
		return err
	}
	if status.State == types.SubmitError {
		return fmt.Errorf("submission failed: %s", status.Message)
	}
	return nil
}

// runSubmit wires flag values into the form and submits it.
func runSubmit(cmd *cobra.Command, form *forms.Form, fields map[string]string) error {
	for key, value := range fields {
		form.SetField(key, value)
	}
	return printStatus(cmd, form.Submit(cmd.Context()))
}
