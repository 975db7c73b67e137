// Subscribe command joins the newsletter.
package main

import (
	"github.com/spf13/cobra"

	"github.com/nepalailab/labsite/internal/forms"
)

var subscribeEmail string

var subscribeCmd = &cobra.Command{
	Use:   "subscribe",
	Short: "Subscribe to the newsletter",
	Long: `Subscribe registers an email address for the newsletter.

Example:
  labsite subscribe --email asha@example.com`,
	Args: cobra.NoArgs,
	RunE: runSubscribe,
}

func init() {
	subscribeCmd.Flags().StringVar(&subscribeEmail, "email", "", "email address (required)")
}

func runSubscribe(cmd *cobra.Command, args []string) error {
	form := forms.NewNewsletter(newClient(), newLogger())
	return runSubmit(cmd, form, map[string]string{
		forms.FieldEmail: subscribeEmail,
	})
}
