// Join command submits a membership application.
package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/nepalailab/labsite/internal/forms"
)

var (
	joinName     string
	joinEmail    string
	joinInterest string
	joinMessage  string
)

var joinCmd = &cobra.Command{
	Use:   "join",
	Short: "Apply to join the lab",
	Long: `Join submits a membership application.

The interest area must be one of: ` + strings.Join(forms.InterestAreas, ", ") + `.

Example:
  labsite join --name "Asha Rai" --email asha@example.com \
    --interest research --message "I work on Nepali NLP"`,
	Args: cobra.NoArgs,
	RunE: runJoin,
}

func init() {
	joinCmd.Flags().StringVar(&joinName, "name", "", "full name (required)")
	joinCmd.Flags().StringVar(&joinEmail, "email", "", "email address (required)")
	joinCmd.Flags().StringVar(&joinInterest, "interest", "", "interest area (required)")
	joinCmd.Flags().StringVar(&joinMessage, "message", "", "application message (required)")
}

func runJoin(cmd *cobra.Command, args []string) error {
	form := forms.NewJoin(newClient(), newLogger())
	return runSubmit(cmd, form, map[string]string{
		forms.FieldFullName:     joinName,
		forms.FieldEmail:        joinEmail,
		forms.FieldInterestArea: joinInterest,
		forms.FieldMessage:      joinMessage,
	})
}
