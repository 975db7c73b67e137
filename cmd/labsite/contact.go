// Contact command submits a contact message.
package main

import (
	"github.com/spf13/cobra"

	"github.com/nepalailab/labsite/internal/forms"
)

var (
	contactName    string
	contactEmail   string
	contactSubject string
	contactMessage string
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Send a contact message",
	Long: `Contact submits a message to the lab.

All fields are required.

Example:
  labsite contact --name "Asha Rai" --email asha@example.com \
    --subject "Collaboration" --message "Hello from Kathmandu"`,
	Args: cobra.NoArgs,
	RunE: runContact,
}

func init() {
	contactCmd.Flags().StringVar(&contactName, "name", "", "full name (required)")
	contactCmd.Flags().StringVar(&contactEmail, "email", "", "email address (required)")
	contactCmd.Flags().StringVar(&contactSubject, "subject", "", "message subject (required)")
	contactCmd.Flags().StringVar(&contactMessage, "message", "", "message body (required)")
}

func runContact(cmd *cobra.Command, args []string) error {
	form := forms.NewContact(newClient(), newLogger())
	return runSubmit(cmd, form, map[string]string{
		forms.FieldFullName: contactName,
		forms.FieldEmail:    contactEmail,
		forms.FieldSubject:  contactSubject,
		forms.FieldMessage:  contactMessage,
	})
}
