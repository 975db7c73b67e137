// Chat commands talk to the lab assistant.
//
// The conversation id and anonymous user id live in the session store,
// so replies stay in context across invocations.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nepalailab/labsite/internal/chat"
	"github.com/nepalailab/labsite/pkg/types"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the lab assistant",
	Long: `Chat starts an interactive conversation with the assistant.

Type a message and press enter to send it. An empty line or Ctrl-D
ends the session. Use "chat send" for a single exchange and
"chat clear" to start a fresh conversation.

Example:
  labsite chat
  labsite chat send "What does the lab work on?"
  labsite chat clear`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

var chatSendCmd = &cobra.Command{
	Use:   "send <message>",
	Short: "Send one message and print the reply",
	Args:  cobra.ExactArgs(1),
	RunE:  runChatSend,
}

var chatClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget the current conversation",
	Args:  cobra.NoArgs,
	RunE:  runChatClear,
}

func init() {
	chatCmd.AddCommand(chatSendCmd)
	chatCmd.AddCommand(chatClearCmd)
}

// newChatSession opens the session store and builds a chat session
// over it. The returned closer must be called when done.
func newChatSession() (*chat.Session, func(), error) {
	store, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	sess := chat.NewSession(newClient(), store, newLogger())
	return sess, func() { _ = store.Close() }, nil
}

func printTurn(cmd *cobra.Command, msg types.Message) {
	label := "you"
	if msg.Sender == types.SenderBot {
		label = "bot"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s> %s\n", label, msg.Text)
}

func runChat(cmd *cobra.Command, args []string) error {
	sess, closeStore, err := newChatSession()
	if err != nil {
		return err
	}
	defer closeStore()

	for _, msg := range sess.Transcript() {
		printTurn(cmd, msg)
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(cmd.OutOrStdout(), "you> ")
		if !scanner.Scan() {
			fmt.Fprintln(cmd.OutOrStdout())
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}

		reply, err := sess.Send(cmd.Context(), line)
		if err != nil {
			return fmt.Errorf("send message: %w", err)
		}
		printTurn(cmd, reply)
	}

	return scanner.Err()
}

func runChatSend(cmd *cobra.Command, args []string) error {
	sess, closeStore, err := newChatSession()
	if err != nil {
		return err
	}
	defer closeStore()

	reply, err := sess.Send(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			return fmt.Errorf("message is empty")
		}
		return fmt.Errorf("send message: %w", err)
	}

	return printResult(cmd, reply, func() {
		printTurn(cmd, reply)
	})
}

func runChatClear(cmd *cobra.Command, args []string) error {
	sess, closeStore, err := newChatSession()
	if err != nil {
		return err
	}
	defer closeStore()

	if err := sess.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("clear conversation: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "conversation cleared")
	return nil
}
