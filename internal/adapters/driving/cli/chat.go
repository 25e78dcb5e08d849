package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/admitlab/admit-cli/internal/core/domain"
	"github.com/admitlab/admit-cli/internal/core/ports/driven"
	"github.com/admitlab/admit-cli/internal/logger"
)

var (
	promptColor  = color.New(color.FgCyan, color.Bold)
	answerColor  = color.New(color.FgGreen)
	refusalColor = color.New(color.FgYellow)
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Ask questions interactively",
	Long: `Starts an interactive question-answering loop. Each exchange is
recorded to the transcript store when one is available. An empty
line ends the session.`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(); err != nil {
		return err
	}
	if askService == nil {
		return fmt.Errorf("chat: %w", errNotConfigured)
	}

	out := cmd.OutOrStdout()
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	sessionID := uuid.NewString()
	ctx := context.Background()

	// Fail before the loop when the model endpoint is down, not on the
	// first question.
	if llmService != nil {
		if err := llmService.Ping(ctx); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrLLMUnavailable, err)
		}
	}

	if interactive {
		cmd.Println("Задай вопрос про поступление. Пустая строка — выход.")
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		if interactive {
			promptColor.Fprint(out, "Вы: ")
		}
		if !scanner.Scan() {
			break
		}
		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			break
		}

		answer, err := askService.Ask(ctx, question)
		if err != nil {
			cmd.Printf("ошибка: %v\n", err)
			continue
		}

		if answer.Grounded {
			answerColor.Fprintln(out, answer.Text)
		} else {
			refusalColor.Fprintln(out, answer.Text)
		}
		cmd.Println()

		if transcriptStore != nil {
			ex := driven.Exchange{
				SessionID: sessionID,
				AskedAt:   time.Now(),
				Question:  question,
				Answer:    answer.Text,
				Grounded:  answer.Grounded,
			}
			if err := transcriptStore.Append(ctx, ex); err != nil {
				logger.Warn("transcript append: %v", err)
			}
		}
	}
	return scanner.Err()
}
