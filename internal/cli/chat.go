package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"legalqa/config"
	"legalqa/internal/adapter/store"
	"legalqa/internal/domain"
	"legalqa/internal/usecase"
)

var (
	chatHTML    bool
	chatSources bool
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive legal assistant session",
	Long: `Start an interactive session. Chats are saved to .legalqa/transcripts.db
and restored on the next run.

Commands inside the session:
  /new            start a new chat
  /list           list saved chats
  /select <id>    switch to a saved chat
  /quit           leave the session`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.Flags().BoolVar(&chatHTML, "html", false, "render answers as HTML")
	chatCmd.Flags().BoolVar(&chatSources, "sources", true, "list the cited sources")
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	out := cmd.OutOrStdout()

	engine, err := loadEngine(cmd.Context(), cmd.ErrOrStderr(), true)
	if err != nil {
		return err
	}

	if cfg.Store.Path == "" {
		if err := config.EnsureDataDir(GetRootDir()); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	st, err := store.NewBoltStore(cfg.StorePath(GetRootDir()), cfg.Chat.HistoryKey, logger)
	if err != nil {
		return fmt.Errorf("failed to open transcript store: %w", err)
	}
	defer st.Close()

	svc, err := usecase.NewChatService(engine, st, cfg.Chat.TitleLength, logger)
	if err != nil {
		return err
	}

	stats := engine.Stats()
	fmt.Fprintf(out, "Loaded %d legal documents. Ask a question, or /quit to leave.\n", stats.TotalDocuments)
	if chat, ok := svc.Current(); ok {
		fmt.Fprintf(out, "Continuing %q (%d messages).\n", chat.Title, len(chat.Messages))
	}

	return chatLoop(cmd, svc, cmd.InOrStdin(), out)
}

func chatLoop(cmd *cobra.Command, svc *usecase.ChatService, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "\n> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			continue
		case line == "/quit" || line == "/exit":
			return nil
		case line == "/new":
			chat, err := svc.NewChat()
			if err != nil {
				logger.Warn("new chat not saved", "error", err)
			}
			fmt.Fprintf(out, "Started chat %s\n", chat.ID)
			continue
		case line == "/list":
			listChats(out, svc)
			continue
		case strings.HasPrefix(line, "/select"):
			id := strings.TrimSpace(strings.TrimPrefix(line, "/select"))
			chat, err := svc.Select(id)
			if errors.Is(err, domain.ErrChatNotFound) {
				fmt.Fprintf(out, "No chat with id %q\n", id)
				continue
			}
			printTranscript(out, chat)
			continue
		}

		reply, err := svc.Send(line)
		switch {
		case errors.Is(err, domain.ErrBusy):
			fmt.Fprintln(out, "Still working on the previous message.")
			continue
		case err != nil && reply.Content == "":
			return err
		case err != nil:
			logger.Warn("chat history not saved", "error", err)
		}

		text, err := formatAnswer(reply.Content, chatHTML || GetConfig().Answer.Format == "html")
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, text)
		if chatSources {
			printSources(cmd, reply.Sources)
		}
	}
}

func listChats(out io.Writer, svc *usecase.ChatService) {
	chats := svc.List()
	if len(chats) == 0 {
		fmt.Fprintln(out, "No saved chats.")
		return
	}
	current, _ := svc.Current()
	for _, c := range chats {
		marker := " "
		if c.ID == current.ID {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %s  %s  (%d messages, %s)\n",
			marker, c.ID, c.Title, len(c.Messages), c.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func printTranscript(out io.Writer, chat domain.Chat) {
	fmt.Fprintf(out, "== %s ==\n", chat.Title)
	for _, m := range chat.Messages {
		prefix := "You"
		if m.Role == domain.RoleAssistant {
			prefix = "Assistant"
		}
		fmt.Fprintf(out, "\n%s:\n%s\n", prefix, m.Content)
	}
}
