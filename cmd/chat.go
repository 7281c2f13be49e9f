// This file implements the chat command, an interactive loop for
// exercising the context engine from a terminal.
package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adalundhe/weft/core/config"
	"github.com/adalundhe/weft/core/conversation"
	"github.com/adalundhe/weft/core/dialog"
)

const chatDefaultSession = "local"

var (
	chatConfigPath string
	chatSessionID  string
	chatVerbose    bool
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive context engine session",
	Long: `Read turns from stdin and show the context the engine would hand
to a response generator after each one.

Input forms:
  <text>           ingest a text turn
  /image <text>    ingest an image turn with the given recognized text
  /voice <text>    ingest a voice turn with the given transcription
  /stats           print session stats
  /clear           clear the session
  /quit            exit`,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().StringVarP(&chatConfigPath, "config", "c", "", "path to weft.yaml")
	chatCmd.Flags().StringVarP(&chatSessionID, "session", "s", chatDefaultSession, "session identifier")
	chatCmd.Flags().BoolVarP(&chatVerbose, "verbose", "v", false, "debug logging")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	logger := chatLogger()

	manager, cleanup, err := buildManager(chatConfigPath, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	fmt.Println("weft chat - /quit to exit")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "/quit" {
			return nil
		}

		if err := handleChatLine(manager, line); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
	}
}

func chatLogger() *slog.Logger {
	level := slog.LevelWarn
	if chatVerbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func buildManager(configPath string, logger *slog.Logger) (*conversation.Manager, func(), error) {
	cfgManager := config.NewManager(configPath)
	if err := cfgManager.Load(); err != nil {
		return nil, nil, err
	}

	manager := conversation.NewManager(cfgManager.Get().Engine, logger)
	cfgManager.OnChange(func(cfg *config.Config) {
		manager.Reconfigure(cfg.Engine)
	})
	if err := cfgManager.Watch(); err != nil {
		manager.Close()
		cfgManager.Close()
		return nil, nil, err
	}
	cleanup := func() {
		manager.Close()
		cfgManager.Close()
	}
	return manager, cleanup, nil
}

func handleChatLine(manager *conversation.Manager, line string) error {
	switch {
	case line == "/stats":
		return printStats(manager)
	case line == "/clear":
		manager.ClearContext(chatSessionID)
		fmt.Println("session cleared")
		return nil
	case strings.HasPrefix(line, "/image "):
		return ingestRecognized(manager, dialog.ModalityImage, strings.TrimPrefix(line, "/image "))
	case strings.HasPrefix(line, "/voice "):
		return ingestRecognized(manager, dialog.ModalityVoice, strings.TrimPrefix(line, "/voice "))
	default:
		return ingestText(manager, line)
	}
}

func ingestText(manager *conversation.Manager, content string) error {
	selection := manager.RelevantContext(chatSessionID, content)
	printSelection(selection)
	printSuggestions(manager.SwitchingSuggestions(chatSessionID, content))

	_, err := manager.AddContext(chatSessionID, dialog.ModalityText, content, nil)
	return err
}

func ingestRecognized(manager *conversation.Manager, modality dialog.Modality, extracted string) error {
	recognition := &dialog.RecognitionResult{
		ExtractedText: extracted,
		Confidence:    1.0,
		Engines:       []string{"manual"},
	}
	record, err := manager.AddContext(chatSessionID, modality, "", recognition)
	if err != nil {
		return err
	}

	fmt.Printf("stored %s turn %s\n", modality, record.ID)
	return nil
}

func printSelection(selection conversation.Selection) {
	if selection.Summary != "" {
		fmt.Println("context:", selection.Summary)
	}
	if len(selection.Related) > 0 {
		fmt.Printf("related: %d prior turn(s)\n", len(selection.Related))
	}
}

func printSuggestions(suggestions []string) {
	for _, s := range suggestions {
		fmt.Println("hint:", s)
	}
}

func printStats(manager *conversation.Manager) error {
	stats := manager.SessionStats(chatSessionID)
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
