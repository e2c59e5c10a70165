// Package cmd contains all Cobra commands for nessie.
//
// Design decision: the root command launches the chat TUI directly.
// The warehouse connection comes from a saved profile
// (~/.nessie/connections.json, picked with --profile) so the terminal
// surface stays a pure chat screen. The ask subcommand runs a single
// round headless for scripting.
package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/elborak3000/nessie/ai"
	"github.com/elborak3000/nessie/applog"
	"github.com/elborak3000/nessie/chart"
	"github.com/elborak3000/nessie/chat"
	"github.com/elborak3000/nessie/config"
	"github.com/elborak3000/nessie/db"
	"github.com/elborak3000/nessie/tui"
	"github.com/spf13/cobra"
)

var profileName string

var rootCmd = &cobra.Command{
	Use:   "nessie",
	Short: "Conversational explorer for loss run data",
	Long: `nessie is a terminal chat client for asking natural-language questions
about a loss run dataset:
  • questions are translated to SQL by a configurable AI provider
  • queries run against the warehouse over pgx (optional SSH tunnel)
  • date/numeric result shapes are charted automatically

Run 'nessie' to start the chat TUI, or 'nessie ask "..."' for one answer.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		defer sess.Close()

		return tui.Start(sess.Pipeline, sess.Conversation, sess.Provider.Name(), sess.TableName)
	},
}

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask one question and print the answer",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		defer sess.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		question := strings.Join(args, " ")
		turn, err := sess.Pipeline.Respond(ctx, sess.Conversation, question)
		if err != nil {
			return err
		}
		printTurn(turn.Render())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&profileName, "profile", "default", "connection profile name")
	rootCmd.AddCommand(askCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// session bundles the external collaborators for one conversation.
type session struct {
	DB           *db.DB
	Provider     ai.Provider
	Pipeline     *chat.Pipeline
	Conversation *chat.Conversation
	TableName    string
}

func (s *session) Close() {
	s.DB.Close()
	applog.Info("session closed")
}

// newSession loads config, connects the warehouse, and assembles the
// pipeline.
func newSession(ctx context.Context) (*session, error) {
	appCfg, err := config.LoadAppConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	store, err := config.NewConnectionStore()
	if err != nil {
		return nil, fmt.Errorf("load connections: %w", err)
	}
	profile, ok := store.Get(profileName)
	if !ok {
		if profileName != "default" {
			return nil, fmt.Errorf("unknown connection profile %q", profileName)
		}
		profile = config.DefaultConnection()
	}

	database, err := db.Connect(ctx, profile.ToConfig())
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	applog.Event("connect", "profile=%s host=%s db=%s", profile.Name, profile.Host, profile.Database)

	provider, err := ai.NewProvider(appCfg.AI, database)
	if err != nil {
		database.Close()
		return nil, err
	}
	applog.Info("provider: %s, table: %s", provider.Name(), appCfg.Table.QualifiedName)

	pipe := &chat.Pipeline{
		Schema:   &db.ContextBuilder{DB: database, Table: appCfg.Table},
		Provider: provider,
		Executor: database,
	}

	return &session{
		DB:           database,
		Provider:     provider,
		Pipeline:     pipe,
		Conversation: chat.New(),
		TableName:    appCfg.Table.QualifiedName,
	}, nil
}

// printTurn writes one rendered assistant turn as plain text.
func printTurn(rt chat.RenderedTurn) {
	switch rt.Kind {
	case chat.RenderedError:
		fmt.Println("error:", rt.Text)

	case chat.RenderedQuery:
		if s := strings.TrimSpace(rt.Before); s != "" {
			fmt.Println(s)
		}
		fmt.Println("\n--- SQL ---")
		fmt.Println(rt.SQL)
		fmt.Println("-----------")
		if s := strings.TrimSpace(rt.After); s != "" {
			fmt.Println(s)
		}
		if rt.Results != nil {
			fmt.Println()
			fmt.Println(strings.Join(rt.Results.Columns, " | "))
			for _, row := range rt.Results.Rows {
				fmt.Println(strings.Join(row, " | "))
			}
			fmt.Println(rt.Results.Status)
		}
		if rt.Chart != nil {
			switch rt.Chart.Kind {
			case chart.PlanLine:
				fmt.Printf("chart: line, x=%s, y=%s\n", rt.Chart.X, strings.Join(rt.Chart.Y, ","))
			case chart.PlanBar:
				fmt.Printf("chart: bar, %s by %s\n", rt.Chart.Value, rt.Chart.Category)
			default:
				fmt.Println(chart.CannotChartMessage)
			}
		}

	default:
		fmt.Println(rt.Text)
	}
}
