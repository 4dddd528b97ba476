package cli

import (
	"encoding/json"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"sort"

	"go_4_vocab_scan/internal/model"
	"go_4_vocab_scan/internal/repository"

	"github.com/spf13/cobra"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := repository.AutoMigrate(a.db.WithContext(cmd.Context())); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date.")
			return nil
		},
	}
}

func newUserCmd(a *app) *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	var name, photo string
	addCmd := &cobra.Command{
		Use:   "add [uid]",
		Short: "Provision a user with an empty word collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := a.users.EnsureUser(cmd.Context(), model.Identity{
				UserID:      args[0],
				DisplayName: name,
				PhotoURL:    photo,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "User %s ready (%d words)\n", user.UserID, user.WordAmount)
			return nil
		},
	}
	addCmd.Flags().StringVarP(&name, "name", "n", "", "display name")
	addCmd.Flags().StringVar(&photo, "photo", "", "photo URL")

	userCmd.AddCommand(addCmd)
	return userCmd
}

func newIngestCmd(a *app) *cobra.Command {
	ingestCmd := &cobra.Command{
		Use:   "ingest",
		Short: "Extract, translate and store words for a user",
	}

	var userID, mimeType string
	fileCmd := &cobra.Command{
		Use:   "file [path...]",
		Short: "Ingest local text or HTML files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				mt := mimeType
				if mt == "" {
					mt = mime.TypeByExtension(filepath.Ext(path))
				}
				f, err := os.Open(path)
				if err != nil {
					return err
				}
				result, err := a.ingest.IngestDocument(cmd.Context(), userID, filepath.Base(path), mt, f)
				f.Close()
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				printIngestResult(cmd, result)
			}
			return nil
		},
	}

	urlCmd := &cobra.Command{
		Use:   "url [url]",
		Short: "Ingest the readable text of a web page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.ingest.IngestURL(cmd.Context(), userID, args[0])
			if err != nil {
				return err
			}
			printIngestResult(cmd, result)
			return nil
		},
	}

	ingestCmd.PersistentFlags().StringVarP(&userID, "user", "u", "", "user ID that owns the words (required)")
	ingestCmd.MarkPersistentFlagRequired("user")
	fileCmd.Flags().StringVar(&mimeType, "type", "", "MIME type (detected from the extension if empty)")

	ingestCmd.AddCommand(fileCmd, urlCmd)
	return ingestCmd
}

func printIngestResult(cmd *cobra.Command, r *model.IngestResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d created, %d merged, %d untranslated\n",
		r.Source, len(r.Created), len(r.Merged), len(r.Errors))
	for _, e := range r.Errors {
		fmt.Fprintf(out, "  skipped %s: %v\n", e.Word, e.Err)
	}
}

func newStatsCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "stats [uid]",
		Short: "Show learning statistics for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := a.stats.GetProfile(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(profile)
			}

			fmt.Fprintf(out, "User:        %s %s\n", profile.UID, profile.Name)
			fmt.Fprintf(out, "Words:       %d\n", profile.WordsAmount)
			fmt.Fprintf(out, "Tests taken: %d\n", profile.TestsAmount)
			for _, t := range profile.Tests {
				fmt.Fprintf(out, "  %s  %d/%d\n", t.DateFinished.Format("2006-01-02 15:04"), t.Points, t.MaxPoints)
			}
			learnt := make([]string, 0, len(profile.LearntWords))
			for _, w := range profile.LearntWords {
				learnt = append(learnt, w.Word+" = "+w.Translation)
			}
			sort.Strings(learnt)
			fmt.Fprintf(out, "Recently learnt: %d\n", len(learnt))
			for _, l := range learnt {
				fmt.Fprintf(out, "  %s\n", l)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the profile as JSON")
	return cmd
}
