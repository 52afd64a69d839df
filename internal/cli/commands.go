package cli

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"notekw/internal/domain"
	"notekw/internal/keywords"
	"notekw/internal/normalize"
	"notekw/internal/notes"
)

func loadNotes(args []string) ([]domain.Note, error) {
	batch, err := notes.Load(args)
	if err != nil {
		return nil, err
	}
	if len(batch) == 0 {
		return nil, errors.New("no notes found in the given files")
	}
	return batch, nil
}

func newFitCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "fit files...",
		Short: "Learn the noise-word set from a historical corpus",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := buildService(opts.cfg)
			if err != nil {
				return err
			}
			batch, err := loadNotes(args)
			if err != nil {
				return err
			}
			if err := svc.Fit(notes.Texts(batch)); err != nil {
				return fmt.Errorf("fit failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "learned %d noise words from %d notes -> %s\n",
				svc.Learner().Noise().Len(), len(batch), opts.cfg.Noise.CachePath)
			return nil
		},
	}
}

func newExtractCmd(opts *rootOptions) *cobra.Command {
	var topN int
	var showScores bool
	cmd := &cobra.Command{
		Use:   "extract files...",
		Short: "Print the top keywords of every note",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("top-n") {
				opts.cfg.Keywords.TopN = &topN
			}
			svc, err := buildService(opts.cfg)
			if err != nil {
				return err
			}
			batch, err := loadNotes(args)
			if err != nil {
				return err
			}
			lists, err := svc.Keywords(notes.Texts(batch))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, n := range batch {
				fmt.Fprintf(out, "%s\t%s\n", n.ID, formatKeywords(lists[i], showScores))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&topN, "top-n", keywords.DefaultTopN, "Number of keywords per note")
	cmd.Flags().BoolVar(&showScores, "scores", false, "Print TF-IDF weights next to keywords")
	return cmd
}

func formatKeywords(kws []keywords.Keyword, scores bool) string {
	parts := make([]string, len(kws))
	for i, kw := range kws {
		if scores {
			parts[i] = fmt.Sprintf("%s:%.3f", kw.Term, kw.Score)
		} else {
			parts[i] = kw.Term
		}
	}
	return strings.Join(parts, " ")
}

func newClusterCmd(opts *rootOptions) *cobra.Command {
	var k int
	cmd := &cobra.Command{
		Use:   "cluster files...",
		Short: "Group notes by topic",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("k") {
				opts.cfg.Cluster.K = k
			}
			svc, err := buildService(opts.cfg)
			if err != nil {
				return err
			}
			batch, err := loadNotes(args)
			if err != nil {
				return err
			}
			groups, err := svc.Ingest(batch)
			if err != nil {
				return fmt.Errorf("ingest failed: %w", err)
			}
			out := cmd.OutOrStdout()
			for _, g := range groups {
				fmt.Fprintf(out, "group %d [%s]\n", g.ID, strings.Join(g.Label, " "))
				for _, n := range g.Notes {
					fmt.Fprintf(out, "  %s\t%s\n", n.ID, strings.Join(n.Keywords, " "))
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&k, "k", 3, "Number of groups")
	return cmd
}

func newNoiseCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "noise [word...]",
		Short: "List the learned noise words, or check the given words",
		RunE: func(cmd *cobra.Command, args []string) error {
			seg, err := buildSegmenter(opts.cfg)
			if err != nil {
				return err
			}
			norm := normalize.New(seg, normalize.Options{
				RemoveDigits: opts.cfg.Normalizer.RemoveDigits,
				Lowercase:    opts.cfg.Normalizer.LowercaseEnabled(),
			})
			learner, err := buildLearner(opts.cfg, norm)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, w := range learner.Noise().Words() {
					fmt.Fprintln(out, w)
				}
				return nil
			}
			for _, w := range args {
				fmt.Fprintf(out, "%s\t%t\n", w, learner.IsNoise(w))
			}
			return nil
		},
	}
	cmd.AddCommand(newNoiseScoresCmd(opts))
	return cmd
}

func newNoiseScoresCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "scores files...",
		Short: "Print the IDF of every term of a corpus without changing the noise set",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := buildService(opts.cfg)
			if err != nil {
				return err
			}
			batch, err := loadNotes(args)
			if err != nil {
				return err
			}
			learner := svc.Learner()
			scores := learner.Scores(notes.Texts(batch))
			out := cmd.OutOrStdout()
			for _, term := range sortedTerms(scores) {
				mark := ""
				if scores[term] < learner.Threshold() {
					mark = "\tnoise"
				}
				fmt.Fprintf(out, "%s\t%.3f%s\n", term, scores[term], mark)
			}
			return nil
		},
	}
}

func summarize(groups []domain.Group) string {
	parts := make([]string, len(groups))
	n := 0
	for i, g := range groups {
		parts[i] = fmt.Sprintf("[%s] %d", strings.Join(g.Label, " "), len(g.Notes))
		n += len(g.Notes)
	}
	return fmt.Sprintf("%d notes in %d groups: %s", n, len(groups), strings.Join(parts, ", "))
}

func sortedTerms(scores map[string]float64) []string {
	terms := make([]string, 0, len(scores))
	for t := range scores {
		terms = append(terms, t)
	}
	sort.Strings(terms)
	return terms
}
