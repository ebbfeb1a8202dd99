package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"faq-bot/internal/config"
	"faq-bot/internal/logger"
	"faq-bot/internal/service"
	"faq-bot/internal/store"
)

type options struct {
	faqPath   string
	source    string
	showScore bool
	verbose   bool
}

var (
	questionLabel = color.New(color.FgCyan, color.Bold)
	answerLabel   = color.New(color.FgGreen, color.Bold)
)

// NewRootCmd returns the faqbot command. Trailing arguments are joined into
// the question; with none, the question is read from stdin.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "faqbot [question...]",
		Short: "Answer a question from the FAQ file",
		Long: `faqbot finds the FAQ entry whose question is most similar to yours
and prints its question and answer.

The question is taken from the arguments, or asked for interactively when
none are given.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.faqPath, "faq", "", "CSV file with question,answer columns (default from FAQ_CSV_PATH)")
	cmd.Flags().StringVar(&opts.source, "source", "", "FAQ source: csv, mysql or postgres (default from FAQ_SOURCE)")
	cmd.Flags().BoolVar(&opts.showScore, "score", false, "Print the similarity score")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log matching details to stderr")

	return cmd
}

// Execute runs the root command against the process arguments.
func Execute() error {
	config.LoadEnv()
	return NewRootCmd().Execute()
}

func run(ctx context.Context, cmd *cobra.Command, opts *options, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if opts.faqPath != "" {
		cfg.CSVPath = opts.faqPath
	}
	if opts.source != "" {
		cfg.Source = opts.source
	}

	log := zap.NewNop()
	if opts.verbose {
		if log, err = logger.New(cfg.Env); err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()
	}

	items, err := store.Load(ctx, cfg)
	if err != nil {
		return err
	}

	question := strings.Join(args, " ")
	if len(args) == 0 {
		if question, err = prompt(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
			return err
		}
	}

	answer, err := service.NewFAQService(items, nil, log).Ask(ctx, question)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "\n--- Closest FAQ ---")
	fmt.Fprintf(out, "%s %s\n", questionLabel.Sprint("Q:"), answer.Item.Question)
	fmt.Fprintf(out, "%s %s\n", answerLabel.Sprint("A:"), answer.Item.Answer)
	if opts.showScore {
		fmt.Fprintf(out, "score: %.3f\n", answer.Score)
	}
	return nil
}

func prompt(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, "Enter your question: ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read question: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
