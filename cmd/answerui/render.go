package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/youssefsiam38/answerui"
	"github.com/youssefsiam38/answerui/citation"
	"github.com/youssefsiam38/answerui/view"
)

type renderOptions struct {
	basePath  string
	markdown  bool
	followups bool
	selected  bool
}

func newRenderCommand() *cobra.Command {
	var opts renderOptions

	command := &cobra.Command{
		Use:   "render [file]",
		Short: "Render an ask response JSON file as an answer fragment",
		Long: "Reads an ask response ({\"answer\", \"thoughts\", \"data_points\"}) from the\n" +
			"file, or stdin when the file is \"-\" or omitted, and writes the HTML fragment.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("os.Open() > %w", err)
				}
				defer f.Close()
				in = f
			}
			return renderAnswer(in, cmd.OutOrStdout(), opts)
		},
	}
	command.Flags().StringVar(&opts.basePath, "base-path", "", "prefix of cited document paths")
	command.Flags().BoolVar(&opts.markdown, "markdown", false, "render the answer body as markdown")
	command.Flags().BoolVar(&opts.followups, "followups", true, "show follow-up questions")
	command.Flags().BoolVar(&opts.selected, "selected", false, "render the answer as selected")
	return command
}

func renderAnswer(in io.Reader, out io.Writer, opts renderOptions) error {
	var raw answerui.Answer
	if err := json.NewDecoder(in).Decode(&raw); err != nil {
		return fmt.Errorf("decode ask response: %w", err)
	}
	a := answerui.NewAnswer(raw.Text, raw.Thoughts, raw.DataPoints)
	a.SupportingContentAvailable = raw.SupportingContentAvailable

	r, err := view.New(&view.Config{
		Resolver:       citation.ContentResolver{BasePath: opts.basePath},
		RenderMarkdown: opts.markdown,
	})
	if err != nil {
		return err
	}

	// Follow-ups render only with a handler; the CLI has no one to notify.
	props := view.Props{
		IsSelected:            opts.selected,
		ShowFollowupQuestions: opts.followups,
		Callbacks: view.Callbacks{
			OnFollowupQuestionClicked: func(string) {},
		},
	}
	_, err = r.RenderAnswer(out, a, props)
	return err
}
