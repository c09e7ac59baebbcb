package tidybin

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

//go:embed docs/*.md
var docsFS embed.FS

func newDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "docs [topic]",
		Short: MsgDocsShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				cmd.Println("Available topics:")
				for _, topic := range listTopics() {
					cmd.Printf("  %s\n", topic)
				}
				return nil
			}

			topic := args[0]
			content, err := docsFS.ReadFile("docs/" + topic + ".md")
			if err != nil {
				return fmt.Errorf("unknown topic %q, run 'tidybin docs' for the list", topic)
			}

			rendered, err := renderMarkdown(string(content))
			if err != nil {
				// Fall back to the raw markdown.
				cmd.Println(string(content))
				return nil
			}
			cmd.Println(rendered)
			return nil
		},
	}
}

func listTopics() []string {
	entries, err := docsFS.ReadDir("docs")
	if err != nil {
		return nil
	}
	topics := make([]string, 0, len(entries))
	for _, entry := range entries {
		topics = append(topics, strings.TrimSuffix(entry.Name(), ".md"))
	}
	sort.Strings(topics)
	return topics
}

func renderMarkdown(content string) (string, error) {
	options := []glamour.TermRendererOption{
		glamour.WithWordWrap(100),
	}
	if termenv.EnvNoColor() {
		options = append(options, glamour.WithStandardStyle("notty"))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return "", err
	}
	return renderer.Render(content)
}
