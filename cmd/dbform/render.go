package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-dbform/pkg/tags"
)

func newRenderCmd(a *app) *cobra.Command {
	var pageURL string
	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Expand the form tags in a page and print the HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read page: %w", err)
			}
			renderer := tags.New(tags.WithValidationScript(a.cfg.Site.ValidationScript))
			html, err := renderer.RenderString(cmd.Context(), string(src), tags.Page{URL: pageURL})
			if err != nil {
				return fmt.Errorf("render %s: %w", args[0], err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), html)
			return err
		},
	}
	cmd.Flags().StringVar(&pageURL, "url", "/", "page URL used as the form action")
	return cmd
}
