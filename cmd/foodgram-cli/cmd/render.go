package cmd

import (
	"fmt"

	"github.com/nfrund/foodgram/internal/rendering"
	"github.com/nfrund/foodgram/internal/view"
	"github.com/nfrund/foodgram/web/src/templates/layouts"
	"github.com/nfrund/foodgram/web/src/templates/pages"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	renderOut      string
	renderFragment bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the technologies page as HTML",
	Long: `Render the technologies page and print it to stdout, or write it to the
file given with --out. With --fragment only the page content is rendered,
without the surrounding document.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var component interface{} = pages.Technologies()
		if !renderFragment {
			meta, err := pages.TechnologiesPageMeta(baseURL)
			if err != nil {
				return err
			}
			component = layouts.Base(meta, view.AdaptGomponentToTempl(pages.Technologies()))
		}

		body, err := rendering.NewUniversalRenderer().RenderComponent(cmd.Context(), component)
		if err != nil {
			return err
		}

		if renderOut == "" {
			_, err = cmd.OutOrStdout().Write(body)
			return err
		}
		if err := afero.WriteFile(appFs, renderOut, body, 0644); err != nil {
			return fmt.Errorf("write %s: %w", renderOut, err)
		}
		printer().Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", renderOut, len(body))
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "write the HTML to this file instead of stdout")
	renderCmd.Flags().BoolVar(&renderFragment, "fragment", false, "render only the page content")
	rootCmd.AddCommand(renderCmd)
}
