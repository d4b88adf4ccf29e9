package cmd

import (
	"fmt"
	"io/fs"

	"github.com/nfrund/foodgram/internal/assets"
	"github.com/nfrund/foodgram/internal/export"
	"github.com/nfrund/foodgram/internal/rendering"
	"github.com/nfrund/foodgram/web"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	exportDir    string
	exportPublic string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the whole site as static files",
	Long: `Render every page to <dir>/<page>/index.html, copy the embedded stylesheets
to <dir>/static and the page images from the public directory to <dir>.
Missing images are reported but do not fail the export.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		static, err := fs.Sub(web.FS, "static")
		if err != nil {
			return err
		}
		resolver := assets.NewResolver(afero.NewBasePathFs(appFs, exportPublic))

		x := export.New(appFs, rendering.NewUniversalRenderer(), resolver, static, baseURL)
		res, err := x.Export(cmd.Context(), exportDir, export.Pages)
		if err != nil {
			return err
		}

		for _, f := range res.Files {
			fmt.Fprintln(cmd.OutOrStdout(), f)
		}
		for _, name := range res.MissingAssets {
			cmd.PrintErrf("missing asset: %s\n", name)
		}
		printer().Fprintf(cmd.OutOrStdout(), "Exported %d files to %s\n", len(res.Files), exportDir)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportDir, "dir", "dist", "output directory")
	exportCmd.Flags().StringVar(&exportPublic, "public", "web/public", "directory holding the public assets")
	rootCmd.AddCommand(exportCmd)
}
