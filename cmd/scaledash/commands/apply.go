package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/scaledash/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Validate and submit scaling definitions",
		Long: "Validate a multi-document YAML file and submit it.\n" +
			"Use -f - to read from standard input.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, _ := cmd.Flags().GetString("file")

			doc, err := readDocument(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}

			result, err := c.app.Apply(cmd.Context(), doc)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), result.Response)
		},
	}

	cmd.Flags().StringP("file", "f", "", "Definition file to submit (- for stdin)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func readDocument(stdin io.Reader, file string) (domain.DefinitionDocument, error) {
	var (
		data []byte
		err  error
	)
	if file == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to read definition file"), "file", file)
	}
	return domain.DefinitionDocument(data), nil
}
