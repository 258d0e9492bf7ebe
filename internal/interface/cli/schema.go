package cli

import (
	"encoding/json"
	"fmt"

	"github.com/YoshitsuguKoike/verve/internal/application/dto"
	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"
)

// reportSchema returns the JSON Schema of the analyze --format json report
func reportSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: false,
	}
	schema := reflector.Reflect(&dto.AnalyzeEntryOutput{})
	schema.Title = "verve analysis report"
	return schema
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the JSON analysis report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := json.MarshalIndent(reportSchema(), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode schema: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}
