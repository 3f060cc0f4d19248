package imprint

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/templatekit/imprint/pkg/catalog"
	"github.com/templatekit/imprint/pkg/errors"
	"github.com/templatekit/imprint/pkg/style"
)

func newVarsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vars",
		Short:   MsgVarsShort,
		Long:    MsgVarsLong,
		Example: MsgVarsExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			return printVars(cmd.OutOrStdout(), catalog.Default(), format)
		},
	}

	cmd.Flags().StringP("format", "f", "text", MsgFlagFormat)

	return cmd
}

// printVars writes the catalog in the requested format. Text output is
// for humans; json and yaml are stable shapes for tooling.
func printVars(w io.Writer, cat catalog.Catalog, format string) error {
	switch format {
	case "text":
		for _, def := range cat.Definitions() {
			name := def.Name
			if style.CanStyle(w) {
				name = style.Bold(name)
			}
			fmt.Fprintf(w, "%s\n  %s\n  default: %s\n\n", name, def.Description, def.Default)
		}
		return nil

	case "json":
		data, err := json.MarshalIndent(cat.Definitions(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
		return nil

	case "yaml":
		data, err := yaml.Marshal(cat.Definitions())
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err

	default:
		return errors.Newf(errors.ErrInvalidInput, MsgErrVarsFormat, format)
	}
}
