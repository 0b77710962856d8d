package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spec-kit/department-dto/internal/service"
)

// NewRootCommand builds the dtosample command tree around the department service.
func NewRootCommand(departments *service.DepartmentService) *cobra.Command {
	root := &cobra.Command{
		Use:   "dtosample",
		Short: "Build and compare department JSON documents",
		Long: `dtosample exercises the department DTO operations from the command line.

EXAMPLES:
  dtosample json IT --head Miller          # {"name":"IT","head":{"name":"Miller"}}
  dtosample json IT                        # {"name":"IT","head":null}
  dtosample matches '{"name":"IT"}' ' {"name":"IT","head":null} '
  dtosample describe IT --head "John Doe"`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newJSONCommand(departments),
		newMatchesCommand(departments),
		newDescribeCommand(departments),
	)
	return root
}

func newJSONCommand(departments *service.DepartmentService) *cobra.Command {
	var head string
	cmd := &cobra.Command{
		Use:   "json DEPARTMENT",
		Short: "Print the canonical JSON of a department",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := departments.DepartmentJSON(cmd.Context(), args[0], optionalFlag(cmd, "head", head))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringVar(&head, "head", "", "name of the department head")
	return cmd
}

func newMatchesCommand(departments *service.DepartmentService) *cobra.Command {
	return &cobra.Command{
		Use:   "matches JSON OTHER_JSON",
		Short: "Report whether two department documents describe the same department",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			matches, err := departments.DeserializedDepartmentJSONMatches(args[0], args[1])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), matches)
			return err
		},
	}
}

func newDescribeCommand(departments *service.DepartmentService) *cobra.Command {
	var head string
	cmd := &cobra.Command{
		Use:   "describe DEPARTMENT",
		Short: "Name the head of a department",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := departments.DescribeDepartment(args[0], optionalFlag(cmd, "head", head))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringVar(&head, "head", "", "name of the department head")
	return cmd
}

// optionalFlag distinguishes an unset flag from one explicitly set to "".
func optionalFlag(cmd *cobra.Command, name, value string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}
