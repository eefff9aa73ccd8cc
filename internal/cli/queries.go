package cli

import (
	"github.com/arthur-debert/appsel/pkg/core"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func (a *app) newTypesCmd() *cobra.Command {
	var opts core.TypesOptions

	cmd := &cobra.Command{
		Use:     "types",
		Short:   MsgTypesShort,
		Example: MsgTypesExample,
		Args:    cobra.NoArgs,
		GroupID: "query",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openSession()
			if err != nil {
				return err
			}
			log.Info().Bool("user_defined", opts.UserDefined).Str("search", opts.Search).Msg("Listing types")
			return a.render(cmd, s.ListTypes(opts))
		},
	}

	cmd.Flags().BoolVarP(&opts.UserDefined, "user-defined", "u", false, MsgFlagUserDefined)
	cmd.Flags().StringVarP(&opts.Search, "search", "s", "", MsgFlagSearch)

	return cmd
}

func (a *app) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "show TYPE",
		Short:             MsgShowShort,
		Long:              MsgShowLong,
		Args:              cobra.ExactArgs(1),
		GroupID:           "query",
		ValidArgsFunction: a.completeType,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openSession()
			if err != nil {
				return err
			}
			result, err := s.ShowType(args[0])
			if err != nil {
				return err
			}
			return a.render(cmd, result)
		},
	}
}

func (a *app) newAppsCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:     "apps",
		Short:   MsgAppsShort,
		Args:    cobra.NoArgs,
		GroupID: "query",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openSession()
			if err != nil {
				return err
			}
			return a.render(cmd, s.ListApps(all))
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, MsgFlagAll)

	return cmd
}

func (a *app) newAppCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "app APP_ID",
		Short:             MsgAppShort,
		Args:              cobra.ExactArgs(1),
		GroupID:           "query",
		ValidArgsFunction: a.completeApp,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openSession()
			if err != nil {
				return err
			}
			result, err := s.ShowApp(args[0])
			if err != nil {
				return err
			}
			return a.render(cmd, result)
		},
	}
}

func (a *app) newPathsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "paths",
		Short:   MsgPathsShort,
		Args:    cobra.NoArgs,
		GroupID: "query",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openSession()
			if err != nil {
				return err
			}
			return a.render(cmd, s.Paths())
		},
	}
}
