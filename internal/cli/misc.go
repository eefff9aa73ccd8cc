package cli

import (
	"fmt"

	"github.com/arthur-debert/appsel/internal/version"
	"github.com/arthur-debert/appsel/pkg/errors"
	"github.com/spf13/cobra"
)

func (a *app) newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics [NAME]",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "misc",
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if a.topics == nil || len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return a.topics.ListTopics(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.topics == nil {
				return errors.New(errors.ErrInternal, "help topics are not available")
			}
			if len(args) == 0 {
				a.topics.WriteIndex(cmd.OutOrStdout(), cmd.Root().Name())
				return nil
			}
			topic, ok := a.topics.GetTopic(args[0])
			if !ok {
				return errors.Newf(errors.ErrNotFound, MsgErrUnknownTopic, args[0]).
					WithDetail("topic", args[0])
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), a.topics.Render(topic))
			return err
		},
	}
}

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Long:    MsgVersionLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}

func (a *app) newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
