package cli

import (
	"github.com/arthur-debert/appsel/pkg/core"
	"github.com/arthur-debert/appsel/pkg/display"
	"github.com/spf13/cobra"
)

// pairMutation is a session operation taking TYPE APP_ID
type pairMutation func(s *core.Session, contentType, appID string) (*display.MutationResult, error)

func (a *app) newPairCmd(use, short, long, example string, mutate pairMutation) *cobra.Command {
	return &cobra.Command{
		Use:               use + " TYPE APP_ID",
		Short:             short,
		Long:              long,
		Example:           example,
		Args:              cobra.ExactArgs(2),
		GroupID:           "edit",
		ValidArgsFunction: a.completeTypeThenApp,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openSession()
			if err != nil {
				return err
			}
			result, err := mutate(s, args[0], args[1])
			if err != nil {
				return err
			}
			return a.render(cmd, result)
		},
	}
}

func (a *app) newSetDefaultCmd() *cobra.Command {
	return a.newPairCmd(core.ActionSetDefault, MsgSetDefaultShort, MsgSetDefaultLong, MsgSetDefaultExample,
		(*core.Session).SetDefault)
}

func (a *app) newAddCmd() *cobra.Command {
	return a.newPairCmd(core.ActionAdd, MsgAddShort, "", "", (*core.Session).AddAssociation)
}

func (a *app) newRemoveCmd() *cobra.Command {
	return a.newPairCmd(core.ActionRemove, MsgRemoveShort, "", "", (*core.Session).RemoveAssociation)
}

func (a *app) newDisableCmd() *cobra.Command {
	return a.newPairCmd(core.ActionDisable, MsgDisableShort, MsgDisableLong, "", (*core.Session).DisableAssociation)
}

func (a *app) newEnableCmd() *cobra.Command {
	return a.newPairCmd(core.ActionEnable, MsgEnableShort, MsgDisableLong, "", (*core.Session).EnableAssociation)
}

func (a *app) newClearDefaultCmd() *cobra.Command {
	return &cobra.Command{
		Use:               core.ActionClearDefault + " TYPE",
		Short:             MsgClearDefaultShort,
		Args:              cobra.ExactArgs(1),
		GroupID:           "edit",
		ValidArgsFunction: a.completeType,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openSession()
			if err != nil {
				return err
			}
			result, err := s.ClearDefault(args[0])
			if err != nil {
				return err
			}
			return a.render(cmd, result)
		},
	}
}

func (a *app) newSetDefaultsByAppCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "set-defaults-by-app APP_ID [TYPE...]",
		Short:             MsgSetDefaultsByAppShort,
		Long:              MsgSetDefaultsByAppLong,
		Example:           MsgSetDefaultsByAppExample,
		Args:              cobra.MinimumNArgs(1),
		GroupID:           "edit",
		ValidArgsFunction: a.completeAppThenTypes,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openSession()
			if err != nil {
				return err
			}
			result, err := s.SetDefaultsByApp(args[0], args[1:])
			if result != nil && len(result.Results) > 0 {
				if rerr := a.render(cmd, result); rerr != nil && err == nil {
					err = rerr
				}
			}
			return err
		},
	}
}
