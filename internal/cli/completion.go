package cli

import (
	"github.com/arthur-debert/appsel/pkg/resolver"
	"github.com/spf13/cobra"
)

// completeType completes the single TYPE argument
func (a *app) completeType(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	s, err := a.openSession()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return s.Resolver.Types(), cobra.ShellCompDirectiveNoFileComp
}

// completeApp completes the single APP_ID argument
func (a *app) completeApp(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	s, err := a.openSession()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return s.Catalog.IDs(), cobra.ShellCompDirectiveNoFileComp
}

// completeTypeThenApp completes TYPE APP_ID, offering the candidates of TYPE
// first and every installed application when it has none
func (a *app) completeTypeThenApp(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	s, err := a.openSession()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	switch len(args) {
	case 0:
		return s.Resolver.Types(), cobra.ShellCompDirectiveNoFileComp
	case 1:
		apps := resolver.SortedApps(s.Resolver.SupportedApps(args[0]))
		if len(apps) == 0 {
			apps = s.Catalog.IDs()
		}
		return apps, cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

// completeAppThenTypes completes APP_ID [TYPE...] with the types the
// application handles that are not listed yet
func (a *app) completeAppThenTypes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return a.completeApp(cmd, args, toComplete)
	}
	s, err := a.openSession()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	given := make(map[string]bool, len(args))
	for _, arg := range args[1:] {
		given[arg] = true
	}
	var available []string
	for _, t := range resolver.SortedApps(s.Resolver.SupportedTypes(args[0])) {
		if !given[t] {
			available = append(available, t)
		}
	}
	return available, cobra.ShellCompDirectiveNoFileComp
}
