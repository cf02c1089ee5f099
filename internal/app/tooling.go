package app

import (
	"context"
	"fmt"

	apperrors "github.com/agbru/questbench/internal/errors"
	"github.com/agbru/questbench/internal/quest"
	"github.com/agbru/questbench/internal/scaffold"
	"github.com/agbru/questbench/internal/ui"
)

// Scaffold creates the solution module and data files for a day.
func (a *Application) Scaffold(day quest.Day, overwrite bool) error {
	res, err := scaffold.Day(day, scaffold.Options{Overwrite: overwrite})
	if err != nil {
		return err
	}
	theme := ui.Current()
	fmt.Fprintf(a.Out, "%s\n", theme.Success.Render("✓ Created module file "+res.ModulePath))
	fmt.Fprintf(a.Out, "%s\n", theme.Success.Render("✓ Created test file "+res.TestPath))
	for _, p := range res.DataPaths {
		fmt.Fprintf(a.Out, "%s\n", theme.Muted.Render("  created "+p))
	}
	fmt.Fprintf(a.Out, "Run `questbench solve %d` once the parts are implemented.\n", day.Int())
	return nil
}

// Download fetches the puzzle content for a day into the data tree via
// ec-cli.
func (a *Application) Download(ctx context.Context, day quest.Day) error {
	if err := a.EC.Check(ctx); err != nil {
		return apperrors.NewConfigError("%v", err)
	}
	if err := a.EC.Download(ctx, day, a.Config.DataDir); err != nil {
		return apperrors.WrapError(err, "download day %s", day)
	}
	fmt.Fprintf(a.Out, "%s\n", ui.Current().Success.Render(
		fmt.Sprintf("✓ Downloaded inputs, samples and descriptions for day %s.", day)))
	return nil
}

// Read opens the puzzle description for a day via ec-cli.
func (a *Application) Read(ctx context.Context, day quest.Day) error {
	if err := a.EC.Check(ctx); err != nil {
		return apperrors.NewConfigError("%v", err)
	}
	return a.EC.Read(ctx, day)
}
