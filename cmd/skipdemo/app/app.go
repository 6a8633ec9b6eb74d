package app

import (
	"Skipdex/cmd/skipdemo/app/options"
	"Skipdex/pkg/util/app"
)

const commandDesc = `exercise the skip list ordered index and the employee record store built on it`

func New(basename string) *app.App {
	opts := options.New()
	application := app.NewApp(
		basename,
		app.WithOptions(opts),
		app.WithDescription(commandDesc),
		app.WithConfiguration(opts),
		app.WithRunFunc(run(opts)),
	)
	return application
}

func run(opts *options.Options) app.RunFunc {
	return func(basename string) error {
		if err := runListDemo(opts); err != nil {
			return err
		}
		if opts.Employees {
			return runEmployeeDemo(opts)
		}
		return nil
	}
}
