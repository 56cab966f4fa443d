package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/sexpr/cli/cmd"
	"github.com/ardnew/sexpr/pkg"
)

// CLI is the top-level command-line interface for sexpr.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Lang  langConfig  `embed:"" group:"lang"  prefix:"lang-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Source []string `help:"Program source file(s) or '-' for stdin" name:"source" short:"s" type:"existingfile"`

	Run     cmd.Run     `cmd:"" default:"withargs" help:"Run programs from source files"`
	Eval    cmd.Eval    `cmd:""                    help:"Evaluate statements given as arguments"`
	Serve   cmd.Serve   `cmd:""                    help:"Serve programs over HTTP"`
	Repl    cmd.Repl    `cmd:""                    help:"Start an interactive session"`
	Init    cmd.Init    `cmd:""                    help:"Initialize configuration file"`
	Version cmd.Version `cmd:""                    help:"Print version information"`
}

// Run executes the sexpr CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	configFilePath := configPath(baseConfig)

	vars := kong.Vars{
		cmd.ConfigIdentifier: configFilePath + yamlExt,
		cmd.CacheIdentifier:  cacheDir(),
	}.
		CloneWith(cmd.Vars()).
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Lang.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Boolean logger flags do not pass through TextUnmarshaler, so apply
	// them before kong reports any parse error.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Lang.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configFilePath+jsonExt),
		kong.Configuration(resolve(baseConfig), configFilePath+yamlExt),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithSourceFiles(ctx, cli.Source)
	ctx = cmd.WithScriptPath(ctx, scriptPath())

	// TimeLayout and Caller are applied only once parsing completes.
	defer cli.Log.start(ctx)()

	ctx = cmd.WithOptions(ctx, cli.Lang.options()...)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx, ktx.Command())()

	return ktx.Run(ctx, &cli)
}
