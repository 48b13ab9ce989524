package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/ardnew/commander/cli/cmd"
	"github.com/ardnew/commander/pkg"
	"github.com/ardnew/commander/table"
)

// CLI is the top-level command-line interface for commander.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version   kong.VersionFlag `help:"Print version and exit"                                         short:"V"`
	TablePath string           `default:"."                     help:"Directories searched for option tables, separated by '${sep}'" placeholder:"DIRS"`

	Parse cmd.Parse `cmd:"" default:"withargs" help:"Parse arguments against an option table"`
	Usage cmd.Usage `cmd:""                    help:"Print help generated from an option table"`
	Init  cmd.Init  `cmd:""                    help:"Write the sample option table or a configuration file"`
	Repl  cmd.Repl  `cmd:""                    help:"Explore an option table interactively"`
}

// configFile is the base name of the YAML configuration file. A JSON file
// of the same name with a ".json" extension is also read.
const configFile = "config.yaml"

// Run executes the commander CLI with the given context and arguments.
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

	configPath := filepath.Join(pkg.ConfigDir(), configFile)
	app := pkg.App()

	vars := kong.Vars{
		cmd.ConfigIdentifier: configPath,
		cmd.CacheIdentifier:  pkg.CacheDir(),
		cmd.TablesIdentifier: table.DefaultDir(),
		"version":            app.Name + " " + app.Version,
		"sep":                string(os.PathListSeparator),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.DefaultEnvars(pkg.EnvPrefix()),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				FlagsLast:           false,
				NoAppSummary:        false,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, pathWithExt(configPath, ".json")),
		kong.Configuration(resolveYAML(ctx), configPath),
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
	ctx = cmd.WithSearchPath(ctx,
		table.SearchPath(table.DefaultDir(), filepath.SplitList(cli.TablePath)...))

	cli.Log.start(ctx)

	// no-op unless built with tag pprof and a mode is selected
	defer cli.Pprof.start(ctx)()

	return ktx.Run(ctx, &cli)
}

func pathWithExt(path, ext string) string {
	return path[:len(path)-len(filepath.Ext(path))] + ext
}

// mkdirAllRequired creates the config and cache directories.
func mkdirAllRequired() error {
	for _, dir := range []string{pkg.ConfigDir(), pkg.CacheDir()} {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return pkg.ErrMakeDir.Wrap(err)
		}
	}

	return nil
}
