// Package cmd provides the root command and CLI setup for fastgen.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"fastgen.dev/pkg/fastgen/internal/adapter"
	"fastgen.dev/pkg/fastgen/internal/controller"
	"fastgen.dev/pkg/fastgen/internal/domain"
	m "fastgen.dev/pkg/fastgen/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var generatorAdapter adapter.GeneratorAdapter
var abiAdapter adapter.ABIAdapter

// workflow, when set, replaces the workflow built for each command.
var workflow domain.Workflow

// Flag targets; the values are read back through viper so config and env
// feed them too.
var (
	directivesFlag       string
	baseDirFlag          string
	markerFlag           string
	generatorFlag        string
	sourceExtFlag        string
	outExtFlag           string
	skipFlag             []string
	strictDuplicatesFlag bool
	verboseFlag          bool
	logFileFlag          string

	generatorArgsFlag []string
	dryRunFlag        bool
	diffFlag          bool
	verifyABIFlag     bool
)

func init() {
	configureRootFlags(rootCmd)
	configureGenerateFlags(rootCmd)

	// Initialize shared dependencies.
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	generatorAdapter = adapter.NewLocalGeneratorAdapter(adapter.DefaultGenerator)
	abiAdapter = adapter.NewLocalABIAdapter(fsAdapter)
}

const rootLongDescription = `fastgen regenerates the Go bindings of selected contract wrapper packages.

It reads the wrapper directives in go_generate.go, finds the contract source
each package is generated from and runs abigen for the packages you name,
writing generated/<package>/<package>.go next to the directive file.

Run it without arguments to see the packages you can build. Packages named
list, init, version, help or completion cannot be generated: those names run
the subcommand of the same name.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "fastgen [packages...]",
		Short:         "Quickly regenerate contract wrapper packages",
		Long:          rootLongDescription,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if configErr != nil {
				return configErr
			}

			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			wf := workflowFor(cmd)

			locations, catalog, err := loadCatalog(ctx, wf)
			if err != nil {
				return err
			}

			return wf.Generate(ctx, catalog, domain.GenerateArgs{
				Packages:      args,
				Directives:    locations.directives,
				BaseDir:       locations.baseDir,
				OutExt:        viper.GetString(outExtKey),
				Generator:     viper.GetString(generatorKey),
				GeneratorArgs: viper.GetStringSlice(generatorArgsKey),
				DryRun:        dryRunFlag,
				Diff:          diffFlag,
				VerifyABI:     verifyABIFlag,
			})
		},
	}
}

// newRootCmd builds a fresh root command with its flags, for tests and
// embedding.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)
	configureGenerateFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVarP(&directivesFlag, directivesFlagName, "d", viper.GetString(directivesKey), "directive file to scan (default: "+defaultDirectivesFile+" in the working directory or a parent)")
	bindFlagToConfig(flags.Lookup(directivesFlagName), directivesKey)

	flags.StringVar(&baseDirFlag, baseDirFlagName, viper.GetString(baseDirKey), "directory directive paths are relative to and generated/ is written under (default: the directive file's directory)")
	bindFlagToConfig(flags.Lookup(baseDirFlagName), baseDirKey)

	flags.StringVar(&markerFlag, markerFlagName, viper.GetString(markerKey), "command text that identifies a wrapper directive")
	bindFlagToConfig(flags.Lookup(markerFlagName), markerKey)

	flags.StringVar(&generatorFlag, generatorFlagName, viper.GetString(generatorKey), "binding generator executable")
	bindFlagToConfig(flags.Lookup(generatorFlagName), generatorKey)

	flags.StringVar(&sourceExtFlag, sourceExtFlagName, viper.GetString(sourceExtKey), "extension of contract source files")
	bindFlagToConfig(flags.Lookup(sourceExtFlagName), sourceExtKey)

	flags.StringVar(&outExtFlag, outExtFlagName, viper.GetString(outExtKey), "extension of generated binding files")
	bindFlagToConfig(flags.Lookup(outExtFlagName), outExtKey)

	flags.StringArrayVar(&skipFlag, skipFlagName, viper.GetStringSlice(skipKey), "contract source file name left out of the catalog (can be repeated)")
	bindFlagToConfig(flags.Lookup(skipFlagName), skipKey)

	flags.BoolVar(&strictDuplicatesFlag, strictDuplicatesFlagName, viper.GetBool(strictDuplicatesKey), "fail when two directives declare the same package")
	bindFlagToConfig(flags.Lookup(strictDuplicatesFlagName), strictDuplicatesKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)

	flags.StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)
}

func configureGenerateFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.BoolVarP(&dryRunFlag, dryRunFlagName, "n", false, "print the generator commands without running them")
	flags.BoolVar(&diffFlag, diffFlagName, false, "show how the generated bindings changed")
	flags.BoolVar(&verifyABIFlag, verifyABIFlagName, false, "parse each ABI file before generating")

	flags.StringArrayVar(&generatorArgsFlag, generatorArgFlagName, viper.GetStringSlice(generatorArgsKey), "extra argument passed to the generator before -sol (can be repeated)")
	bindFlagToConfig(flags.Lookup(generatorArgFlagName), generatorArgsKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// workflowFor wires the shared adapters to a UI writing to cmd's output.
func workflowFor(cmd *cobra.Command) domain.Workflow {
	if workflow != nil {
		return workflow
	}

	return domain.NewWorkflow(
		fsAdapter,
		generatorAdapter,
		abiAdapter,
		controller.NewUI(cmd, cmd.OutOrStdout() == os.Stdout && controller.IsTTY(os.Stdout)),
	)
}

type locations struct {
	directives m.Path
	baseDir    m.Path
}

// resolveLocations finds the directive file and the base directory,
// searching upwards from the working directory when none is configured.
func resolveLocations() (locations, error) {
	directives := strings.TrimSpace(viper.GetString(directivesKey))
	if directives == "" {
		wd, err := os.Getwd()
		if err != nil {
			return locations{}, fmt.Errorf("get working directory: %w", err)
		}

		root, err := fsAdapter.FindDirectivesRoot(m.Path(wd), defaultDirectivesFile)
		if err != nil {
			return locations{}, err
		}

		directives = filepath.Join(string(root), defaultDirectivesFile)
	}

	directives, err := filepath.Abs(directives)
	if err != nil {
		return locations{}, fmt.Errorf("resolve %s: %w", directives, err)
	}

	baseDir := strings.TrimSpace(viper.GetString(baseDirKey))
	if baseDir == "" {
		baseDir = filepath.Dir(directives)
	}

	baseDir, err = filepath.Abs(baseDir)
	if err != nil {
		return locations{}, fmt.Errorf("resolve %s: %w", baseDir, err)
	}

	return locations{directives: m.Path(directives), baseDir: m.Path(baseDir)}, nil
}

func loadCatalog(ctx context.Context, wf domain.Workflow) (locations, *m.Catalog, error) {
	loc, err := resolveLocations()
	if err != nil {
		return locations{}, nil, err
	}

	catalog, err := wf.BuildCatalog(ctx, domain.CatalogArgs{
		Directives: loc.directives,
		BaseDir:    loc.baseDir,
		Marker:     viper.GetString(markerKey),
		Resolver: domain.ResolverOptions{
			SourceExt: viper.GetString(sourceExtKey),
			Skip:      viper.GetStringSlice(skipKey),
		},
		StrictDuplicates: viper.GetBool(strictDuplicatesKey),
	})
	if err != nil {
		return locations{}, nil, err
	}

	return loc, catalog, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err == nil {
		return
	}

	// The usage screen has already been printed.
	if !errors.Is(err, domain.ErrUsage) {
		rootCmd.PrintErrln("Error:", err)
	}

	os.Exit(1)
}
