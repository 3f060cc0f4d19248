package imprint

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/templatekit/imprint/pkg/config"
	"github.com/templatekit/imprint/pkg/errors"
	"github.com/templatekit/imprint/pkg/logging"
	"github.com/templatekit/imprint/pkg/setup"
)

func newSetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "setup",
		Short:   MsgSetupShort,
		Long:    MsgSetupLong,
		Example: MsgSetupExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetup(cmd)
		},
	}
}

// runSetup resolves flags and configuration, then hands off to the
// setup package. Shared by the bare root command and "imprint setup".
func runSetup(cmd *cobra.Command) error {
	logger := logging.GetLogger("cmd.setup")

	flags := cmd.Root().PersistentFlags()
	rootDir, _ := flags.GetString("root")
	answersFile, _ := flags.GetString("answers")
	noInput, _ := flags.GetBool("no-input")

	if rootDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "cannot determine working directory")
		}
		rootDir = wd
	}
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, "invalid project root %s", rootDir)
	}
	if info, err := os.Stat(absRoot); err != nil || !info.IsDir() {
		return errors.Newf(errors.ErrNotFound, "project root %s is not a directory", absRoot)
	}

	overrides := map[string]interface{}{}
	if noInput {
		overrides["noninteractive"] = true
	}

	cfg, err := config.Load(config.LoadOptions{
		Root:        absRoot,
		AnswersFile: answersFile,
		Overrides:   overrides,
	})
	if err != nil {
		return fmt.Errorf(MsgErrLoadConfig, err)
	}

	// The removal step deletes the running binary itself.
	selfPath := ""
	if exe, err := os.Executable(); err == nil {
		selfPath = exe
	}

	logger.Info().
		Str("root", absRoot).
		Bool("noInput", cfg.NonInteractive).
		Str("answersFile", answersFile).
		Msg("Executing setup command")

	result, err := setup.Run(cmd.Context(), setup.Options{
		RootDir:  absRoot,
		Config:   cfg,
		In:       cmd.InOrStdin(),
		Out:      cmd.OutOrStdout(),
		SelfPath: selfPath,
	})
	if err != nil {
		return fmt.Errorf(MsgErrSetup, err)
	}

	logger.Info().
		Int("filesModified", result.FilesModified).
		Int("referencesFixed", result.ReferencesFixed).
		Str("gitInit", string(result.GitInit)).
		Str("installHooks", string(result.InstallHooks)).
		Str("removeSelf", string(result.RemoveSelf)).
		Msg("Setup command finished")

	return nil
}
