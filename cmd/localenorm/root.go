package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"localenorm/internal/application"
	"localenorm/internal/config"
	"localenorm/internal/infrastructure/i18n"
	"localenorm/internal/infrastructure/localefile"
)

type flags struct {
	dir           string
	locales       string
	atomic        bool
	transactional bool
	verify        bool
	verbosity     int
}

func newRootCmd() *cobra.Command {
	var f flags

	root := &cobra.Command{
		Use:   "localenorm",
		Short: "Normalize active.<tag>.toml locale files",
		Long: "Rewrite each locale file with one `key = \"value\"` line per entry, " +
			"keys sorted, duplicates and hash lines dropped.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, cfg, err := setup(cmd, &f)
			if err != nil {
				return err
			}
			_, err = svc.NormalizeAll(cmd.Context(), cfg.Locales)
			return err
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&f.dir, "dir", "d", "", "directory holding the locale files (env "+config.EnvDir+")")
	pf.StringVarP(&f.locales, "locales", "l", "", "comma separated locale tags, in processing order (env "+config.EnvLocales+")")
	pf.BoolVar(&f.atomic, "atomic", true, "write through a temporary file renamed over the target; keeps permissions but not ownership, symlinks are rewritten in place (env "+config.EnvAtomic+")")
	pf.BoolVar(&f.transactional, "transactional", false, "read every locale before writing any (env "+config.EnvTransactional+")")
	pf.BoolVar(&f.verify, "verify", false, "check normalized output loads as a go-i18n message file (env "+config.EnvVerify+")")
	pf.CountVarP(&f.verbosity, "verbosity", "v", "issue INFO (-v) and DEBUG (-vv) output")

	root.AddCommand(newCheckCmd(&f))
	return root
}

func newCheckCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report locale files that are not normalized, without writing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f.verify = true
			svc, cfg, err := setup(cmd, f)
			if err != nil {
				return err
			}
			_, err = svc.CheckAll(cmd.Context(), cfg.Locales)
			return err
		},
	}
}

// setup lit l'environnement, applique les drapeaux explicitement fournis, puis
// valide le tout une seule fois avant de construire le service.
func setup(cmd *cobra.Command, f *flags) (*application.NormalizerService, *config.Config, error) {
	setVerboseMode(f.verbosity)

	cfg, err := config.FromEnv()
	if err != nil {
		return nil, nil, err
	}

	pf := cmd.Flags()
	if pf.Changed("dir") {
		cfg.Dir = f.dir
	}
	if pf.Changed("locales") {
		cfg.Locales = config.SplitLocales(f.locales)
	}
	if pf.Changed("atomic") {
		cfg.Atomic = f.atomic
	}
	if pf.Changed("transactional") {
		cfg.Transactional = f.transactional
	}
	if pf.Changed("verify") || f.verify {
		cfg.Verify = f.verify
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	logrus.Debugf("configuration: %+v", *cfg)

	opts := []application.Option{application.WithTransactional(cfg.Transactional)}
	if cfg.Verify {
		opts = append(opts, application.WithVerifier(i18n.NewVerifier("en")))
	}

	store := localefile.NewStore(cfg.Dir, cfg.Atomic)
	return application.NewNormalizerService(store, opts...), cfg, nil
}

// setVerboseMode : une exécution réussie reste silencieuse sans -v.
func setVerboseMode(level int) {
	switch level {
	case 0:
		logrus.SetLevel(logrus.WarnLevel)
	case 1:
		logrus.SetLevel(logrus.InfoLevel)
	default:
		logrus.SetLevel(logrus.DebugLevel)
	}
}
