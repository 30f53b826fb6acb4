package cli

import (
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/ads-insights-gateway/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-insights-gateway/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-insights-gateway/internal/config"
	"github.com/vfg2006/ads-insights-gateway/internal/usecases/insighting"
	"gopkg.in/yaml.v3"
)

const appName = "report"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type GlobalFlags struct {
	Output string
	Token  string
	Debug  bool
}

// ReporterFactory monta o Reporter e devolve o token a ser usado nas consultas
type ReporterFactory func(flags *GlobalFlags) (insighting.Reporter, string, error)

func Execute() error {
	return NewRootCommand(defaultReporterFactory).Execute()
}

func NewRootCommand(factory ReporterFactory) *cobra.Command {
	flags := &GlobalFlags{}

	cmd := &cobra.Command{
		Use:               appName,
		Short:             "Meta Ads insights reports",
		Long:              "Runs the gateway reports (spend, campaigns, ads) directly against the configured ad account.",
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: validateGlobalFlags(flags),
	}

	cmd.PersistentFlags().StringVar(&flags.Output, "output", "json", "Output format: json|yaml")
	cmd.PersistentFlags().StringVar(&flags.Token, "token", "", "Meta access token (defaults to META_ACCESS_TOKEN)")
	cmd.PersistentFlags().BoolVar(&flags.Debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(newSpendCommand(flags, factory))
	cmd.AddCommand(newCampaignsCommand(flags, factory))
	cmd.AddCommand(newAdsCommand(flags, factory))

	return cmd
}

func validateGlobalFlags(flags *GlobalFlags) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, _ []string) error {
		if flags.Debug {
			logrus.SetLevel(logrus.DebugLevel)
		}

		switch flags.Output {
		case "json", "yaml":
			return nil
		default:
			return WrapExit(ExitCodeInput, fmt.Errorf("invalid --output value %q; expected json|yaml", flags.Output))
		}
	}
}

func defaultReporterFactory(flags *GlobalFlags) (insighting.Reporter, string, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, "", WrapExit(ExitCodeConfig, err)
	}

	if err := cfg.ValidateMeta(); err != nil {
		return nil, "", WrapExit(ExitCodeConfig, err)
	}

	token := flags.Token
	if token == "" {
		token = cfg.Meta.AccessToken
	}
	if token == "" {
		return nil, "", WrapExit(ExitCodeConfig, fmt.Errorf("no access token: set META_ACCESS_TOKEN or pass --token"))
	}

	client := metaclient.NewClient(cfg, &http.Client{})
	return insighting.NewService(meta.New(cfg, client)), token, nil
}

func writeOutput(w io.Writer, format string, payload any) error {
	switch format {
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(payload); err != nil {
			return err
		}
		return encoder.Close()
	default:
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
}
