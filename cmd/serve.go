package cmd

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/hh-screener/internal/scoring"
	"github.com/spigell/hh-screener/internal/secrets"
	"github.com/spigell/hh-screener/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scoring API over HTTP",
	Run: func(_ *cobra.Command, _ []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("addr", "a", ":8080", "listen address")
	serveCmd.Flags().String("token-file", "", "file with the bearer token required by the API. Default is no auth.")

	viper.BindPFlag("serve.addr", serveCmd.Flags().Lookup("addr"))
	viper.BindPFlag("serve.token-file", serveCmd.Flags().Lookup("token-file"))
}

func serve() {
	logger, err := newLogger()
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	defer logger.Sync()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	if err := scoring.ValidateThreshold(config.Threshold); err != nil {
		logger.Fatal("invalid default threshold", zap.Error(err))
	}

	serveConfig := config.Serve
	if serveConfig == nil {
		serveConfig = &ServeConfig{Addr: viper.GetString("serve.addr")}
	}

	token, err := secrets.LoadOptional(secrets.Source{
		Name:  "api token",
		Value: serveConfig.Token,
		Env:   envPrefix + "_API_TOKEN",
		File:  serveConfig.TokenFile,
	})
	if err != nil {
		logger.Fatal("loading api token", zap.Error(err),
			zap.String("hint", "set serve.token-file or the "+envPrefix+"_API_TOKEN environment variable"),
		)
	}

	if token == "" {
		logger.Warn("api token is not configured, the scoring api accepts unauthenticated requests")
	}

	if !viper.GetBool("debug") {
		gin.SetMode(gin.ReleaseMode)
	}

	server := web.NewServer(web.Config{
		Threshold: config.Threshold,
		Token:     token,
	}, logger.Named("http"))

	logger.Info("starting the hh-screener api",
		zap.String("version", resolveVersion()),
		zap.Float64("threshold", config.Threshold),
	)

	if err := server.Run(serveConfig.Addr); err != nil {
		logger.Fatal("http server stopped", zap.Error(err))
	}
}
