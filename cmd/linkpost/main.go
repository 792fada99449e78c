// Package main provides the linkpost CLI entry point.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/cqroot/prompt"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"linkpost/internal/builder"
	"linkpost/internal/config"
	"linkpost/internal/display"
	"linkpost/internal/publish"
)

var version = "0.1.0"

func main() {
	// A .env file in the working directory supplies defaults for the
	// LINKPOST_* variables; absence is not an error.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd creates the root command for the linkpost CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "linkpost",
		Short: "Generate and publish blog posts from RSS feeds",
		Long: `Linkpost fetches an RSS or Atom feed, keeps the entries updated within
the configured timespan, renders them into a Markdown "assorted links"
post, and publishes the post by committing it to a blog content repository.

Every flag can also be set through the environment, e.g.:

  --blog-repo => LINKPOST_BLOG_REPO
  --timespan  => LINKPOST_TIMESPAN`,
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd)
		},
	}

	cmd.SetVersionTemplate("linkpost version {{.Version}}\n")

	flags := cmd.Flags()
	flags.String("rss-url", "", "URL of the RSS feed")
	flags.String("rss-path", "", "path to a local RSS file")
	flags.Int("max-links", 0, "maximum number of links to include (0 means unlimited)")
	flags.String("timespan", config.DefaultTimespan, "timespan in days for filtering posts")
	flags.String("blog-repo", "", "git repository URL (with token if needed)")
	flags.String("blog-repo-branch", config.DefaultBranch, "git repository branch")
	flags.String("path-to-post", config.DefaultPathToPost, "path where posts should be saved")
	flags.Bool("no-interactive", false, "skip confirmation before posting")
	flags.BoolP("verbose", "v", false, "enable debug logging")

	viper.SetEnvPrefix("LINKPOST")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlags(flags)

	return cmd
}

// run builds the configuration, assembles the pipeline, and executes it once.
func run(cmd *cobra.Command) error {
	log := logrus.New()
	if viper.GetBool("verbose") {
		log.SetLevel(logrus.DebugLevel)
	}

	cfg := config.Config{
		FeedURL:        viper.GetString("rss-url"),
		FeedPath:       viper.GetString("rss-path"),
		MaxLinks:       viper.GetInt("max-links"),
		Timespan:       viper.GetString("timespan"),
		BlogRepo:       viper.GetString("blog-repo"),
		BlogRepoBranch: viper.GetString("blog-repo-branch"),
		PathToPost:     viper.GetString("path-to-post"),
		NoInteractive:  viper.GetBool("no-interactive"),
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	publisher := publish.NewPublisher(cfg, publish.WithLogger(log))

	opts := []builder.Option{builder.WithLogger(log)}
	if !cfg.NoInteractive {
		opts = append(opts, builder.WithConfirm(confirmPublish(cmd)))
	}

	return builder.New(cfg, publisher, opts...).Run(cmd.Context())
}

// confirmPublish shows the rendered post and asks the operator whether to
// publish it. Quitting the prompt counts as a decline.
func confirmPublish(cmd *cobra.Command) builder.ConfirmFunc {
	preview := display.NewPostPreview()
	return func(post string) (bool, error) {
		fmt.Fprint(cmd.OutOrStdout(), preview.FormatPost(post))

		answer, err := prompt.New().Ask("Do you want to publish this post?").
			Choose([]string{"yes", "no"})
		if err != nil {
			if errors.Is(err, prompt.ErrUserQuit) {
				return false, nil
			}
			return false, err
		}
		return answer == "yes", nil
	}
}
