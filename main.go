package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"famgo/mogoherald/config"
	"famgo/mogoherald/internal/events"
	"famgo/mogoherald/internal/fetch"
	"famgo/mogoherald/logger"
	"famgo/mogoherald/services/announcer"
	"famgo/mogoherald/services/cache"
	"famgo/mogoherald/services/discord"
	"famgo/mogoherald/services/publisher"
	"famgo/mogoherald/services/scheduler"
	"famgo/mogoherald/services/twitch"
)

func main() {
	godotenv.Load()
	logger.Init()

	if err := rootCmd().Execute(); err != nil {
		logger.Fatal("command failed: %v", err)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mogoherald",
		Short:         "Monopoly GO event announcer for Discord and Twitch",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(dailyCmd(), discordCmd(), twitchCmd())
	return root
}

// dailyCmd runs one announcement and exits; the scheduled path inside the
// discord command uses the same pipeline.
func dailyCmd() *cobra.Command {
	var (
		dateStr string
		debug   bool
		dumpDir string
	)

	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Post one event announcement and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			loc := cfg.Location()

			date := events.Tomorrow(loc)
			if dateStr != "" {
				date, err = time.ParseInLocation("2006-01-02", dateStr, loc)
				if err != nil {
					return err
				}
			}

			ctx, stop := signalContext()
			defer stop()

			session, err := discordgo.New("Bot " + cfg.DiscordToken)
			if err != nil {
				return err
			}

			channelID := cfg.DiscordChannelID
			imageChannelID := cfg.DiscordImageChannelID
			var pub publisher.Publisher
			if debug {
				// test-channel dry run: no image forward, no fan-out
				channelID = cfg.DiscordTestChannelID
				imageChannelID = ""
			} else if cfg.RedisAddr != "" {
				redisPub := publisher.NewRedisPublisher(ctx, cfg.RedisAddr, cfg.RedisDB, cfg.RedisStreamPrefix, cfg.RedisStreamMaxLen)
				defer redisPub.Close()
				pub = redisPub
			}

			poster := discord.NewPoster(session, channelID, imageChannelID)
			ann := buildAnnouncer(cfg, poster, pub, loc)
			ann.DumpDir = dumpDir

			return ann.Run(ctx, date)
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "announce for this date (YYYY-MM-DD) instead of tomorrow")
	cmd.Flags().BoolVar(&debug, "debug", false, "post to the test channel and skip fan-out")
	cmd.Flags().StringVar(&dumpDir, "dump-dir", "", "write fetched pages to this directory")
	return cmd
}

// discordCmd runs the gateway bot with the cron-scheduled announcement
func discordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "discord",
		Short: "Run the Discord bot with scheduled announcements",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			loc := cfg.Location()

			ctx, stop := signalContext()
			defer stop()

			var pub publisher.Publisher
			if cfg.RedisAddr != "" {
				redisPub := publisher.NewRedisPublisher(ctx, cfg.RedisAddr, cfg.RedisDB, cfg.RedisStreamPrefix, cfg.RedisStreamMaxLen)
				defer redisPub.Close()
				pub = redisPub
			}

			bot, err := discord.NewBot(cfg.DiscordToken, cfg.DiscordChannelID, cfg.CommandCooldown, buildCache(cfg))
			if err != nil {
				return err
			}

			// The announcer posts through the same gateway session the bot
			// serves commands on.
			poster := discord.NewPoster(bot.Session(), cfg.DiscordChannelID, cfg.DiscordImageChannelID)
			ann := buildAnnouncer(cfg, poster, pub, loc)
			bot.SetCommands(discord.DefaultCommands(ann, loc))

			sched := scheduler.New(loc)
			err = sched.Schedule(cfg.AnnounceCron, scheduler.Job{
				Name: "daily-announce",
				Run: func(jobCtx context.Context) error {
					return ann.Run(jobCtx, events.Tomorrow(loc))
				},
			})
			if err != nil {
				return err
			}
			sched.Start()
			defer sched.Stop()

			return bot.Run(ctx)
		},
	}
}

// twitchCmd runs the IRC bot serving the events digest
func twitchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "twitch",
		Short: "Run the Twitch chat bot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			loc := cfg.Location()

			ctx, stop := signalContext()
			defer stop()

			ann := buildAnnouncer(cfg, nil, nil, loc)

			bot, err := twitch.NewBot(twitch.Options{
				Username: cfg.TwitchUsername,
				OAuth:    cfg.TwitchOAuth,
				Channel:  cfg.TwitchChannel,
				Cooldown: cfg.CommandCooldown,
			}, buildCache(cfg), ann, loc)
			if err != nil {
				return err
			}

			return bot.Run(ctx)
		},
	}
}

func loadConfig() (config.Config, error) {
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func buildAnnouncer(cfg config.Config, poster announcer.Poster, pub publisher.Publisher, loc *time.Location) *announcer.Announcer {
	resolver := events.NewResolver(cfg.SiteBaseURL, loc, buildCache(cfg))

	var fetcher fetch.Fetcher
	if cfg.UseChrome {
		fetcher = fetch.NewChromeFetcher(cfg.ChromeTimeout)
	} else {
		fetcher = fetch.NewHTTPFetcher()
	}

	formatter := events.NewFormatter()
	formatter.MaxImageEmbeds = cfg.MaxImageEmbeds

	extractor := events.NewStructuralExtractor(cfg.SiteBaseURL, loc)

	return announcer.New(resolver, fetcher, extractor, formatter, poster, pub, loc)
}

func buildCache(cfg config.Config) cache.CacheService {
	if cfg.MemcacheAddr != "" {
		return cache.NewMemcacheService(cfg.MemcacheAddr)
	}
	return cache.NewMemoryService()
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
