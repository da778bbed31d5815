package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/fora-social/fora/models"
	"github.com/fora-social/fora/moderation/contentstore"
	"github.com/fora-social/fora/moderation/engine"
	"github.com/fora-social/fora/moderation/modauth"
	"github.com/fora-social/fora/moderation/truststore"
	"github.com/fora-social/fora/util/cliutil"

	"github.com/carlmjohnson/versioninfo"
	_ "github.com/joho/godotenv/autoload"
	cli "github.com/urfave/cli/v2"
	"gorm.io/gorm"
)

func main() {
	if err := run(os.Args); err != nil {
		slog.Error("exiting", "err", err)
		os.Exit(-1)
	}
}

func run(args []string) error {

	app := cli.App{
		Name:    "fora-mod",
		Usage:   "moderation queue and trust state admin tool",
		Version: versioninfo.Short(),
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "database-url",
			Value:   "sqlite://data/fora/fora.sqlite",
			EnvVars: []string{"DATABASE_URL"},
		},
		&cli.IntFlag{
			Name:    "max-db-connections",
			EnvVars: []string{"MAX_DB_CONNECTIONS"},
			Value:   40,
		},
	}

	app.Commands = []*cli.Command{
		migrateCmd,
		queueCmd,
		moderateCmd,
		trustCmd,
	}

	return app.Run(args)
}

func setupDB(cctx *cli.Context) (*gorm.DB, error) {
	return cliutil.SetupDatabase(cctx.String("database-url"), cctx.Int("max-db-connections"))
}

func setupEngine(cctx *cli.Context) (*engine.Engine, error) {
	db, err := setupDB(cctx)
	if err != nil {
		return nil, err
	}
	eng := engine.Engine{
		Logger:     slog.Default(),
		Trust:      truststore.NewGormTrustStore(db),
		Content:    contentstore.NewGormContentStore(db),
		Authorizer: modauth.NewGormAuthorizer(db),
	}
	return &eng, nil
}

var migrateCmd = &cli.Command{
	Name:  "migrate",
	Usage: "run database migrations",
	Action: func(cctx *cli.Context) error {
		db, err := setupDB(cctx)
		if err != nil {
			return err
		}
		for _, model := range []any{
			&models.User{},
			&models.Forum{},
			&models.Group{},
			&models.GroupMember{},
			&models.ForumModerator{},
			&models.Content{},
		} {
			if err := db.AutoMigrate(model); err != nil {
				return err
			}
		}
		return nil
	},
}

var queueCmd = &cli.Command{
	Name:      "queue",
	Usage:     "list the pending moderation queue for a forum",
	ArgsUsage: "<forum-id>",
	Flags: []cli.Flag{
		&cli.Uint64Flag{
			Name:     "moderator",
			Usage:    "acting moderator uid",
			EnvVars:  []string{"FORA_MODERATOR_UID"},
			Required: true,
		},
	},
	Action: func(cctx *cli.Context) error {
		forumID, err := strconv.ParseUint(cctx.Args().First(), 10, 64)
		if err != nil {
			return fmt.Errorf("expected a numeric forum id: %w", err)
		}
		eng, err := setupEngine(cctx)
		if err != nil {
			return err
		}
		pending, err := eng.PendingInForum(cctx.Context, cctx.Uint64("moderator"), forumID)
		if err != nil {
			return err
		}
		for _, item := range pending {
			label := item.Subject
			if item.Kind == contentstore.KindPost {
				label = item.Body
			}
			fmt.Printf("%d\t%s\t%s\tauthor=%d\t%s\n", item.ID, item.Kind, item.CreatedAt.Format("2006-01-02 15:04"), item.AuthorID, label)
		}
		return nil
	},
}

var moderateCmd = &cli.Command{
	Name:      "moderate",
	Usage:     "apply a verdict to one or more content items",
	ArgsUsage: "<item-id>...",
	Flags: []cli.Flag{
		&cli.Uint64Flag{
			Name:     "moderator",
			Usage:    "acting moderator uid",
			EnvVars:  []string{"FORA_MODERATOR_UID"},
			Required: true,
		},
		&cli.StringFlag{
			Name:     "verdict",
			Usage:    "approve or spam",
			Required: true,
		},
	},
	Action: func(cctx *cli.Context) error {
		verdict, err := engine.ParseVerdict(cctx.String("verdict"))
		if err != nil {
			return err
		}
		var itemIDs []uint64
		for _, arg := range cctx.Args().Slice() {
			id, err := strconv.ParseUint(arg, 10, 64)
			if err != nil {
				return fmt.Errorf("expected numeric item ids: %w", err)
			}
			itemIDs = append(itemIDs, id)
		}
		if len(itemIDs) == 0 {
			return fmt.Errorf("expected at least one item id")
		}
		eng, err := setupEngine(cctx)
		if err != nil {
			return err
		}
		summary, err := eng.ApplyVerdict(cctx.Context, cctx.Uint64("moderator"), itemIDs, verdict)
		if err != nil {
			return err
		}
		for _, res := range summary.Results {
			fmt.Printf("%d\t%s\n", res.ID, res.Outcome)
		}
		fmt.Printf("moderated %d of %d items\n", summary.Moderated(), len(itemIDs))
		return nil
	},
}

var trustCmd = &cli.Command{
	Name:  "trust",
	Usage: "inspect or override a user's trust state",
	Subcommands: []*cli.Command{
		{
			Name:      "get",
			ArgsUsage: "<uid>",
			Action: func(cctx *cli.Context) error {
				uid, err := strconv.ParseUint(cctx.Args().First(), 10, 64)
				if err != nil {
					return fmt.Errorf("expected a numeric uid: %w", err)
				}
				db, err := setupDB(cctx)
				if err != nil {
					return err
				}
				state, err := truststore.NewGormTrustStore(db).Get(cctx.Context, uid)
				if err != nil {
					return err
				}
				fmt.Println(state)
				return nil
			},
		},
		{
			Name:      "set",
			Usage:     "administrative trust state override",
			ArgsUsage: "<uid> <new|approved|spam>",
			Action: func(cctx *cli.Context) error {
				uid, err := strconv.ParseUint(cctx.Args().Get(0), 10, 64)
				if err != nil {
					return fmt.Errorf("expected a numeric uid: %w", err)
				}
				state, err := truststore.ParseTrustState(cctx.Args().Get(1))
				if err != nil {
					return err
				}
				db, err := setupDB(cctx)
				if err != nil {
					return err
				}
				return truststore.NewGormTrustStore(db).Set(cctx.Context, uid, state)
			},
		},
	},
}
