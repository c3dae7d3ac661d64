package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/Cyclone1070/soarzip/internal/archive"
	"github.com/Cyclone1070/soarzip/internal/command"
	"github.com/Cyclone1070/soarzip/internal/config"
	"github.com/Cyclone1070/soarzip/internal/fsutil"
	"github.com/Cyclone1070/soarzip/internal/logging"
	"github.com/Cyclone1070/soarzip/internal/sevenzip"
)

var (
	errColor = color.New(color.FgRed, color.Bold)
	dirColor = color.New(color.FgCyan)
)

// app wires the configured components together once per process.
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	mgr     *archive.Manager
	handler *command.Handler
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.Logging.Level, cfg.Logging.Development)
	if err != nil {
		return nil, err
	}

	binary, err := sevenzip.Locate(cfg.SevenZip.BinaryPath)
	if err != nil {
		return nil, err
	}

	runner := sevenzip.NewCommandRunner(binary, log)
	fs := fsutil.NewOSFileSystem()
	mgr := archive.NewManager(runner, fs, cfg.Scratch.Root, log)

	return &app{
		cfg:     cfg,
		log:     log,
		mgr:     mgr,
		handler: command.NewHandler(mgr, log),
	}, nil
}

func main() {
	// A .env in the working directory can supply the SOARZIP_* overrides.
	_ = godotenv.Load()

	root := &cli.Command{
		Name:  "soarzip",
		Usage: "browse and restructure archives through an external 7-Zip binary",
		Commands: []*cli.Command{
			listCommand(),
			extractCommand(),
			createCommand(),
			addCommand(),
			addFolderCommand(),
			removeCommand(),
			mkdirCommand(),
			renameCommand(),
			pasteCommand("mv", "move entries to a destination folder inside the archive", true),
			pasteCommand("cp", "copy entries to a destination folder inside the archive", false),
			invokeCommand(),
		},
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		errColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "list archive contents",
		ArgsUsage: "<archive>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "dir", Aliases: []string{"d"}, Usage: "list only direct children of this folder"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			archivePath := c.Args().First()
			if archivePath == "" {
				return fmt.Errorf("archive path is required")
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.log.Sync()

			tree, err := a.mgr.List(ctx, archivePath)
			if err != nil {
				return err
			}

			entries := tree.Entries()
			if c.IsSet("dir") {
				entries = tree.Children(c.String("dir"))
			}
			for _, e := range entries {
				name := e.Path
				if e.IsDir {
					name = dirColor.Sprint(e.Path)
				}
				fmt.Printf("%-24s %12d  %-19s  %s\n", e.Type, e.Size, e.Modified, name)
			}
			return nil
		},
	}
}

func extractCommand() *cli.Command {
	return &cli.Command{
		Name:      "extract",
		Usage:     "extract entries (or everything) to a local directory",
		ArgsUsage: "<archive> [entry ...]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: ".", Usage: "output directory"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			archivePath := c.Args().First()
			if archivePath == "" {
				return fmt.Errorf("archive path is required")
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.log.Sync()

			return a.mgr.Extract(ctx, archivePath, c.String("out"), c.Args().Tail())
		},
	}
}

func createCommand() *cli.Command {
	return &cli.Command{
		Name:      "create",
		Usage:     "create a new empty archive",
		ArgsUsage: "<archive>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Aliases: []string{"t"}, Usage: "archive type (zip, 7z, tar); defaults from config"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			archivePath := c.Args().First()
			if archivePath == "" {
				return fmt.Errorf("archive path is required")
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.log.Sync()

			format := c.String("format")
			if format == "" {
				format = a.cfg.SevenZip.DefaultFormat
			}

			created, err := a.mgr.Create(ctx, archivePath, format)
			if err != nil {
				return err
			}
			fmt.Println(created)
			return nil
		},
	}
}

func addCommand() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "add local files to an archive",
		ArgsUsage: "<archive> <file ...>",
		Action: func(ctx context.Context, c *cli.Command) error {
			archivePath := c.Args().First()
			if archivePath == "" || c.Args().Len() < 2 {
				return fmt.Errorf("archive path and at least one file are required")
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.log.Sync()

			return a.mgr.AddFiles(ctx, archivePath, c.Args().Tail())
		},
	}
}

func addFolderCommand() *cli.Command {
	return &cli.Command{
		Name:      "add-folder",
		Usage:     "add local directories to an archive",
		ArgsUsage: "<archive> <dir ...>",
		Action: func(ctx context.Context, c *cli.Command) error {
			archivePath := c.Args().First()
			if archivePath == "" || c.Args().Len() < 2 {
				return fmt.Errorf("archive path and at least one directory are required")
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.log.Sync()

			return a.mgr.AddFolders(ctx, archivePath, c.Args().Tail())
		},
	}
}

func removeCommand() *cli.Command {
	return &cli.Command{
		Name:      "rm",
		Usage:     "delete entries from an archive",
		ArgsUsage: "<archive> <entry ...>",
		Action: func(ctx context.Context, c *cli.Command) error {
			archivePath := c.Args().First()
			if archivePath == "" || c.Args().Len() < 2 {
				return fmt.Errorf("archive path and at least one entry are required")
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.log.Sync()

			return a.mgr.Delete(ctx, archivePath, c.Args().Tail())
		},
	}
}

func mkdirCommand() *cli.Command {
	return &cli.Command{
		Name:      "mkdir",
		Usage:     "create a folder entry inside an archive",
		ArgsUsage: "<archive> <folder>",
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 2 {
				return fmt.Errorf("archive path and folder path are required")
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.log.Sync()

			return a.mgr.CreateFolder(ctx, c.Args().Get(0), c.Args().Get(1))
		},
	}
}

func renameCommand() *cli.Command {
	return &cli.Command{
		Name:      "rename",
		Usage:     "rename an entry in place",
		ArgsUsage: "<archive> <old-path> <new-name>",
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 3 {
				return fmt.Errorf("archive path, old path and new name are required")
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.log.Sync()

			return a.mgr.Rename(ctx, c.Args().Get(0), c.Args().Get(1), c.Args().Get(2))
		},
	}
}

func pasteCommand(name, usage string, isCut bool) *cli.Command {
	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "<archive> <entry ...> <destination>",
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() < 3 {
				return fmt.Errorf("archive path, at least one entry and a destination are required")
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.log.Sync()

			args := c.Args().Slice()
			archivePath := args[0]
			entries := args[1 : len(args)-1]
			destination := args[len(args)-1]

			return a.mgr.Paste(ctx, archivePath, entries, destination, isCut)
		},
	}
}

func invokeCommand() *cli.Command {
	return &cli.Command{
		Name:      "invoke",
		Usage:     "run a named operation with a JSON payload",
		ArgsUsage: "<operation>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "payload", Aliases: []string{"p"}, Value: "{}", Usage: "JSON object with the operation's parameters"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			op := c.Args().First()
			if op == "" {
				return fmt.Errorf("operation name is required")
			}

			var payload map[string]any
			if err := json.Unmarshal([]byte(c.String("payload")), &payload); err != nil {
				return fmt.Errorf("invalid payload JSON: %w", err)
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.log.Sync()

			result, err := a.handler.Dispatch(ctx, op, payload)
			if err != nil {
				return err
			}
			if result != nil {
				out, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(out))
			}
			return nil
		},
	}
}
