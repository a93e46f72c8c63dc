package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"golang.org/x/sync/errgroup"

	"github.com/jsontab/jsontab/internal/config"
	"github.com/jsontab/jsontab/internal/export"
	"github.com/jsontab/jsontab/internal/loader"
	"github.com/jsontab/jsontab/internal/logging"
	"github.com/jsontab/jsontab/internal/query"
	"github.com/jsontab/jsontab/internal/render"
	"github.com/jsontab/jsontab/internal/writer"
	"github.com/jsontab/jsontab/pkg/flatten"
	"github.com/jsontab/jsontab/pkg/schema"
)

const version = "0.2.0"

// cli defines the command-line interface.
var cli struct {
	Files []string `arg:"" optional:"" name:"file" help:"JSON files to convert; use - or pipe to read stdin."`

	Format       string `help:"Table format: grid, plain, simple, github or fancy." short:"f" default:"${format_default}"`
	Width        int    `help:"Maximum column width for display, 0 disables truncation." short:"w" default:"${width_default}"`
	Output       string `help:"Output file path, format chosen by extension (.csv, .json, .yaml, .md, .db)." short:"o" type:"path"`
	Structure    bool   `help:"Show JSON structure analysis." short:"s"`
	ASCII        bool   `help:"Force plain ASCII table output." short:"a"`
	Hierarchical bool   `help:"Display the document as a hierarchy with nested tables."`
	Schema       bool   `help:"Infer and display the document schema instead of the table."`
	Detailed     bool   `help:"Add per-field statistics to the schema view."`
	Check        bool   `help:"Validate the document against its own inferred schema."`
	Query        string `help:"jq expression applied to the document before conversion." short:"q"`
	SnakeHeaders bool   `help:"Convert column headers to snake_case." default:"${snake_default}"`
	Color        string `help:"Color output: auto, always or never." default:"${color_default}" enum:"auto,always,never"`
	Sample       bool   `help:"Print the built-in sample document and exit."`
	Version      bool   `help:"Show version information." short:"v"`
}

// app carries the collaborators shared by every input file.
type app struct {
	ld        *loader.Loader
	eng       *query.Engine
	tableOpts render.TableOptions
	pal       render.Palette
}

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Load()

	parser := kong.Must(&cli,
		kong.Name("jsontab"),
		kong.Description("Convert JSON documents to aligned tables, trees and inferred schemas."),
		kong.UsageOnError(),
		kong.Vars{
			"format_default": cfg.TableFormat,
			"width_default":  strconv.Itoa(cfg.MaxWidth),
			"color_default":  cfg.Color,
			"snake_default":  strconv.FormatBool(cfg.SnakeHeaders),
		},
	)
	if _, err := parser.Parse(os.Args[1:]); err != nil {
		// Usage was already printed by kong.UsageOnError.
		return 1
	}

	if cli.Version {
		fmt.Printf("jsontab version %s\n", version)
		return 0
	}
	if cli.Sample {
		fmt.Print(sampleDocument)
		return 0
	}

	cleanup, err := logging.Setup(logging.Config{
		Level:      cfg.LogLevel,
		FilePath:   cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
		Compress:   cfg.LogCompress,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer cleanup()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	files := cli.Files
	if len(files) == 0 {
		info, statErr := os.Stdin.Stat()
		if statErr != nil || info.Mode()&os.ModeCharDevice != 0 {
			fmt.Fprintln(os.Stderr, "Error: no input provided. Pass a file path or pipe JSON data to stdin.")
			return 1
		}
		files = []string{loader.StdinName}
	}
	if len(files) > 1 && cli.Output != "" {
		fmt.Fprintln(os.Stderr, "Error: -o supports a single input file.")
		return 1
	}

	format := cli.Format
	if cli.ASCII {
		format = render.StylePlain
	}

	ld, err := loader.New(*cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	var eng *query.Engine
	if cli.Query != "" {
		eng, err = query.New(cli.Query)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	pal := render.Colors(render.ColorEnabled(cli.Color, os.Stdout))
	a := &app{
		ld:  ld,
		eng: eng,
		pal: pal,
		tableOpts: render.TableOptions{
			Style:        format,
			MaxWidth:     cli.Width,
			SnakeHeaders: cli.SnakeHeaders,
			Palette:      pal,
		},
	}

	slog.Debug("starting run", "files", len(files), "format", format)

	// Files process concurrently but print in input order.
	outputs := make([]string, len(files))
	failures := make([]error, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.FileWorkers)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			outputs[i], failures[i] = a.processFile(gctx, path)
			return nil
		})
	}
	_ = g.Wait()

	code := 0
	for i, path := range files {
		if outputs[i] != "" {
			fmt.Print(outputs[i])
		}
		if err := failures[i]; err != nil {
			code = 1
			if !errors.Is(err, context.Canceled) {
				fmt.Fprintln(os.Stderr, userMessage(displayName(path), err))
			}
		}
	}
	return code
}

// processFile runs the full pipeline for one input and returns everything
// it printed. On failure the partial output is still returned so the
// caller can emit it before the error line.
func (a *app) processFile(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Loading JSON file: %s\n", displayName(path))

	doc, err := a.ld.Load(path)
	if err != nil {
		return sb.String(), err
	}
	slog.Debug("document loaded", "name", doc.Name, "bytes", doc.Size)

	root := doc.Root
	if a.eng != nil {
		root, err = a.eng.Apply(root)
		if err != nil {
			return sb.String(), err
		}
	}

	if cli.Structure {
		sb.WriteString(render.StructureDocument(root, a.pal))
		sb.WriteString("\n")
	}

	var node *schema.Node
	if cli.Schema || cli.Check {
		node = schema.Infer(root, cli.Detailed)
	}

	var rows flatten.RowSet
	if cli.Schema {
		sb.WriteString(render.SchemaDocument(node, render.SchemaOptions{
			Detailed: cli.Detailed,
			Palette:  a.pal,
		}))
	} else {
		sb.WriteString("Converting to tabular format...\n")
		rows = flatten.Flatten(root)

		if cli.Hierarchical {
			tree, err := render.TreeDocument(root, a.tableOpts)
			if err != nil {
				return sb.String(), err
			}
			sb.WriteString(tree)
		} else {
			table, err := render.DocumentTable(rows, a.tableOpts)
			if err != nil {
				return sb.String(), err
			}
			sb.WriteString(table)
		}
		sb.WriteString(render.Summary(rows))
	}

	var schemaDoc []byte
	if node != nil {
		schemaDoc, err = json.Marshal(export.Build(node))
		if err != nil {
			return sb.String(), err
		}
	}

	if cli.Check {
		if err := export.Validate(schemaDoc, root); err != nil {
			return sb.String(), err
		}
		sb.WriteString("\nDocument validates against its inferred schema.\n")
	}

	if cli.Output != "" {
		if err := a.save(ctx, path, rows, schemaDoc); err != nil {
			return sb.String(), fmt.Errorf("%w: %v", errSave, err)
		}
		fmt.Fprintf(&sb, "\nData saved to: %s\n", cli.Output)
	}

	return sb.String(), nil
}

func (a *app) save(ctx context.Context, inputPath string, rows flatten.RowSet, schemaDoc []byte) error {
	if cli.Schema {
		return writer.WriteSchema(cli.Output, schemaDoc)
	}
	return writer.WriteRows(ctx, cli.Output, rows, writer.Options{
		SnakeHeaders: cli.SnakeHeaders,
		Table:        tableName(inputPath),
	})
}

func displayName(path string) string {
	if path == loader.StdinName {
		return "stdin"
	}
	return path
}

// tableName derives the SQLite table name from the input file stem. Stdin
// keeps the writer's default.
func tableName(path string) string {
	if path == loader.StdinName {
		return ""
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
