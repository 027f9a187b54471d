package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"demes/internal/model"
	"demes/internal/stats"
	"demes/internal/storage"
	demesapi "demes/pkg/demes"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "run":
		return runRun(ctx, args[1:])
	case "scenario-save":
		return runScenarioSave(ctx, args[1:])
	case "scenarios":
		return runScenarios(ctx, args[1:])
	case "scenario-show":
		return runScenarioShow(ctx, args[1:])
	case "scenario-delete":
		return runScenarioDelete(ctx, args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func runRun(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	configPath := fs.String("config", "", "scenario YAML file; fields absent from the file keep their defaults")
	scenarioName := fs.String("scenario", "", "stored scenario name to run instead of a config file")
	seed := fs.Int64("seed", 1, "random seed; identical seeds replay identical runs")
	every := fs.Int("every", 0, "print every Nth generation record (0 disables)")
	plotPath := fs.String("plot", "", "write a PNG chart of the run history to this path")
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "demes.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *configPath != "" && *scenarioName != "" {
		return fmt.Errorf("use either -config or -scenario")
	}

	client, err := demesapi.New(demesapi.Options{StoreKind: *storeKind, DBPath: *dbPath})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()
	if err := client.Init(ctx); err != nil {
		return err
	}

	var params model.Parameters
	if *scenarioName != "" {
		scenario, err := client.GetScenario(ctx, *scenarioName)
		if err != nil {
			return err
		}
		params = scenario.Parameters
	} else {
		params, err = loadParameters(*configPath)
		if err != nil {
			return err
		}
	}

	onGeneration := func(record model.GenerationRecord) {
		if *every > 0 && record.Generation%*every == 0 {
			fmt.Printf("generation=%d altruist_fraction=%.4f group_variance=%.6f\n",
				record.Generation, record.AltruistFraction, record.GroupVariance)
		}
	}

	summary, err := client.RunToCompletion(ctx, params, *seed, onGeneration)
	if err != nil {
		return err
	}

	fractions := stats.Summarize(stats.FractionSeries(summary.History))
	variances := stats.Summarize(stats.VarianceSeries(summary.History))
	fmt.Printf("run completed run_id=%s generations=%d seed=%d\n", summary.RunID, params.Generations, *seed)
	fmt.Printf("altruist_fraction initial=%.4f final=%.4f min=%.4f max=%.4f mean=%.4f\n",
		fractions.Initial, fractions.Final, fractions.Min, fractions.Max, fractions.Mean)
	fmt.Printf("group_variance final=%.6f max=%.6f mean=%.6f\n",
		variances.Final, variances.Max, variances.Mean)
	fmt.Printf("conclusion: %s\n", summary.Conclusion)

	if *plotPath != "" {
		if err := stats.WriteHistoryChart(summary.History, *plotPath); err != nil {
			return err
		}
		fmt.Printf("chart=%s\n", *plotPath)
	}
	return nil
}

func runScenarioSave(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("scenario-save", flag.ContinueOnError)
	name := fs.String("name", "", "scenario name")
	description := fs.String("description", "", "scenario description")
	configPath := fs.String("config", "", "scenario YAML file; fields absent from the file keep their defaults")
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "demes.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" {
		return fmt.Errorf("scenario name is required")
	}

	params, err := loadParameters(*configPath)
	if err != nil {
		return err
	}

	client, err := demesapi.New(demesapi.Options{StoreKind: *storeKind, DBPath: *dbPath})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()
	if err := client.Init(ctx); err != nil {
		return err
	}

	scenario, err := client.SaveScenario(ctx, *name, *description, params)
	if err != nil {
		return err
	}
	fmt.Printf("saved scenario=%s created_at=%s\n", scenario.Name, scenario.CreatedAtUTC)
	return nil
}

func runScenarios(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("scenarios", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "demes.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := demesapi.New(demesapi.Options{StoreKind: *storeKind, DBPath: *dbPath})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()
	if err := client.Init(ctx); err != nil {
		return err
	}

	scenarios, err := client.ListScenarios(ctx)
	if err != nil {
		return err
	}
	if len(scenarios) == 0 {
		fmt.Println("no scenarios stored")
		return nil
	}
	for _, scenario := range scenarios {
		fmt.Printf("scenario=%s created_at=%s groups=%d group_size=%d generations=%d description=%q\n",
			scenario.Name, scenario.CreatedAtUTC,
			scenario.Parameters.NumGroups, scenario.Parameters.GroupSize, scenario.Parameters.Generations,
			scenario.Description)
	}
	return nil
}

func runScenarioShow(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("scenario-show", flag.ContinueOnError)
	name := fs.String("name", "", "scenario name")
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "demes.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" {
		return fmt.Errorf("scenario name is required")
	}

	client, err := demesapi.New(demesapi.Options{StoreKind: *storeKind, DBPath: *dbPath})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()
	if err := client.Init(ctx); err != nil {
		return err
	}

	scenario, err := client.GetScenario(ctx, *name)
	if err != nil {
		return err
	}
	rendered, err := renderParameters(scenario.Parameters)
	if err != nil {
		return err
	}
	fmt.Printf("scenario=%s created_at=%s description=%q\n", scenario.Name, scenario.CreatedAtUTC, scenario.Description)
	fmt.Print(rendered)
	return nil
}

func runScenarioDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("scenario-delete", flag.ContinueOnError)
	name := fs.String("name", "", "scenario name")
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "demes.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" {
		return fmt.Errorf("scenario name is required")
	}

	client, err := demesapi.New(demesapi.Options{StoreKind: *storeKind, DBPath: *dbPath})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()
	if err := client.Init(ctx); err != nil {
		return err
	}

	if err := client.DeleteScenario(ctx, *name); err != nil {
		return err
	}
	fmt.Printf("deleted scenario=%s\n", *name)
	return nil
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: demesctl <run|scenario-save|scenarios|scenario-show|scenario-delete> [flags]", msg)
}
