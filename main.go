package main

import (
	"os"
)

func recordResults(storage *Storage, info SysInfo, results []RunResult) error {
	db, err := storage.Connect()
	if err != nil {
		return err
	}
	defer db.Close()

	err = storage.InitDb(db, info)
	if err != nil {
		return err
	}
	return storage.RecordRuns(db, results)
}

func main() {
	config := LoadConfig()
	Logger.Infof("start speed benchmark launcher")

	info := HostStat()
	Logger.Infof("host stat: %+v", info)

	root, err := ResolveRoot(config.Root)
	if err != nil {
		Logger.Fatalf("failed to resolve launcher root: %v", err)
	}
	Logger.Infof("working root: %v", root)
	Logger.Infof("loaded %v variants, %v enabled", len(SpecBenchVariants), len(EnabledVariants(SpecBenchVariants)))

	launcher := &Launcher{
		Root:     root,
		Entry:    EntryPoint{Python: config.Python, Module: config.Module},
		Variants: SpecBenchVariants,
	}
	results, code, err := launcher.Run()
	if err != nil {
		Logger.Fatalf("failed to run launcher: %v", err)
	}

	if config.Record && len(results) > 0 {
		storage := &Storage{
			LocalPath:  config.LocalDb,
			TursoOrg:   config.TursoOrg,
			TursoName:  config.TursoName,
			TursoToken: config.TursoToken,
		}
		if err := recordResults(storage, info, results); err != nil {
			Logger.Errorf("failed to record launch results: %v", err)
		}
	}

	os.Exit(code)
}
