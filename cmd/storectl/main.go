package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/careerhub-dev/careerhub/internal/platform/config"
	"github.com/careerhub-dev/careerhub/internal/platform/store"
)

// storectl はストアの運用コマンドです。スロットの一覧、JSON での
// エクスポート/インポート、全削除を行います。
func main() {
	var (
		configPath = flag.String("config", "", "path to config file (defaults to CONFIG_PATH env or assets/local.yaml)")
		prefix     = flag.String("prefix", "", "slot name prefix filter for keys and export")
		file       = flag.String("file", "", "file path for export/import (defaults to stdout/stdin)")
	)
	flag.Parse()

	action := "keys"
	if flag.NArg() > 0 {
		action = flag.Arg(0)
	}

	cfgPath := effectiveConfigPath(*configPath)
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	kv, err := store.Open(store.Config{
		Path:           cfg.Storage.Path,
		InMemory:       cfg.Storage.InMemory,
		SyncWrites:     cfg.Storage.SyncWrites,
		GCDiscardRatio: cfg.Storage.GCDiscardRatio,
	})
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer func() {
		if err := kv.Close(); err != nil {
			log.Printf("failed to close store: %v", err)
		}
	}()

	if err := run(kv, action, *prefix, *file); err != nil {
		log.Fatalf("%s failed: %v", action, err)
	}
}

func effectiveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		return env
	}
	return "assets/local.yaml"
}

func run(kv *store.Store, action, prefix, file string) error {
	switch action {
	case "keys":
		keys, err := kv.Keys(prefix)
		if err != nil {
			return err
		}
		for _, k := range keys {
			fmt.Println(k)
		}
		return nil
	case "export":
		return export(kv, prefix, file)
	case "import":
		return importSlots(kv, file)
	case "reset":
		return kv.DropAll()
	default:
		return fmt.Errorf("unsupported action %q", action)
	}
}

// export はスロットを名前から生 JSON 値へのマップとして書き出します。
func export(kv *store.Store, prefix, file string) error {
	keys, err := kv.Keys(prefix)
	if err != nil {
		return err
	}

	slots := make(map[string]json.RawMessage, len(keys))
	for _, k := range keys {
		raw, found, err := kv.Get(k)
		if err != nil {
			return err
		}
		if !found {
			continue
		}
		slots[k] = json.RawMessage(raw)
	}

	out := os.Stdout
	if file != "" {
		f, err := os.Create(file)
		if err != nil {
			return fmt.Errorf("create %s: %w", file, err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(slots)
}

func importSlots(kv *store.Store, file string) error {
	in := os.Stdin
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("open %s: %w", file, err)
		}
		defer f.Close()
		in = f
	}

	var slots map[string]json.RawMessage
	if err := json.NewDecoder(in).Decode(&slots); err != nil {
		return fmt.Errorf("decode slots: %w", err)
	}

	for k, raw := range slots {
		if err := kv.Set(k, raw); err != nil {
			return err
		}
	}

	log.Printf("imported %d slot(s)", len(slots))
	return nil
}
