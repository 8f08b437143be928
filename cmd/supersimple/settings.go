package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/alinanorakari/supersimple/internal/domain"
	"github.com/alinanorakari/supersimple/internal/face"
	"github.com/alinanorakari/supersimple/internal/inbox"
)

// SettingsCmd groups the settings subcommands.
type SettingsCmd struct {
	Show SettingsShowCmd `cmd:"" help:"Print the stored settings"`
	Set  SettingsSetCmd  `cmd:"" help:"Change settings, e.g. colorbg=0x0000FF shadows=on ticks=12"`
}

// SettingsShowCmd implements 'settings show'.
type SettingsShowCmd struct {
	JSON bool `help:"Print JSON instead of a table"`
}

func (s *SettingsShowCmd) Run(root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	settings := face.NewSettings(store, nil)
	if err := settings.Load(context.Background()); err != nil {
		return err
	}
	raw := settings.Snapshot()
	snapshot := inbox.Encode(raw)

	if s.JSON {
		data, err := json.MarshalIndent(snapshot, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	for _, k := range face.Keys {
		v := snapshot[k.String()]
		line := fmt.Sprintf("  %-10s %v", k.String(), v)
		if k.IsColor() {
			line += fmt.Sprintf(" (%s)", face.ColorName(domain.Color8FromHex(raw[k])))
		}
		fmt.Println(line)
	}
	return nil
}

// SettingsSetCmd implements 'settings set'.
type SettingsSetCmd struct {
	Fields []string `arg:"" help:"key=value pairs; keys are page names or slot numbers"`
	Remote string   `help:"Base URL of a running watch face, e.g. http://watch.local:8080"`
}

func (s *SettingsSetCmd) Run(root *CLI) error {
	u, err := parseFields(s.Fields)
	if err != nil {
		return err
	}
	if s.Remote != "" {
		return postSettings(s.Remote, u)
	}

	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	settings := face.NewSettings(store, nil)
	if err := settings.Load(ctx); err != nil {
		return err
	}
	res := settings.Apply(ctx, u)
	if res.Err != nil {
		return res.Err
	}
	printResult(inbox.KeyNames(res.Applied), inbox.KeyNames(res.Rejected))
	return nil
}

// parseFields turns key=value arguments into an update.
func parseFields(fields []string) (face.Update, error) {
	u := face.Update{}
	for _, f := range fields {
		name, value, ok := strings.Cut(f, "=")
		if !ok {
			return nil, fmt.Errorf("%q is not key=value", f)
		}
		k, ok := face.ParseKey(name)
		if !ok {
			return nil, fmt.Errorf("unknown setting %q", name)
		}
		v, err := inbox.ParseValue(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		u[k] = v
	}
	return u, nil
}

func postSettings(base string, u face.Update) error {
	body := map[string]int32{}
	for k, v := range u {
		body[k.String()] = v
	}
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Post(strings.TrimSuffix(base, "/")+"/settings", "application/json", bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("post settings: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("post settings: unexpected status %d", resp.StatusCode)
	}

	var res inbox.ApplyResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	printResult(res.Applied, res.Rejected)
	if res.Warning != "" {
		fmt.Printf("Warning: %s\n", res.Warning)
	}
	return nil
}

func printResult(applied, rejected []string) {
	sort.Strings(applied)
	sort.Strings(rejected)
	if len(applied) > 0 {
		fmt.Printf("Applied: %s\n", strings.Join(applied, ", "))
	}
	if len(rejected) > 0 {
		fmt.Printf("Rejected: %s\n", strings.Join(rejected, ", "))
	}
}
