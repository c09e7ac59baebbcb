package tidybin

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/tidybin/tidybin/pkg/host"
	"github.com/tidybin/tidybin/pkg/logging"
	"github.com/tidybin/tidybin/pkg/migrate"
	"github.com/tidybin/tidybin/pkg/rename"
	"github.com/tidybin/tidybin/pkg/resolver"
	"github.com/tidybin/tidybin/pkg/store"
	"github.com/tidybin/tidybin/pkg/types"
)

// assignment is one plan row, also used for --json output.
type assignment struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Organized   bool   `json:"organized"`
	Folder      string `json:"folder,omitempty"`
	Category    string `json:"category,omitempty"`
	Subcategory string `json:"subcategory,omitempty"`
}

func newPlanCmd(flags *rootFlags) *cobra.Command {
	var itemsPath string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: MsgPlanShort,
		Long:  MsgPlanLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer logging.LogDuration(time.Now(), "plan")

			cfg, err := store.LoadOrDefault(resolveConfigPath(flags))
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}

			items, err := loadItems(itemsPath)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				cmd.Println(MsgNoItems)
				return nil
			}

			assignments := make([]assignment, 0, len(items))
			for _, item := range items {
				if item.IsFolder {
					continue
				}
				row := assignment{ID: item.ID, Name: item.Name}
				if decision, ok := resolver.Resolve(cfg, item); ok {
					row.Organized = true
					row.Folder = decision.FolderName
					row.Category = string(decision.Category)
					row.Subcategory = decision.Subcategory
				}
				assignments = append(assignments, row)
			}

			if asJSON {
				return printJSON(cmd, assignments)
			}
			return printPlanTable(cmd, assignments)
		},
	}

	cmd.Flags().StringVarP(&itemsPath, "items", "i", "", "Path to an exported item list (JSON or YAML)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit assignments as JSON")
	_ = cmd.MarkFlagRequired("items")

	return cmd
}

// loadItems reads an exported item list. Unlike a live host bridge, a file
// the user pointed at is expected to be readable, so failures surface as
// errors instead of being contained.
func loadItems(path string) ([]types.ItemDescriptor, error) {
	items, err := (&host.FileBridge{ItemsPath: path}).QueryItems()
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadItems, err)
	}
	return items, nil
}

func printPlanTable(cmd *cobra.Command, assignments []assignment) error {
	data := pterm.TableData{{"Item", "Folder", "Category", "Subcategory"}}
	for _, a := range assignments {
		if !a.Organized {
			data = append(data, []string{a.Name, mutedStyle.Render(MsgUnorganizedLabel), "", ""})
			continue
		}
		data = append(data, []string{a.Name, a.Folder, a.Category, a.Subcategory})
	}
	return renderTable(cmd, pterm.DefaultTable.WithHasHeader().WithData(data))
}

// renderTable prints a pterm table through the command's writer so output
// lands wherever cobra is directed, including test buffers.
func renderTable(cmd *cobra.Command, table *pterm.TablePrinter) error {
	rendered, err := table.Srender()
	if err != nil {
		return err
	}
	cmd.Println(rendered)
	return nil
}

func newCheckCmd(flags *rootFlags) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: MsgCheckShort,
		Long:  MsgCheckLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadOrDefault(resolveConfigPath(flags))
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}

			warnings := resolver.CheckConfig(cfg)
			if len(warnings) == 0 {
				cmd.Println(MsgNoWarnings)
				return nil
			}

			for _, w := range warnings {
				cmd.Printf("%s %s: %s\n",
					warnStyle.Render(string(w.Code)), w.Folder, w.Message)
			}
			if strict {
				return fmt.Errorf(MsgErrStrict, len(warnings))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when warnings are present")

	return cmd
}

func newMigrateCmd(flags *rootFlags) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: MsgMigrateShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := resolveConfigPath(flags)

			from, err := storedVersion(path)
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}

			cfg, err := store.Load(path)
			if err != nil {
				return fmt.Errorf(MsgErrLoadConfig, err)
			}

			if from >= cfg.Version {
				cmd.Printf(MsgConfigUpToDate, cfg.Version)
				return nil
			}

			if write {
				if err := store.Save(path, cfg); err != nil {
					return err
				}
				cmd.Printf(MsgConfigMigrated, from, cfg.Version)
				return nil
			}
			return printJSON(cmd, cfg)
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, "Persist the migrated configuration in place")

	return cmd
}

// storedVersion peeks at the version tag of the document on disk without
// migrating it.
func storedVersion(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	var doc struct {
		Version int `json:"version"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return 0, err
	}
	if doc.Version == 0 {
		return 1, nil
	}
	return doc.Version, nil
}

func newRenameCmd() *cobra.Command {
	var itemsPath string
	var asJSON bool
	params := rename.Params{}

	cmd := &cobra.Command{
		Use:   "rename",
		Short: MsgRenameShort,
		Long:  MsgRenameLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := loadItems(itemsPath)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				cmd.Println(MsgNoItems)
				return nil
			}

			batch := rename.PreviewBatch(items, params)
			if asJSON {
				return printJSON(cmd, batch)
			}
			if !batch.HasChanges {
				cmd.Println(MsgNoChanges)
				return nil
			}

			data := pterm.TableData{{"Current name", "New name"}}
			for _, p := range batch.Previews {
				newName := p.NewName
				if newName == p.OriginalName {
					newName = mutedStyle.Render(newName)
				}
				data = append(data, []string{p.OriginalName, newName})
			}
			return renderTable(cmd, pterm.DefaultTable.WithHasHeader().WithData(data))
		},
	}

	cmd.Flags().StringVarP(&itemsPath, "items", "i", "", "Path to an exported item list (JSON or YAML)")
	cmd.Flags().StringVar(&params.FindText, "find", "", "Literal text to replace in each name")
	cmd.Flags().StringVar(&params.ReplaceText, "replace", "", "Replacement for the found text")
	cmd.Flags().StringVar(&params.Prefix, "prefix", "", "Text prepended to each name")
	cmd.Flags().StringVar(&params.Suffix, "suffix", "", "Text inserted before the extension")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the preview batch as JSON")
	_ = cmd.MarkFlagRequired("items")

	return cmd
}

func newStatsCmd() *cobra.Command {
	var statsPath string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: MsgStatsShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			bridge := host.NewResilient(&host.FileBridge{StatsPath: statsPath})
			stats := bridge.Stats()

			data := pterm.TableData{
				{"Total items", fmt.Sprint(stats.TotalItems)},
				{"Comps", fmt.Sprint(stats.Comps)},
				{"Footage", fmt.Sprint(stats.Footage)},
				{"Images", fmt.Sprint(stats.Images)},
				{"Audio", fmt.Sprint(stats.Audio)},
				{"Sequences", fmt.Sprint(stats.Sequences)},
				{"Solids", fmt.Sprint(stats.Solids)},
				{"Folders", fmt.Sprint(stats.Folders)},
				{"Missing footage", fmt.Sprint(stats.MissingFootage)},
				{"Unused items", fmt.Sprint(stats.UnusedItems)},
			}
			return renderTable(cmd, pterm.DefaultTable.WithData(data))
		},
	}

	cmd.Flags().StringVar(&statsPath, "stats-file", "", "Path to an exported statistics record (JSON or YAML)")

	return cmd
}

func newInitCmd(flags *rootFlags) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: MsgInitShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := resolveConfigPath(flags)
			if len(args) == 1 {
				path = args[0]
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf(MsgConfigExists, path)
			}

			if err := store.Save(path, migrate.DefaultConfig()); err != nil {
				return err
			}
			cmd.Printf(MsgConfigWritten, path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration")

	return cmd
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	cmd.Println(string(data))
	return nil
}
