package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/farism/mfe-host/adapters"
	"github.com/farism/mfe-host/adapters/memory"
	"github.com/farism/mfe-host/adapters/mysqlite"
	"github.com/farism/mfe-host/domain"
	"github.com/farism/mfe-host/interfaces"
	"github.com/farism/mfe-host/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
)

const defaultStorageURL = "https://mfestorage.s3.amazonaws.com"

type options struct {
	storageURL   string
	registryPath string
	timeout      time.Duration
	sqlitePath   string
	scope        string
	branches     []string
	query        string
	asJSON       bool
	verbose      bool

	out    io.Writer
	errOut io.Writer
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	o := &options{out: out, errOut: errOut}

	storageURL := os.Getenv("STORAGE_URL")
	if storageURL == "" {
		storageURL = defaultStorageURL
	}
	registryPath := os.Getenv("REGISTRY_PATH")
	if registryPath == "" {
		registryPath = "module-registry.json"
	}

	root := &cobra.Command{
		Use:   "mferesolve",
		Short: "Resolve the micro-frontend module registry",
		Long: `mferesolve fetches the published module registry and applies branch overrides the way
the module host does for a page load. Branch overrides are given with --branch name=branch or as a
raw query string with --query "mfe_branch_app2=feature-x". With --sqlite and --scope the persistent
overrides of that client are applied too.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&o.storageURL, "storage-url", storageURL, "Module storage base URL (env STORAGE_URL)")
	pf.StringVar(&o.registryPath, "registry-path", registryPath, "Registry path below the storage URL (env REGISTRY_PATH)")
	pf.DurationVar(&o.timeout, "timeout", 5*time.Second, "Timeout of every storage request")
	pf.StringVar(&o.sqlitePath, "sqlite", "", "SQLite override database of the module host")
	pf.StringVar(&o.scope, "scope", "", "Client scope whose persistent overrides are applied (requires --sqlite)")
	pf.StringArrayVar(&o.branches, "branch", nil, "Branch override name=branch (repeatable)")
	pf.StringVar(&o.query, "query", "", "Raw query string carrying mfe_branch_<name> parameters")
	pf.BoolVar(&o.asJSON, "json", false, "Output in JSON format")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "Log resolution details to stderr")

	root.AddCommand(
		&cobra.Command{
			Use:   "registry [search]",
			Short: "Print the merged registry",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				search := ""
				if len(args) > 0 {
					search = args[0]
				}
				return o.runRegistry(cmd.Context(), search)
			},
		},
		&cobra.Command{
			Use:   "routes [path]",
			Short: "Print the route table, or the routes mounted at path",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return o.runRoutes(cmd.Context(), args)
			},
		},
	)
	return root
}

func (o *options) logger() log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(o.errOut))
	if o.verbose {
		return level.NewFilter(logger, level.AllowDebug())
	}
	return level.NewFilter(logger, level.AllowError())
}

// rawQuery merges --query and --branch into one query string.
func (o *options) rawQuery() (string, error) {
	values, err := url.ParseQuery(strings.TrimPrefix(o.query, "?"))
	if err != nil {
		return "", fmt.Errorf("invalid --query: %w", err)
	}
	for _, b := range o.branches {
		name, branch, ok := strings.Cut(b, "=")
		if !ok || name == "" || branch == "" {
			return "", fmt.Errorf("invalid --branch %q, want name=branch", b)
		}
		values.Set(service.BranchOverridePrefix+name, branch)
	}
	return values.Encode(), nil
}

func (o *options) view(ctx context.Context, search string) (domain.RegistryView, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	rawQuery, err := o.rawQuery()
	if err != nil {
		return nil, err
	}
	if o.scope != "" && o.sqlitePath == "" {
		return nil, fmt.Errorf("--scope requires --sqlite")
	}

	var overrides interfaces.OverrideStore = memory.NewOverrideStore()
	if o.sqlitePath != "" {
		var db *sql.DB
		db, err = mysqlite.Open(ctx, o.sqlitePath)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		overrides = mysqlite.NewOverrideStore(db)
	}

	logger := o.logger()
	metrics := service.NewMetrics()
	storage := adapters.StorageHTTP(o.storageURL, o.registryPath, o.timeout)
	resolver := service.NewQueryOverrideResolver(storage, memory.NewCache[domain.ModuleDescriptor](), 0, metrics, logger)
	host := service.NewModuleHost(storage, overrides, resolver, metrics, logger)

	host.Refresh(ctx)
	if !host.Loaded() {
		return nil, fmt.Errorf("module registry at %s is unreachable", o.storageURL)
	}
	return host.View(ctx, o.scope, rawQuery, search)
}

func (o *options) runRegistry(ctx context.Context, search string) error {
	view, err := o.view(ctx, search)
	if err != nil {
		return err
	}

	if o.asJSON {
		type entry struct {
			domain.ModuleDescriptor
			Overridden bool          `json:"overridden"`
			Source     domain.Source `json:"source"`
		}
		out := make([]entry, 0, len(view))
		for _, e := range view {
			out = append(out, entry{ModuleDescriptor: e.Descriptor, Overridden: e.Overridden, Source: e.Source})
		}
		return o.printJSON(out)
	}

	w := tabwriter.NewWriter(o.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSOURCE\tMODULE\tURL")
	for _, e := range view {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Descriptor.Name, e.Source, e.Descriptor.Module, e.Descriptor.URL)
	}
	return w.Flush()
}

func (o *options) runRoutes(ctx context.Context, args []string) error {
	view, err := o.view(ctx, "")
	if err != nil {
		return err
	}
	routes := service.BuildRoutes(view)
	if len(args) > 0 {
		routes = service.MatchRoutes(routes, args[0])
	}

	if o.asJSON {
		type route struct {
			Path   string `json:"path"`
			Name   string `json:"name"`
			URL    string `json:"url"`
			Module string `json:"module"`
		}
		out := make([]route, 0, len(routes))
		for _, r := range routes {
			out = append(out, route{Path: r.Path, Name: r.Remote.Name, URL: r.Remote.URL, Module: r.Remote.Module})
		}
		return o.printJSON(out)
	}

	w := tabwriter.NewWriter(o.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PATH\tNAME\tURL")
	for _, r := range routes {
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.Path, r.Remote.Name, r.Remote.URL)
	}
	return w.Flush()
}

func (o *options) printJSON(v any) error {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
