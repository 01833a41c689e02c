package main

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ontoforge/bfograph/internal/bfo"
	"github.com/ontoforge/bfograph/internal/infrastructure/config"
	"github.com/ontoforge/bfograph/internal/infrastructure/database"
	"github.com/ontoforge/bfograph/internal/infrastructure/metrics"
	"github.com/ontoforge/bfograph/internal/ontologies/biology"
	"github.com/ontoforge/bfograph/internal/ontologies/social"
	"github.com/ontoforge/bfograph/internal/services/registry"
)

var (
	withExtensions bool
	envFlag        string
)

var rootCmd = &cobra.Command{
	Use:   "ontology",
	Short: "Inspect the ontology class taxonomy",
	Long: `Inspect the ontology class taxonomy.
Lists registered entity types and shows their resolved effective schemas.`,
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List all registered entity types",
	Run:   runTypes,
}

var showCmd = &cobra.Command{
	Use:   "show <type>",
	Short: "Show the effective schema of an entity type",
	Args:  cobra.ExactArgs(1),
	Run:   runShow,
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Resolve the taxonomy and report structural errors",
	Run:   runValidate,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the graph store daemon with health and metrics endpoints",
	Long: `Run the graph store daemon.
Resolves the taxonomy, connects to the database and serves /healthz plus,
when METRICS_ENABLED is set, Prometheus metrics on /metrics.`,
	Run: runServe,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&withExtensions, "extensions", true, "Include the biology and social extension ontologies")
	serveCmd.Flags().StringVarP(&envFlag, "env", "e", "dev", "Environment to use (dev, test, prod)")

	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Failed to execute command: %v", err)
	}
}

func buildRegistry() (*registry.Registry, error) {
	r := registry.New()
	if err := bfo.Register(r); err != nil {
		return nil, err
	}
	if withExtensions {
		if err := biology.Register(r); err != nil {
			return nil, err
		}
		if err := social.Register(r); err != nil {
			return nil, err
		}
	}
	if err := r.Resolve(); err != nil {
		return nil, err
	}
	return r, nil
}

func runTypes(cmd *cobra.Command, args []string) {
	r, err := buildRegistry()
	if err != nil {
		log.Fatalf("Failed to build registry: %v", err)
	}

	for _, name := range r.Types() {
		t := r.Type(name)
		marker := ""
		if t.Abstract {
			marker = " (abstract)"
		}
		parent := t.Parent
		if parent == "" {
			parent = "-"
		}
		fmt.Printf("%-40s parent: %s%s\n", name, parent, marker)
	}
}

func runShow(cmd *cobra.Command, args []string) {
	r, err := buildRegistry()
	if err != nil {
		log.Fatalf("Failed to build registry: %v", err)
	}

	name := args[0]
	t := r.Type(name)
	if t == nil {
		log.Fatalf("Unknown entity type: %s", name)
	}

	fmt.Printf("Type: %s\n", t.Name)
	fmt.Printf("Ancestors: %s\n", strings.Join(r.AncestorChain(name), " -> "))
	fmt.Printf("Abstract: %v\n", t.Abstract)

	fmt.Println("Properties:")
	for _, p := range t.EffectiveProperties {
		required := ""
		if p.Required {
			required = ", required"
		}
		fmt.Printf("  %s: %s%s\n", p.Name, p.Type, required)
	}

	fmt.Println("Relationships:")
	for _, rel := range t.EffectiveRelationships {
		fmt.Printf("  %s\n", rel)
	}
}

func runValidate(cmd *cobra.Command, args []string) {
	r, err := buildRegistry()
	if err != nil {
		log.Fatalf("Taxonomy is invalid:\n%v", err)
	}

	fmt.Printf("Taxonomy is valid: %d types, rooted at %s\n", len(r.Types()), r.Root())
}

func runServe(cmd *cobra.Command, args []string) {
	log.Printf("Using environment: %s", envFlag)

	if err := config.InitConfig(envFlag); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	r, err := buildRegistry()
	if err != nil {
		log.Fatalf("Failed to build registry: %v", err)
	}
	log.Printf("Resolved taxonomy: %d types, rooted at %s", len(r.Types()), r.Root())

	pg, err := database.NewPostgres(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pg.Close()

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, req *http.Request) {
		if err := pg.HealthCheck(); err != nil {
			http.Error(w, fmt.Sprintf("database unavailable: %v", err), http.StatusServiceUnavailable)
			return
		}
		fmt.Fprintln(w, "ok")
	})

	if cfg.Metrics.Enabled {
		collector := metrics.NewCollector()
		exporter := metrics.NewPrometheusExporter(collector)
		mux.Handle("/metrics", exporter.Handler())
	}

	addr := fmt.Sprintf(":%d", cfg.Metrics.Port)
	log.Printf("Listening on %s (metrics enabled: %v)", addr, cfg.Metrics.Enabled)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
